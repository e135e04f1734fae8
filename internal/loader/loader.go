// Package loader reads a scenario document from YAML and validates it
// before solve orchestration sees it, including the apiVersion check
// performed right after loading.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/j3soon/nurse-scheduling-go/internal/errs"
	"github.com/j3soon/nurse-scheduling-go/internal/scenario"
	"github.com/j3soon/nurse-scheduling-go/internal/validation"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and decodes a scenario document from a YAML file, then
// runs scenario-level validation. It returns the document and validation
// result together: a document with only Warning/Info findings is still
// usable, so callers decide what to do with a non-empty Result.
func LoadFile(path string) (*scenario.Document, *validation.Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, errs.Wrap(errs.KindInvalidScenario, fmt.Sprintf("file %s should exist", path), err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errs.Wrap(errs.KindInvalidScenario, fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()
	return Load(f, path)
}

// Load decodes a scenario document from r (path is used only for error
// messages) and validates it.
func Load(r io.Reader, path string) (*scenario.Document, *validation.Result, error) {
	var doc scenario.Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, errs.Wrap(errs.KindInvalidScenario, fmt.Sprintf("decoding %s", path), err)
	}
	result := doc.Validate()
	return &doc, result, nil
}
