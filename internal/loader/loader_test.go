package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenario = `
apiVersion: alpha
dates:
  range:
    startDate: "2025-01-01"
    endDate: "2025-01-07"
people:
  items:
    - id: alice
shiftTypes:
  items:
    - id: D
preferences:
  - type: AtMostOneShiftPerDay
`

func TestLoadValidScenario(t *testing.T) {
	doc, result, err := Load(strings.NewReader(validScenario), "inline")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.True(t, result.IsValid())
	assert.Equal(t, "alpha", doc.APIVersion)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, _, err := Load(strings.NewReader("not: [valid yaml"), "inline")
	assert.Error(t, err)
}

func TestLoadValidatesContent(t *testing.T) {
	doc, result, err := Load(strings.NewReader("apiVersion: alpha\n"), "inline")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.False(t, result.IsValid())
}

func TestLoadFileMissing(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadFileReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validScenario), 0644))

	doc, result, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, result.IsValid())
	assert.Equal(t, "alpha", doc.APIVersion)
}
