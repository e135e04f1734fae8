// Package scenario holds the input contract: the YAML-sourced scheduling
// document, independent of solver concerns. Validation accumulates into a
// validation.Result rather than failing fast on the first problem found.
package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the top-level scenario as ingested by internal/loader.
type Document struct {
	APIVersion  string       `yaml:"apiVersion"`
	Dates       Dates        `yaml:"dates"`
	Country     *string      `yaml:"country"`
	People      People       `yaml:"people"`
	ShiftTypes  ShiftTypes   `yaml:"shiftTypes"`
	Preferences []Preference `yaml:"-"`
}

// UnmarshalYAML decodes the fixed fields normally, then dispatches each
// "preferences" list entry to its concrete variant via DecodePreference —
// the tagged-variant sum type can't be unmarshaled directly since its Go
// representation has no single struct shape.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	var shadow struct {
		APIVersion  string      `yaml:"apiVersion"`
		Dates       Dates       `yaml:"dates"`
		Country     *string     `yaml:"country"`
		People      People      `yaml:"people"`
		ShiftTypes  ShiftTypes  `yaml:"shiftTypes"`
		Preferences []yaml.Node `yaml:"preferences"`
	}
	if err := value.Decode(&shadow); err != nil {
		return err
	}
	d.APIVersion = shadow.APIVersion
	d.Dates = shadow.Dates
	d.Country = shadow.Country
	d.People = shadow.People
	d.ShiftTypes = shadow.ShiftTypes
	d.Preferences = make([]Preference, 0, len(shadow.Preferences))
	for i := range shadow.Preferences {
		pref, err := DecodePreference(&shadow.Preferences[i])
		if err != nil {
			return fmt.Errorf("preferences[%d]: %w", i, err)
		}
		d.Preferences = append(d.Preferences, pref)
	}
	return nil
}

// Dates carries the planning horizon and any user-declared date groups.
type Dates struct {
	Range  DateRange `yaml:"range"`
	Groups []Group   `yaml:"groups"`
}

// DateRange is an inclusive [StartDate, EndDate] interval, both ISO dates
// (YYYY-MM-DD).
type DateRange struct {
	StartDate string `yaml:"startDate"`
	EndDate   string `yaml:"endDate"`
}

// Person is a scheduled individual plus their pre-horizon shift history
// (used by ShiftTypeSuccessions back-stitching).
type Person struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description,omitempty"`
	History     []string `yaml:"history,omitempty"`
}

// People bundles the flat roster with named subsets.
type People struct {
	Items  []Person `yaml:"items"`
	Groups []Group  `yaml:"groups"`
}

// ShiftType is a named category of work (e.g. "D", "E", "N").
type ShiftType struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description,omitempty"`
}

// ShiftTypes bundles the flat shift-type catalog with named subsets.
type ShiftTypes struct {
	Items  []ShiftType `yaml:"items"`
	Groups []Group     `yaml:"groups"`
}

// Group is a named set whose members may be element IDs or other group IDs,
// resolved recursively at context-build time.
type Group struct {
	ID      string   `yaml:"id"`
	Members []string `yaml:"members"`
}
