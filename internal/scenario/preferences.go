package scenario

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// PreferenceKind discriminates the sealed Preference sum type: one Go
// struct per variant, dispatched by Kind() rather than runtime
// type-string polymorphism.
type PreferenceKind string

const (
	KindShiftTypeRequirement PreferenceKind = "ShiftTypeRequirement"
	KindAtMostOneShiftPerDay PreferenceKind = "AtMostOneShiftPerDay"
	KindShiftRequest         PreferenceKind = "ShiftRequest"
	KindShiftTypeSuccessions PreferenceKind = "ShiftTypeSuccessions"
	KindShiftCount           PreferenceKind = "ShiftCount"
	KindShiftAffinity        PreferenceKind = "ShiftAffinity"
)

// Preference is implemented by every preference variant.
type Preference interface {
	Kind() PreferenceKind
}

// IDList accepts a YAML scalar or sequence and normalizes to a string slice.
// Most identifier-bearing preference fields (person, date, shift_type, ...)
// accept either shape in the source format.
type IDList []string

func (l *IDList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = IDList{s}
		return nil
	case yaml.SequenceNode:
		var s []string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = IDList(s)
		return nil
	default:
		return fmt.Errorf("expected scalar or sequence for id list, got %v", value.Kind)
	}
}

// PatternElement is one position of a ShiftTypeSuccessions pattern. A
// position may be a single specifier ("D", "ALL", "OFF", a group ID) or a
// nested list of specifiers meaning "any of these".
type PatternElement []string

func (p *PatternElement) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*p = PatternElement{s}
		return nil
	case yaml.SequenceNode:
		var s []string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*p = PatternElement(s)
		return nil
	default:
		return fmt.Errorf("expected scalar or sequence for pattern element, got %v", value.Kind)
	}
}

// Target is one ShiftCount target: either a literal non-negative integer or
// one of the AVG_SHIFTS_PER_PERSON expressions.
type Target struct {
	Literal *int
	Expr    string // "floor(AVG_SHIFTS_PER_PERSON)" | "ceil(...)" | "round(...)"
}

func (t *Target) UnmarshalYAML(value *yaml.Node) error {
	var i int
	if err := value.Decode(&i); err == nil {
		t.Literal = &i
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("target must be an integer or an AVG_SHIFTS_PER_PERSON expression: %w", err)
	}
	t.Expr = s
	return nil
}

// ShiftTypeRequirement fixes the number of people assigned to a shift type
// on a set of dates: exactly RequiredNumPeople when PreferredNumPeople is
// nil, otherwise between RequiredNumPeople and PreferredNumPeople.
type ShiftTypeRequirement struct {
	ShiftType          IDList  `yaml:"shift_type"`
	RequiredNumPeople  int     `yaml:"required_num_people"`
	PreferredNumPeople *int    `yaml:"preferred_num_people,omitempty"`
	QualifiedPeople    IDList  `yaml:"qualified_people,omitempty"`
	Date               IDList  `yaml:"date,omitempty"` // nil/empty means "all days"
	Weight             Weight  `yaml:"weight"`
}

func (ShiftTypeRequirement) Kind() PreferenceKind { return KindShiftTypeRequirement }

// AtMostOneShiftPerDay carries no parameters; its mere presence is the
// mandatory-hard-constraint trigger.
type AtMostOneShiftPerDay struct{}

func (AtMostOneShiftPerDay) Kind() PreferenceKind { return KindAtMostOneShiftPerDay }

// ShiftRequest rewards assigning (or not assigning, via OFF) a specific
// shift type to a person on a date. Weight defaults to +1 when omitted.
type ShiftRequest struct {
	Person    IDList  `yaml:"person"`
	Date      IDList  `yaml:"date"`
	ShiftType IDList  `yaml:"shift_type"`
	Weight    *Weight `yaml:"weight,omitempty"`
}

// ResolvedWeight returns the effective weight, applying the +1 default.
func (s ShiftRequest) ResolvedWeight() Weight {
	if s.Weight == nil {
		return 1
	}
	return *s.Weight
}

func (ShiftRequest) Kind() PreferenceKind { return KindShiftRequest }

// ShiftTypeSuccessions rewards a person following a specific sequence of
// shift types across consecutive days.
type ShiftTypeSuccessions struct {
	Person  IDList           `yaml:"person"`
	Pattern []PatternElement `yaml:"pattern"`
	Date    IDList           `yaml:"date,omitempty"`
	Weight  Weight           `yaml:"weight"`
}

func (ShiftTypeSuccessions) Kind() PreferenceKind { return KindShiftTypeSuccessions }

// ShiftCount constrains or scores how many times a person works a set of
// shift types across a set of dates. Expression and Target are parallel
// YAML sequences of equal length; a scalar value is not accepted and
// neither field is broadcast to the other's length.
type ShiftCount struct {
	Person          IDList   `yaml:"person"`
	CountDates      IDList   `yaml:"count_dates"`
	CountShiftTypes IDList   `yaml:"count_shift_types"`
	Expression      []string `yaml:"expression"`
	Target          []Target `yaml:"target"`
	Weight          Weight   `yaml:"weight"`
}

func (ShiftCount) Kind() PreferenceKind { return KindShiftCount }

// ShiftAffinity rewards (or penalizes) two people sharing or not sharing a
// shift type assignment on the same date; see internal/preference for the
// implemented semantics.
type ShiftAffinity struct {
	People1    IDList   `yaml:"people1"`
	People2    IDList   `yaml:"people2"`
	Dates      IDList   `yaml:"dates"`
	ShiftTypes []IDList `yaml:"shift_types"`
	Weight     Weight   `yaml:"weight"`
}

func (ShiftAffinity) Kind() PreferenceKind { return KindShiftAffinity }

// DecodePreference dispatches a raw YAML preference node to its concrete
// variant by the "type" discriminant, mirroring PREFERENCE_TYPES_TO_FUNC's
// dispatch but at decode time rather than compile time.
func DecodePreference(node *yaml.Node) (Preference, error) {
	var tag struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&tag); err != nil {
		return nil, fmt.Errorf("decoding preference type tag: %w", err)
	}
	switch PreferenceKind(tag.Type) {
	case KindShiftTypeRequirement:
		var p ShiftTypeRequirement
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		return p, nil
	case KindAtMostOneShiftPerDay:
		return AtMostOneShiftPerDay{}, nil
	case KindShiftRequest:
		var p ShiftRequest
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		return p, nil
	case KindShiftTypeSuccessions:
		var p ShiftTypeSuccessions
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		return p, nil
	case KindShiftCount:
		var p ShiftCount
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		if len(p.Expression) != len(p.Target) {
			return nil, fmt.Errorf("ShiftCount: expression and target must have equal length, got %d and %d", len(p.Expression), len(p.Target))
		}
		return p, nil
	case KindShiftAffinity:
		var p ShiftAffinity
		if err := node.Decode(&p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown preference type %q", tag.Type)
	}
}
