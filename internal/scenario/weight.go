package scenario

import (
	"fmt"
	"math"
)

// Weight is an extended-real coefficient on a soft preference term. Finite
// values are ordinary integers; PosInf/NegInf encode "hard must-be-true" /
// "hard must-be-false" respectively, mirroring the INF / -INF tokens
// accepted by the YAML scenario format.
type Weight int64

const (
	PosInf Weight = math.MaxInt64
	NegInf Weight = math.MinInt64
)

func (w Weight) IsPosInf() bool { return w == PosInf }
func (w Weight) IsNegInf() bool { return w == NegInf }
func (w Weight) IsFinite() bool { return w != PosInf && w != NegInf }

func (w Weight) String() string {
	switch w {
	case PosInf:
		return "INF"
	case NegInf:
		return "-INF"
	default:
		return fmt.Sprintf("%d", int64(w))
	}
}

// UnmarshalYAML accepts either a bare integer or the tokens "INF"/"+INF"/"-INF".
func (w *Weight) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case int:
		*w = Weight(v)
		return nil
	case int64:
		*w = Weight(v)
		return nil
	case string:
		switch v {
		case "INF", "+INF":
			*w = PosInf
		case "-INF":
			*w = NegInf
		default:
			return fmt.Errorf("invalid weight token %q: want an integer or INF/-INF", v)
		}
		return nil
	default:
		return fmt.Errorf("invalid weight value %v (%T): want an integer or INF/-INF", raw, raw)
	}
}
