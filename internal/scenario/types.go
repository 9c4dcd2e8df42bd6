package scenario

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Scenario is one script.
type Scenario struct {
	Name     string        `yaml:"name"`
	Features StringOrArray `yaml:"features,omitempty"`
	Steps    []Step        `yaml:"steps"`
}

// Step is a single operation on variant Target.
type Step struct {
	Op     OpEnum `yaml:"op"`
	Target string `yaml:"target,omitempty"` // "a" or "b", a by default
	Type   string `yaml:"type,omitempty"`   // alternative for assign and emplace
	Value  string `yaml:"value,omitempty"`
	Fail   bool   `yaml:"fail,omitempty"` // make the copy or the constructor fail
}

// StringOrArray is a list that may be written as a single string.
type StringOrArray []string

//go:generate go tool stringer -type=OpEnum -linecomment -output=op_string.go

type OpEnum int

const (
	OpUnknown OpEnum = iota // unknown
	OpAssign                // assign
	OpEmplace               // emplace
	OpReset                 // reset
	OpCopy                  // copy
	OpMove                  // move
	OpSwap                  // swap

	// OpTotal is a constant that represents the total number of operations defined
	OpTotal = int(iota)
)

var ErrUnknownOp = errors.New("unknown scenario operation")

// ParseOp returns the operation named s.
func ParseOp(s string) (OpEnum, error) {
	for op := range OpEnum(OpTotal) {
		if op != OpUnknown && op.String() == s {
			return op, nil
		}
	}

	return OpUnknown, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// UnmarshalYAML implements custom YAML unmarshaling for OpEnum.
func (o *OpEnum) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	op, err := ParseOp(s)
	if err != nil {
		return err
	}

	*o = op

	return nil
}

// MarshalYAML implements custom YAML marshaling for OpEnum.
func (o OpEnum) MarshalYAML() (any, error) {
	return o.String(), nil
}

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// Contains reports whether s lists v.
func (s StringOrArray) Contains(v string) bool {
	return slices.Contains(s, v)
}
