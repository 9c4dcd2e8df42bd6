package scenario

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	TargetA = "a"
	TargetB = "b"

	TypeInt    = "int"
	TypeString = "string"
	TypeFlaky  = "flaky"
	TypePinned = "pinned"

	FeatureNoBackup = "no-backup"
	FeatureStrict   = "strict"
)

var ErrInvalidStep = errors.New("invalid scenario step")

// LoadFile loads and parses a YAML scenario file from the given path.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Scenario and validates it.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario

	err := yaml.Unmarshal(data, &sc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	applyDefaults(&sc)

	if err := validate(&sc); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Marshal serializes a Scenario to YAML.
func Marshal(sc *Scenario) ([]byte, error) {
	return yaml.Marshal(sc)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(sc *Scenario) {
	if sc.Name == "" {
		sc.Name = "unnamed"
	}

	for i := range sc.Steps {
		if sc.Steps[i].Target == "" {
			sc.Steps[i].Target = TargetA
		}
	}
}

func validate(sc *Scenario) error {
	var errs []error

	for _, f := range sc.Features {
		if f != FeatureNoBackup && f != FeatureStrict {
			errs = append(errs, fmt.Errorf("unknown feature %q", f))
		}
	}

	for i, step := range sc.Steps {
		if err := validateStep(step); err != nil {
			errs = append(errs, fmt.Errorf("%w %d (%s): %w", ErrInvalidStep, i+1, step.Op, err))
		}
	}

	return errors.Join(errs...)
}

func validateStep(step Step) error {
	if step.Target != TargetA && step.Target != TargetB {
		return fmt.Errorf("unknown target %q", step.Target)
	}

	switch step.Op {
	case OpAssign, OpEmplace:
	default:
		return nil
	}

	switch step.Type {
	case TypeInt:
		_, err := strconv.Atoi(step.Value)
		return err
	case TypeString, TypeFlaky, TypePinned:
		return nil
	default:
		return fmt.Errorf("unknown type %q", step.Type)
	}
}
