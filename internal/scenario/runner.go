package scenario

import (
	"errors"
	"log/slog"
	"strconv"
	"tagged-variant/lifecycle"
	"tagged-variant/options"
	"tagged-variant/variant"
)

var ErrInjected = errors.New("injected failure")

// Flaky copies fail when Fail is set. It relocates without copying.
type Flaky struct {
	Value string
	Fail  bool
}

func (f Flaky) Copy() (Flaky, error) {
	if f.Fail {
		return Flaky{}, ErrInjected
	}

	return f, nil
}

// Pinned copies fail when Fail is set. It never relocates.
type Pinned struct {
	Value string
	Fail  bool
}

func (Pinned) Immovable() {}

func (p Pinned) Copy() (Pinned, error) {
	if p.Fail {
		return Pinned{}, ErrInjected
	}

	return p, nil
}

// Result is the outcome of one step: its error and the states it left.
type Result struct {
	Step   int
	Op     OpEnum
	Target string
	Err    error
	A, B   string
}

type Report struct {
	Name    string
	Results []Result
}

// Failed counts the steps that returned an error.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}

	return n
}

// NewSchema returns the demo schema configured by the scenario features.
func NewSchema(sc *Scenario, logger *slog.Logger) *variant.Schema {
	features := options.FeatureDefault
	if sc.Features.Contains(FeatureNoBackup) {
		features = features.With(options.FeatureNoBackup)
	}

	if sc.Features.Contains(FeatureStrict) {
		features = features.Without(options.FeatureConvertibleAssign)
	}

	opts := []variant.SchemaOption{variant.WithFeatures(features)}
	if logger != nil {
		opts = append(opts, variant.WithLogger(logger))
	}

	return variant.NewSchema([]*lifecycle.Table{
		lifecycle.For[int](),
		lifecycle.For[string](),
		lifecycle.For[Flaky](),
		lifecycle.For[Pinned](),
	}, opts...)
}

// Run replays sc on two empty variants. Engine decisions go to logger, which
// may be nil. Step failures are recorded in the report, not returned.
func Run(sc *Scenario, logger *slog.Logger) *Report {
	s := NewSchema(sc, logger)
	a, b := variant.New(s), variant.New(s)

	report := &Report{Name: sc.Name}
	for i, step := range sc.Steps {
		target, other := a, b
		if step.Target == TargetB {
			target, other = b, a
		}

		if logger != nil {
			logger.Info("scenario step", slog.Int("step", i+1), slog.String("op", step.Op.String()),
				slog.String("target", step.Target))
		}

		report.Results = append(report.Results, Result{
			Step:   i + 1,
			Op:     step.Op,
			Target: step.Target,
			Err:    apply(step, target, other),
			A:      a.String(),
			B:      b.String(),
		})
	}

	return report
}

func apply(step Step, target, other *variant.Variant) error {
	switch step.Op {
	case OpAssign:
		return assign(step, target)
	case OpEmplace:
		return emplace(step, target)
	case OpReset:
		target.Reset()
		return nil
	case OpCopy:
		return target.CopyFrom(other)
	case OpMove:
		return target.MoveFrom(other)
	case OpSwap:
		return variant.Swap(target, other)
	default:
		return ErrUnknownOp
	}
}

func assign(step Step, v *variant.Variant) error {
	switch step.Type {
	case TypeInt:
		n, _ := strconv.Atoi(step.Value)
		return variant.Assign(v, n)
	case TypeString:
		return variant.Assign(v, step.Value)
	case TypeFlaky:
		return variant.Assign(v, Flaky{Value: step.Value, Fail: step.Fail})
	default:
		return variant.Assign(v, Pinned{Value: step.Value, Fail: step.Fail})
	}
}

func emplace(step Step, v *variant.Variant) error {
	switch step.Type {
	case TypeInt:
		return variant.Emplace(v, build(step, func(p *int) { *p, _ = strconv.Atoi(step.Value) }))
	case TypeString:
		return variant.Emplace(v, build(step, func(p *string) { *p = step.Value }))
	case TypeFlaky:
		return variant.Emplace(v, build(step, func(p *Flaky) { p.Value = step.Value }))
	default:
		return variant.Emplace(v, build(step, func(p *Pinned) { p.Value = step.Value }))
	}
}

// build wraps set into a constructor that fails when the step asks for it.
func build[T any](step Step, set func(*T)) func(*T) error {
	return func(p *T) error {
		if step.Fail {
			return ErrInjected
		}

		set(p)

		return nil
	}
}
