package variant_test

import (
	"bytes"
	"errors"
	"log/slog"
	"tagged-variant/lifecycle"
	"tagged-variant/variant"
)

var (
	errCopy = errors.New("copy failed")
	errMove = errors.New("move failed")
)

// ledger counts live values and lets a test fail the nth copy or move.
type ledger struct {
	live      int
	copies    int
	failCopy  int // fail the copy with this ordinal, 0 never
	moves     int
	failMove  int
	destroyed int
}

// counted copies through its ledger and may fail.
type counted struct {
	id  int
	led *ledger
}

func newCounted(led *ledger, id int) counted {
	led.live++
	return counted{id: id, led: led}
}

func (c counted) Copy() (counted, error) {
	c.led.copies++
	if c.led.copies == c.led.failCopy {
		return counted{}, errCopy
	}

	c.led.live++

	return c, nil
}

func (c *counted) Destroy() {
	c.led.live--
	c.led.destroyed++
}

func (c counted) Equal(other counted) bool { return c.id == other.id }

// pinnedCounted is counted without any relocation path.
type pinnedCounted struct{ counted }

func (pinnedCounted) Immovable() {}

func (p pinnedCounted) Copy() (pinnedCounted, error) {
	c, err := p.counted.Copy()
	return pinnedCounted{c}, err
}

// movable relocates through its ledger, failing the nth move.
type movable struct {
	name string
	led  *ledger
}

func (m movable) Move() (movable, error) {
	m.led.moves++
	if m.led.moves == m.led.failMove {
		return movable{}, errMove
	}

	return m, nil
}

// token swaps through a hook.
type token struct{ swaps *int }

func (t *token) Swap(other *token) error {
	*t.swaps++
	t.swaps, other.swaps = other.swaps, t.swaps

	return nil
}

type name string

func (n name) String() string { return string(n) }

func traced(features ...variant.SchemaOption) (*bytes.Buffer, []variant.SchemaOption) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	return buf, append(features, variant.WithLogger(logger))
}

func tables2[A, B any]() []*lifecycle.Table {
	return []*lifecycle.Table{lifecycle.For[A](), lifecycle.For[B]()}
}

func tables3[A, B, C any]() []*lifecycle.Table {
	return append(tables2[A, B](), lifecycle.For[C]())
}
