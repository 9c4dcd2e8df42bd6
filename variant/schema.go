package variant

import (
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"tagged-variant/internal/common"
	"tagged-variant/lifecycle"
	"tagged-variant/options"
	"tagged-variant/storage"
	"tagged-variant/utils"
)

// Valueless is the index of a variant that holds no alternative.
const Valueless = storage.Valueless

// Empty is the marker standing for the valueless state. Get[Empty] succeeds only
// on a valueless variant and always returns the same marker.
type Empty struct{}

var (
	emptyMarker Empty
	emptyType   = reflect.TypeFor[Empty]()
)

// Schema is the closed, ordered set of alternatives of a variant.
type Schema struct {
	alts     []*lifecycle.Table
	features options.FeatureEnum
	logger   *slog.Logger
}

type SchemaOption func(*Schema)

// WithFeatures replaces the default feature set.
func WithFeatures(features options.FeatureEnum) SchemaOption {
	return func(s *Schema) {
		s.features = features
	}
}

// WithLogger enables tracing of engine decisions to logger at debug level.
func WithLogger(logger *slog.Logger) SchemaOption {
	return func(s *Schema) {
		s.logger = logger
	}
}

// NewSchema builds a schema of the given alternatives, in order. The same type
// may appear more than once; such alternatives are only reachable by index.
func NewSchema(alts []*lifecycle.Table, opts ...SchemaOption) *Schema {
	if common.IsEmpty(alts) {
		panic("variant: schema needs at least one alternative")
	}

	for _, alt := range alts {
		if alt == nil || alt.Type == emptyType {
			panic("variant: the valueless marker cannot be an alternative")
		}
	}

	s := &Schema{
		alts:     slices.Clone(alts),
		features: options.FeatureDefault,
	}

	for _, opt := range opts {
		opt(s)
	}

	switch {
	case s.logger != nil:
		s.features = s.features.With(options.FeatureTrace)
	case s.features.Has(options.FeatureTrace):
		s.logger = slog.Default()
	default:
		s.logger = slog.New(slog.DiscardHandler)
	}

	return s
}

func (s *Schema) Len() int {
	return len(s.alts)
}

func (s *Schema) Features() options.FeatureEnum {
	return s.features
}

// TypeAt returns the type of alternative i, or nil when i is out of range.
func (s *Schema) TypeAt(i int) reflect.Type {
	if !utils.InBounds(i, len(s.alts)) {
		return nil
	}

	return s.alts[i].Type
}

// Table returns the lifecycle table of alternative i.
func (s *Schema) Table(i int) *lifecycle.Table {
	return s.alts[i]
}

// Types returns the alternative types in order.
func (s *Schema) Types() []reflect.Type {
	types := make([]reflect.Type, len(s.alts))
	for i, alt := range s.alts {
		types[i] = alt.Type
	}

	return types
}

func (s *Schema) String() string {
	return "variant" + common.TypeList(s.Types())
}

// SameAlternatives reports whether variants of s and other may be mixed: both
// list the same types in the same order. A nil schema is compatible with any.
func (s *Schema) SameAlternatives(other *Schema) bool {
	if s == nil || other == nil || s == other {
		return true
	}

	if len(s.alts) != len(other.alts) {
		return false
	}

	for i := range s.alts {
		if s.alts[i].Type != other.alts[i].Type {
			return false
		}
	}

	return true
}

// exact returns the indices of alternatives of exactly rtype.
func (s *Schema) exact(rtype reflect.Type) []int {
	var found []int
	for i, alt := range s.alts {
		if alt.Type == rtype {
			found = append(found, i)
		}
	}

	return found
}

// unique returns the single alternative of exactly rtype.
func (s *Schema) unique(rtype reflect.Type) (int, error) {
	found := s.exact(rtype)
	switch {
	case common.IsSingle(found):
		return found[0], nil
	case common.IsMultiple(found):
		return 0, ambiguous(rtype, found)
	default:
		return 0, noAlternative(rtype)
	}
}

// resolve picks the alternative a value of rtype is assigned to: the single
// exact match, or with FeatureConvertibleAssign the single alternative rtype
// is assignable to.
func (s *Schema) resolve(rtype reflect.Type) (int, error) {
	if !common.IsEmpty(s.exact(rtype)) || !s.features.Has(options.FeatureConvertibleAssign) {
		return s.unique(rtype)
	}

	var assignable []int
	for i, alt := range s.alts {
		if rtype.AssignableTo(alt.Type) {
			assignable = append(assignable, i)
		}
	}

	switch {
	case common.IsSingle(assignable):
		return assignable[0], nil
	case common.IsMultiple(assignable):
		return 0, ambiguous(rtype, assignable)
	default:
		return 0, noAlternative(rtype)
	}
}

// accepts checks that a value of rtype may be stored as alternative i.
func (s *Schema) accepts(i int, rtype reflect.Type) error {
	alt := s.TypeAt(i)
	switch {
	case alt == nil:
		return ErrIndexOutOfRange
	case alt == rtype:
		return nil
	case s.features.Has(options.FeatureConvertibleAssign) && rtype.AssignableTo(alt):
		return nil
	default:
		return noAlternative(rtype)
	}
}

func (s *Schema) trace(path PathEnum, from, to int, rtype reflect.Type) {
	if !s.features.Has(options.FeatureTrace) {
		return
	}

	attrs := []any{
		slog.String("path", path.String()),
		slog.Int("from", from),
		slog.Int("to", to),
		slog.Bool("strong", path.Strong()),
	}
	if rtype != nil {
		attrs = append(attrs, slog.String("type", common.TypeStr(rtype)))
	}

	s.logger.Debug("variant transition", attrs...)
}

type schemaKey [4]reflect.Type

var schemas sync.Map // schemaKey -> *Schema

func cached(alts ...*lifecycle.Table) *Schema {
	var key schemaKey
	for i, alt := range alts {
		key[i] = alt.Type
	}

	if s, ok := schemas.Load(key); ok {
		return s.(*Schema)
	}

	s, _ := schemas.LoadOrStore(key, NewSchema(alts))

	return s.(*Schema)
}

// Types1 returns the shared default schema of one alternative.
func Types1[A any]() *Schema {
	return cached(lifecycle.For[A]())
}

// Types2 returns the shared default schema of alternatives A and B.
func Types2[A, B any]() *Schema {
	return cached(lifecycle.For[A](), lifecycle.For[B]())
}

// Types3 returns the shared default schema of alternatives A, B and C.
func Types3[A, B, C any]() *Schema {
	return cached(lifecycle.For[A](), lifecycle.For[B](), lifecycle.For[C]())
}

// Types4 returns the shared default schema of four alternatives.
func Types4[A, B, C, D any]() *Schema {
	return cached(lifecycle.For[A](), lifecycle.For[B](), lifecycle.For[C](), lifecycle.For[D]())
}
