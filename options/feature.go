package options

type FeatureEnum int

const (
	FeatureConvertibleAssign FeatureEnum = 1 << iota // assign a value to the single alternative its type is assignable to
	FeatureNoBackup                                  // never stage through backup storage, use the valueless path instead
	FeatureTrace                                     // log engine path decisions at debug level

	FeatureAll  = (1 << iota) - 1 // all features combined
	FeatureNone = 0               // no features selected

	FeatureDefault = FeatureConvertibleAssign
)

// Has reports whether every feature in x is enabled in f.
func (f FeatureEnum) Has(x FeatureEnum) bool {
	return f&x == x
}

// With returns f with x enabled.
func (f FeatureEnum) With(x FeatureEnum) FeatureEnum {
	return f | x
}

// Without returns f with x disabled.
func (f FeatureEnum) Without(x FeatureEnum) FeatureEnum {
	return f &^ x
}
