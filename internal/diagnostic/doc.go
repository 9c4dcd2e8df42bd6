// Package diagnostic provides structured errors, warnings and notes produced
// while compiling a visitor against concrete variant schemas.
//
// Key capabilities:
//   - Missing combination errors with suggested case signatures
//   - Ambiguous case reports listing the competing cases
//   - Unused case warnings
package diagnostic
