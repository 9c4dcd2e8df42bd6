// Package scenario loads YAML scripts of variant operations and replays them
// against two demo variants, a and b, sharing one schema:
//
//	variant(int, string, scenario.Flaky, scenario.Pinned)
//
// Flaky copies may be made to fail and relocate freely; Pinned copies may fail
// and never relocate. Replaying a script with tracing on shows which engine
// path every step took and what state it left behind.
package scenario
