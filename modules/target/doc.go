// Package target validates and stores target definitions: a named metric
// goal with an owner, tags and three color thresholds.
//
// Validate is the form check run on every submission. It is pure and
// returns a Decision instead of an error:
//
//	d := target.Validate(target.Input{Name: "CPU", Owner: "alice"})
//	// d.Accepted == false
//	// d.Message == "Please enter a positive number for Target Metric."
//
// Rules are checked in a fixed order and only the first failure is
// reported. A threshold that is present but not a positive number is
// rejected without a message unless WithStrictThresholds is used.
//
// Accepted inputs become Targets through New and are persisted by a
// Storage: MemoryStorage for tests and single-process use, PostgresStorage
// on top of pgx. Service exposes the form and a JSON API as a chi router,
// and Seed loads an initial set of definitions from YAML.
package target
