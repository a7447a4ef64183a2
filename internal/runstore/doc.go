// Package runstore persists alignment run history in a SQLite database
// inside the workspace. Each run records the inputs' fingerprints, the
// resolution coverage, and where the timeline was written, so previous runs
// can be listed and compared.
package runstore
