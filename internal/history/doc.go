// Package history records generate and render invocations in a SQLite
// database so past runs can be listed from the CLI. Recording is best-effort:
// callers log and continue when the store is unavailable.
package history
