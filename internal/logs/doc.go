// Package logs provides bounded-memory log file tailing for the CLI's
// `logs` command: last-N-lines reads and polling follow mode that survives
// file rotation.
package logs
