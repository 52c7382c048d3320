// Package preflight validates the host environment before any media work
// starts: external binaries on PATH and directory permissions.
package preflight
