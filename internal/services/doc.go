// Package services defines shared error classification helpers consumed by
// the CLI commands and external tool integrations.
//
// The sentinel markers plus the Wrap helper keep failure messages uniform
// (component: operation: detail) and let callers branch on the class of
// failure (configuration vs validation vs external tool) without string
// matching.
package services
