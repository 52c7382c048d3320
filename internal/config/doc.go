// Package config loads, validates, and normalizes slidecast configuration
// from TOML with sane defaults, and exposes helpers for locating state
// directories and external binaries.
package config
