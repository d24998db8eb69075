// Package config loads, normalizes, and validates the shelf
// configuration file. All settings reach the rest of the program as an
// explicit *Config; nothing reads ambient global state.
package config
