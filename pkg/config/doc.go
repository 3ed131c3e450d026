// Package config handles configuration management for discomon.
// It layers embedded defaults, an optional TOML or YAML config file,
// environment variables and command-line overrides, in that order.
package config
