// Package config handles configuration management for joymap.
// It supports loading configuration from multiple sources including
// TOML and YAML files, environment variables, and command-line flags.
package config
