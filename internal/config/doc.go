// Package config loads launcher settings from multiple sources (an optional
// YAML file beside the binary, environment variables, CLI flags) with
// precedence: CLI flags > YAML config > Environment variables > Defaults.
// It exposes strongly typed settings to the rest of the application.
package config
