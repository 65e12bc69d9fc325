// Package config reads process settings from the environment. The settings
// act as defaults that command-line flags override.
package config
