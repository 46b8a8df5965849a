// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Server holds the network and identification settings of the composed
// application. It is populated by merging environment variables over the
// built-in defaults.
type Server struct {
	// Port is the TCP port the composed application listens on.
	// Populated from the PORT environment variable; falls back to
	// DefaultPort when the variable is unset or not a valid integer.
	Port int `env:"PORT"`

	// Name is the display name used in the startup diagnostic.
	// Populated from the APP_NAME environment variable.
	Name string `env:"APP_NAME"`
}

const (
	// DefaultPort is the listening port used when PORT is unset or
	// cannot be parsed as an integer.
	DefaultPort = 3000

	// DefaultName is the display name used when no name is given.
	DefaultName = "application"
)

// GetServerConfig resolves the [Server] configuration by merging the
// environment snapshot over the built-in defaults.
//
// An environment snapshot that fails to parse (e.g. PORT=abc) is discarded
// entirely, so a malformed variable degrades to the defaults instead of
// failing startup.
func GetServerConfig() (*Server, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}

// validate normalizes the merged configuration: out-of-range ports are reset
// to [DefaultPort] and an empty name is reset to [DefaultName].
func (cfg *Server) validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = DefaultPort
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	return nil
}
