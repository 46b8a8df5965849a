// Package config provides configuration loading, merging, and validation
// facilities for the routing composer.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources fill fields the earlier ones left empty):
//  1. Environment variables
//  2. Built-in defaults
//
// The main entry point is [GetServerConfig], used by the application composer
// to resolve the listening port and display name when the caller does not
// supply them explicitly.
package config
