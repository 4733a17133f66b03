// Package config provides configuration loading, merging, and validation
// facilities for the finlock client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags (collected by the CLI layer, passed in as overrides)
//  2. Environment variables
//  3. JSON config file (path resolved from sources 1 and 2)
//
// The main entry point is [GetClientConfig].
package config
