// Package config provides configuration loading, merging, and validation
// facilities for the job board server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. .env file (exported into the environment, existing variables kept)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied after merging and the result is validated.
// The main entry point is [GetStructuredConfig].
package config
