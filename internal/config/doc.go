// Package config provides configuration loading, merging, and validation
// facilities for the offline core.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON, or YAML when the path ends in .yaml/.yml)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the runtime view consumed by the core.
package config
