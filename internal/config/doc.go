// Package config provides configuration loading, merging, and validation
// facilities for the registry server and its terminal client.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the server runtime and
// [GetClientConfig] for the client.
package config
