// Package config loads, merges and validates reclaim configuration.
//
// Sources are merged in priority order (earlier sources win for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// Entry points are [GetServerConfig] for the lifecycle process and
// [GetClientConfig] for the terminal client.
package config
