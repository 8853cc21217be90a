// Package http implements the HTTP transport of the lifecycle process.
//
// It wires routes to [lifecycle.Service] operations and adds the
// cross-cutting middleware: request tracing, access logging, response
// compression and panic recovery. Every state-changing route answers with
// the fresh session snapshot or the entity it created.
package http
