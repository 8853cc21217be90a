// Package server runs the lifecycle process: the HTTP API and the background
// workers, with signal handling and graceful shutdown.
package server
