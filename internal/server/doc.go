// Package server runs the dev server HTTP transport lifecycle:
// startup, signal handling, and graceful shutdown.
package server
