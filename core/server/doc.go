// Package server holds the HTTP server configuration.
//
// The serve command builds the Fiber application itself; this package only
// defines the port and API key settings embedded by core/config.
package server
