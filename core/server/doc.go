// Package server holds the HTTP server configuration.
//
// The serve command exposes the fetch handler over HTTP; this package defines the
// listen port and the optional API key protecting it.
package server
