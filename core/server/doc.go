// Package server holds the HTTP server configuration.
//
// The serve command owns the Fiber application; this package only defines
// the settings it reads: listen port, API key, read timeout and body limit.
package server
