// Package server holds the server configuration.
//
// The main application entry points handle startup; this package only defines the
// settings shared by the HTTP server (listen port) and the MCP server (the name and
// version announced during initialization).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start and serve commands.
package server
