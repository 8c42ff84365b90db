// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that turns a Config into
// a running scroller, decoupled from the CLI entrypoint.
package app
