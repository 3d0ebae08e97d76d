// Package main hosts the kinonote CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// catalog searches, note creation and preview runs, and configuration
// scaffolding. It centralizes configuration resolution and structured
// logging setup so subcommands can focus on user experience instead of
// wiring.
package main
