// Package main provides the entry point for the torinstall CLI.
//
// torinstall unpacks the bundled Tor distribution for the current host into
// a target directory and makes the Tor executable runnable.
//
// Usage:
//
//	torinstall install [--target <dir>] [--resources <dir>]
//	torinstall platform [--format text|yaml]
//	torinstall config init [-f]
//
// See --help for all available options.
package main

func main() {
	Execute()
}
