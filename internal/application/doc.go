// Package application provides launcher initialization and dependency wiring.
// It encapsulates path resolution, precondition checks, environment
// preparation, and runner spawning, keeping the main package focused on CLI
// parsing and exit-code handling.
package application
