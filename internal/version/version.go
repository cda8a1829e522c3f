// Package version contains the current version of computectl. It is split
// from the main program for easy use by tests and other tooling.
package version

// Current is the string representing the current version of computectl.
const Current = "0.1.0"
