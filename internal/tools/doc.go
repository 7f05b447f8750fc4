// Package tools provides reusable runtime helpers shared by command-line
// front-ends.
//
// Ownership boundary:
// - child process execution with pass-through streams
// - exit-code extraction conventions
package tools
