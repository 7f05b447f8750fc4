// Package cli wires the actionctl command tree.
//
// Ownership boundary:
// - flag and argument parsing into typed workflow requests
// - exit status mapping (diagnostics to stderr, status via ExitError)
// - config file resolution and logger setup
//
// Everything protocol-shaped is delegated to internal/protocol and
// internal/workflow; command RunE bodies stay thin.
package cli
