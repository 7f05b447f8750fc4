// Package protocol owns the workflow-command wire contract.
//
// Ownership boundary:
// - command-line form: ::name key=value,key=value::message
// - data and property-value escaping rules
// - single-line and stream parsing primitives
//
// The package only produces and consumes strings; writing the encoded line
// to the right place is the caller's concern.
package protocol
