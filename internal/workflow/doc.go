// Package workflow performs the operations a job step uses to talk back to
// its host runner: stdout workflow commands and appends to the side-channel
// files the host advertises through environment variables.
//
// Ownership boundary:
// - channel selection per operation (file channel vs legacy stdout command)
// - environment reads for inputs, saved state, and the debug flag
// - append discipline for the env, path, output, and state files
//
// One Service invocation performs one logical operation and exits; nothing
// is shared across invocations except the host's own files, whose
// append-only discipline the host relies on.
package workflow
