// Package faults defines the failure kinds shared by the acquisition,
// storage, selection, and display layers.
//
// Every I/O-facing operation returns an error tagged with one of the sentinel
// markers via Wrap; the CLI is the only layer that turns them into user
// messages and exit statuses (ExitCode).
package faults
