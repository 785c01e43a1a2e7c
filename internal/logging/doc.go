// Package logging builds the slog logger used by egcctl.
//
// Two formats are supported: "console" (default) writes
//
//	2026-10-19T12:00:00Z INFO cli: request written key=startRecording
//
// with a "component" attribute promoted in front of the message, and "json"
// writes one object per record with ts/level/msg keys. Output goes to
// stderr so command output on stdout stays machine readable.
package logging
