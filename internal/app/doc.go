// Package app wires configuration, the status document client, the poller
// and the dashboard together.
//
// # Overview
//
//	Run()
//	  ├─> config.Load()        egcctl config (TOML)
//	  ├─> logging.NewFromConfig()
//	  ├─> egcapi.NewClient()   fails when the document does not exist
//	  ├─> prefs.Load()         theme, feature grid visibility
//	  ├─> StartPoller()        first read, then background reads into state.Store
//	  └─> ui.Run()             Bubble Tea dashboard (blocks)
//
// # Polling Behavior
//
// The poller reads the whole server section through Client.Status and
// stats the document for its mtime. Failures (Game Capture caught halfway
// through a rewrite, the file removed) are recorded in the store and
// logged; the next attempt is delayed by calculateBackoff, doubling the
// interval per consecutive failure up to 30 seconds. A successful read
// resets the delay.
//
// # Error Handling
//
// Fatal (returned from Run): config parse errors, logger setup, a missing
// status document at startup. Everything after startup is recoverable and
// surfaces in the dashboard.
//
// # Logging
//
// The dashboard owns the terminal, so logs go to the writer in
// Options.LogWriter (a file via LogFile) or are discarded.
package app
