// Package ui provides the egcctl terminal dashboard built on Bubble Tea.
//
// The dashboard renders the latest state.Snapshot (refreshed by the app
// poller) and writes requests through an egcapi.Requester. Requests run as
// tea.Cmds so a slow disk never blocks rendering; their outcome is shown in
// the status line and failures are never fatal.
//
// # Layout
//
//   - Header: running, recording, streaming and commentary badges, the
//     selected scene and how long ago the document changed.
//   - Path bar: the status document path and the flashback length.
//   - Flag table: capability flags, plus feature flags when toggled on.
//   - Scene strip: one chip per scene, selected scene highlighted.
//   - Status line and key hints.
//
// # Key Bindings
//
//   - r / s / c: Toggle recording, streaming, live commentary
//   - p: Screenshot
//   - f: Save flashback buffer; + and - adjust its length
//   - 0-9: Select scene; [ and ] step through scenes
//   - F: Toggle feature flags column
//   - T: Cycle theme (persisted to prefs.toml)
//   - ?: Help
//   - q or Ctrl+C: Quit
package ui
