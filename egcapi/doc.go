// Package egcapi reads and writes Elgato Game Capture's EGCAPILite status
// document.
//
// # Overview
//
// Game Capture exposes a small control surface through a JSON file in the
// user's config directory:
//
//	<config root>/Elgato/GameCapture/EGCAPILite/EGCAPILite.json
//
// Game Capture rewrites the "server" section continuously while it runs and
// polls the "client" section for request flags at its own cadence. This
// package projects the server fields into typed values and sets request
// flags in the client section. Whether a flag is cleared after Game Capture
// consumes it is up to Game Capture.
//
// # Document Shape
//
//	{
//	  "server": {
//	    "capabilityFlags": 63, "featureFlags": 63,
//	    "isCommentaryActive": false, "isRecording": false,
//	    "isRunning": true, "isStreaming": false,
//	    "numScenes": 10, "selectedSceneIndex": 0
//	  },
//	  "client": {
//	    "startRecording": false, "stopRecording": false,
//	    "saveScreenshot": false,
//	    "saveFlashbackBuffer": false, "saveFlashbackBufferSeconds": 30,
//	    "startStreaming": false, "stopStreaming": false,
//	    "activateCommentary": false, "deactivateCommentary": false,
//	    "selectScene": false, "selectSceneIndex": 0
//	  }
//	}
//
// capabilityFlags and featureFlags are 6-bit masks decoded by DecodeFlags:
//
//	bit 0  stream_command
//	bit 1  record
//	bit 2  screenshot
//	bit 3  flashback_record
//	bit 4  stream
//	bit 5  live_commentary
//
// # Client Usage
//
//	client, err := egcapi.NewClient("") // DefaultPath()
//	if errors.Is(err, egcapi.ErrDocumentNotFound) {
//		log.Fatal("Game Capture has not created its status document yet")
//	}
//
//	recording, err := client.IsRecording()
//	if err := client.ToggleRecording(); err != nil {
//		log.Printf("toggle recording: %v", err)
//	}
//	if err := client.SaveFlashbackBuffer(30); err != nil {
//		log.Printf("flashback: %v", err)
//	}
//
// # Read-Modify-Write
//
// Client holds nothing but the path. Every getter reads and parses the whole
// file; every setter reads it again, sets its client fields, and writes the
// whole document back. The rewrite keeps the original member order and
// copies every member it did not touch byte for byte, so fields Game
// Capture added since the last read survive.
//
// There is no locking. Game Capture and any other writer race with this
// package and the last write wins. The Toggle operations read state and
// write a request in two separate cycles; a state change in between goes
// unnoticed.
//
// # Error Handling
//
//   - NewClient returns *InitError wrapping ErrDocumentNotFound when the file
//     is absent or not a regular file.
//   - ErrMalformedDocument: invalid JSON or a section that is not an object.
//   - *FieldError wrapping ErrFieldMissing or ErrFieldType for absent or
//     mistyped keys. No defaults are substituted.
//   - I/O errors are wrapped ("read document: ...", "write document: ...").
//
// Nothing is retried.
package egcapi
