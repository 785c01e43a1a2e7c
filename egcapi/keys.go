package egcapi

// Section names a top-level object of the status document.
type Section string

const (
	// SectionServer holds status written by Game Capture.
	SectionServer Section = "server"
	// SectionClient holds request flags read by Game Capture.
	SectionClient Section = "client"
)

// server keys
const (
	keyCapabilityFlags    = "capabilityFlags"
	keyFeatureFlags       = "featureFlags"
	keyCommentaryActive   = "isCommentaryActive"
	keyRecording          = "isRecording"
	keyRunning            = "isRunning"
	keyStreaming          = "isStreaming"
	keyNumScenes          = "numScenes"
	keySelectedSceneIndex = "selectedSceneIndex"
)

// client keys
const (
	keyStartRecording             = "startRecording"
	keyStopRecording              = "stopRecording"
	keySaveScreenshot             = "saveScreenshot"
	keySaveFlashbackBuffer        = "saveFlashbackBuffer"
	keySaveFlashbackBufferSeconds = "saveFlashbackBufferSeconds"
	keyStartStreaming             = "startStreaming"
	keyStopStreaming              = "stopStreaming"
	keyActivateCommentary         = "activateCommentary"
	keyDeactivateCommentary       = "deactivateCommentary"
	keySelectScene                = "selectScene"
	keySelectSceneIndex           = "selectSceneIndex"
)
