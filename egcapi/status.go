package egcapi

// Status is every server field read from a single copy of the document.
type Status struct {
	Capabilities       Flags `json:"capabilities"`
	Features           Flags `json:"features"`
	CommentaryActive   bool  `json:"commentary_active"`
	Recording          bool  `json:"recording"`
	Running            bool  `json:"running"`
	Streaming          bool  `json:"streaming"`
	NumScenes          int   `json:"num_scenes"`
	SelectedSceneIndex int   `json:"selected_scene_index"`
}

// Status reads all server fields at once.
func (c *Client) Status() (Status, error) {
	doc, err := c.Load()
	if err != nil {
		return Status{}, err
	}
	return ReadStatus(doc)
}

// ReadStatus projects the server section of doc. The first missing or
// mistyped field aborts the read.
func ReadStatus(doc *Document) (Status, error) {
	var (
		s   Status
		err error
	)
	capabilities, err := doc.Int(SectionServer, keyCapabilityFlags)
	if err != nil {
		return Status{}, err
	}
	features, err := doc.Int(SectionServer, keyFeatureFlags)
	if err != nil {
		return Status{}, err
	}
	s.Capabilities = DecodeFlags(capabilities)
	s.Features = DecodeFlags(features)

	bools := []struct {
		key string
		dst *bool
	}{
		{keyCommentaryActive, &s.CommentaryActive},
		{keyRecording, &s.Recording},
		{keyRunning, &s.Running},
		{keyStreaming, &s.Streaming},
	}
	for _, b := range bools {
		if *b.dst, err = doc.Bool(SectionServer, b.key); err != nil {
			return Status{}, err
		}
	}

	if s.NumScenes, err = doc.Int(SectionServer, keyNumScenes); err != nil {
		return Status{}, err
	}
	if s.SelectedSceneIndex, err = doc.Int(SectionServer, keySelectedSceneIndex); err != nil {
		return Status{}, err
	}
	return s, nil
}

// Capabilities returns the actions Game Capture can perform right now.
func (c *Client) Capabilities() (Flags, error) {
	return c.readFlags(keyCapabilityFlags)
}

// Features returns the actions Game Capture supports. Game Capture sets
// every feature bit on startup, so this is rarely informative.
func (c *Client) Features() (Flags, error) {
	return c.readFlags(keyFeatureFlags)
}

// IsCommentaryActive reports whether Live Commentary is enabled.
func (c *Client) IsCommentaryActive() (bool, error) {
	return c.readBool(keyCommentaryActive)
}

// IsRecording reports whether Game Capture is recording.
func (c *Client) IsRecording() (bool, error) {
	return c.readBool(keyRecording)
}

// IsRunning reports whether Game Capture is running.
func (c *Client) IsRunning() (bool, error) {
	return c.readBool(keyRunning)
}

// IsStreaming reports whether Game Capture is streaming.
func (c *Client) IsStreaming() (bool, error) {
	return c.readBool(keyStreaming)
}

// NumScenes returns the number of Stream Command scenes (always 10 in
// current Game Capture builds).
func (c *Client) NumScenes() (int, error) {
	return c.readInt(keyNumScenes)
}

// SelectedSceneIndex returns the index of the active Stream Command scene.
func (c *Client) SelectedSceneIndex() (int, error) {
	return c.readInt(keySelectedSceneIndex)
}
