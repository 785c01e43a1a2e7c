package egcapi

// SelectScene asks Game Capture to switch Stream Command scenes. index is
// not checked against NumScenes.
func (c *Client) SelectScene(index int) error {
	return c.request(
		clientField{keySelectScene, true},
		clientField{keySelectSceneIndex, index},
	)
}

// StartRecording requests a recording start. stopRecording is left as is.
func (c *Client) StartRecording() error {
	return c.request(clientField{keyStartRecording, true})
}

// StopRecording requests a recording stop. startRecording is left as is.
func (c *Client) StopRecording() error {
	return c.request(clientField{keyStopRecording, true})
}

// ToggleRecording stops an active recording or starts a new one. The state
// read and the request write are separate file accesses, so a change made
// by Game Capture in between is not detected.
func (c *Client) ToggleRecording() error {
	recording, err := c.IsRecording()
	if err != nil {
		return err
	}
	if recording {
		return c.StopRecording()
	}
	return c.StartRecording()
}

// SaveScreenshot requests a screenshot.
func (c *Client) SaveScreenshot() error {
	return c.request(clientField{keySaveScreenshot, true})
}

// SaveFlashbackBuffer requests a Flashback Recording of the last seconds.
// seconds is passed through unchecked.
func (c *Client) SaveFlashbackBuffer(seconds int) error {
	return c.request(
		clientField{keySaveFlashbackBuffer, true},
		clientField{keySaveFlashbackBufferSeconds, seconds},
	)
}

// StartStreaming requests a stream start.
func (c *Client) StartStreaming() error {
	return c.request(clientField{keyStartStreaming, true})
}

// StopStreaming requests a stream stop.
func (c *Client) StopStreaming() error {
	return c.request(clientField{keyStopStreaming, true})
}

// ToggleStreaming stops or starts streaming based on IsStreaming. Same race
// as ToggleRecording.
func (c *Client) ToggleStreaming() error {
	streaming, err := c.IsStreaming()
	if err != nil {
		return err
	}
	if streaming {
		return c.StopStreaming()
	}
	return c.StartStreaming()
}

// ActivateLiveCommentary requests Live Commentary on.
func (c *Client) ActivateLiveCommentary() error {
	return c.request(clientField{keyActivateCommentary, true})
}

// DeactivateLiveCommentary requests Live Commentary off.
func (c *Client) DeactivateLiveCommentary() error {
	return c.request(clientField{keyDeactivateCommentary, true})
}

// ToggleLiveCommentary flips Live Commentary based on IsCommentaryActive.
func (c *Client) ToggleLiveCommentary() error {
	active, err := c.IsCommentaryActive()
	if err != nil {
		return err
	}
	if active {
		return c.DeactivateLiveCommentary()
	}
	return c.ActivateLiveCommentary()
}
