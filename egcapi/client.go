package egcapi

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// StatusReader reads the server section of the status document.
type StatusReader interface {
	Status() (Status, error)
	IsRecording() (bool, error)
	IsStreaming() (bool, error)
	IsCommentaryActive() (bool, error)
}

// Requester writes request flags into the client section.
type Requester interface {
	SelectScene(index int) error
	StartRecording() error
	StopRecording() error
	ToggleRecording() error
	SaveScreenshot() error
	SaveFlashbackBuffer(seconds int) error
	StartStreaming() error
	StopStreaming() error
	ToggleStreaming() error
	ActivateLiveCommentary() error
	DeactivateLiveCommentary() error
	ToggleLiveCommentary() error
}

// Controller is the full read/write surface of a Client.
type Controller interface {
	StatusReader
	Requester
}

// Ensure Client implements Controller at compile time.
var _ Controller = (*Client)(nil)

// Client reads and writes the Game Capture status document. It keeps no
// state besides the document path; every call re-reads the file.
type Client struct {
	path string
}

// NewClient resolves the document path (DefaultPath when path is empty) and
// verifies that a regular file exists there. Failures are *InitError.
func NewClient(path string) (*Client, error) {
	resolved := strings.TrimSpace(path)
	if resolved == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, &InitError{Err: err}
		}
		resolved = p
	}

	info, err := os.Stat(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InitError{Path: resolved, Err: ErrDocumentNotFound}
		}
		return nil, &InitError{Path: resolved, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &InitError{Path: resolved, Err: fmt.Errorf("%w: not a regular file", ErrDocumentNotFound)}
	}
	return &Client{path: resolved}, nil
}

// Path returns the resolved document path.
func (c *Client) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

// Load reads and parses the document.
func (c *Client) Load() (*Document, error) {
	if c == nil {
		return nil, errClientNil
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", c.path, err)
	}
	return doc, nil
}

// Save writes doc back over the whole file.
func (c *Client) Save(doc *Document) error {
	if c == nil {
		return errClientNil
	}
	if doc == nil {
		return fmt.Errorf("document is nil")
	}
	if err := os.WriteFile(c.path, doc.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

type clientField struct {
	key   string
	value any
}

// request performs one read-modify-write cycle setting the given client
// fields.
func (c *Client) request(fields ...clientField) error {
	doc, err := c.Load()
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := doc.SetClient(f.key, f.value); err != nil {
			return err
		}
	}
	return c.Save(doc)
}

func (c *Client) readBool(key string) (bool, error) {
	doc, err := c.Load()
	if err != nil {
		return false, err
	}
	return doc.Bool(SectionServer, key)
}

func (c *Client) readInt(key string) (int, error) {
	doc, err := c.Load()
	if err != nil {
		return 0, err
	}
	return doc.Int(SectionServer, key)
}

func (c *Client) readFlags(key string) (Flags, error) {
	mask, err := c.readInt(key)
	if err != nil {
		return Flags{}, err
	}
	return DecodeFlags(mask), nil
}
