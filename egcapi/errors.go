package egcapi

import (
	"errors"
	"fmt"
)

var (
	// ErrDocumentNotFound reports that no status document exists at the
	// resolved path. Game Capture creates it on first launch.
	ErrDocumentNotFound = errors.New("status document not found")

	// ErrMalformedDocument reports a document that is not a JSON object or
	// whose sections are not objects.
	ErrMalformedDocument = errors.New("malformed status document")

	// ErrFieldMissing reports an expected key absent from the document.
	ErrFieldMissing = errors.New("field missing")

	// ErrFieldType reports a key whose value has the wrong JSON type.
	ErrFieldType = errors.New("unexpected field type")

	errClientNil = errors.New("client is nil")
)

// InitError is returned by NewClient when the document path cannot be
// resolved or does not name an existing file.
type InitError struct {
	Path string
	Err  error
}

func (e *InitError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("init client: %v", e.Err)
	}
	return fmt.Sprintf("init client: %s: %v", e.Path, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// FieldError identifies the section and key a lookup failed on.
type FieldError struct {
	Section Section
	Key     string
	Err     error
}

func (e *FieldError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Section, e.Key, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
