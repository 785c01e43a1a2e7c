package egcapi

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Document is one parsed copy of the status document. Client-section edits
// are applied to the raw bytes in place, so every byte outside the edited
// values is kept.
type Document struct {
	raw      []byte
	root     gjson.Result
	modified bool
}

// ParseDocument validates data as a JSON object and wraps it.
func ParseDocument(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformedDocument)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is %s, want object", ErrMalformedDocument, typeName(root))
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return &Document{raw: raw, root: gjson.ParseBytes(raw)}, nil
}

// Bool returns the boolean stored at section.key.
func (d *Document) Bool(section Section, key string) (bool, error) {
	value, err := d.field(section, key)
	if err != nil {
		return false, err
	}
	switch value.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	default:
		return false, &FieldError{Section: section, Key: key, Err: fmt.Errorf("%w: %s, want bool", ErrFieldType, typeName(value))}
	}
}

// Int returns the integer stored at section.key. Fractional numbers are
// rejected.
func (d *Document) Int(section Section, key string) (int, error) {
	value, err := d.field(section, key)
	if err != nil {
		return 0, err
	}
	if value.Type != gjson.Number {
		return 0, &FieldError{Section: section, Key: key, Err: fmt.Errorf("%w: %s, want integer", ErrFieldType, typeName(value))}
	}
	n := value.Int()
	if float64(n) != value.Num {
		return 0, &FieldError{Section: section, Key: key, Err: fmt.Errorf("%w: %s is not an integer", ErrFieldType, value.Raw)}
	}
	return int(n), nil
}

// SetClient sets client.key = value. The client section must already
// exist; the key need not, and new keys are appended to the end of client.
func (d *Document) SetClient(key string, value any) error {
	if _, err := d.section(SectionClient); err != nil {
		return err
	}
	path := string(SectionClient) + "." + gjson.Escape(key)
	raw, err := sjson.SetBytes(d.raw, path, value)
	if err != nil {
		return fmt.Errorf("set %s.%s: %w", SectionClient, key, err)
	}
	d.raw = raw
	d.root = gjson.ParseBytes(raw)
	d.modified = true
	return nil
}

// Modified reports whether SetClient has been called.
func (d *Document) Modified() bool {
	return d.modified
}

// Bytes returns a copy of the serialized document.
func (d *Document) Bytes() []byte {
	out := make([]byte, len(d.raw))
	copy(out, d.raw)
	return out
}

func (d *Document) section(section Section) (gjson.Result, error) {
	value := member(d.root, string(section))
	if !value.Exists() {
		return gjson.Result{}, &FieldError{Section: section, Err: ErrFieldMissing}
	}
	if !value.IsObject() {
		return gjson.Result{}, &FieldError{Section: section, Err: fmt.Errorf("%w: section is %s, want object", ErrMalformedDocument, typeName(value))}
	}
	return value, nil
}

func (d *Document) field(section Section, key string) (gjson.Result, error) {
	obj, err := d.section(section)
	if err != nil {
		return gjson.Result{}, err
	}
	value := member(obj, key)
	if !value.Exists() {
		return gjson.Result{}, &FieldError{Section: section, Key: key, Err: ErrFieldMissing}
	}
	return value, nil
}

// member looks key up literally, without gjson path syntax.
func member(obj gjson.Result, key string) gjson.Result {
	return obj.Get(gjson.Escape(key))
}

func typeName(value gjson.Result) string {
	switch {
	case value.IsObject():
		return "object"
	case value.IsArray():
		return "array"
	}
	switch value.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "bool"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		return "unknown"
	}
}
