package domain

import (
	"bytes"
	"encoding/json"
)

// DefaultLocationsFile is the conventional venue list path.
const DefaultLocationsFile = "locations.json"

// LocationOptions controls where the venue list is read from.
type LocationOptions struct {
	// FileName is the path in the repository. Empty means DefaultLocationsFile.
	FileName string
	// Branch is the ref to read from. Empty means DefaultBranch.
	Branch string
}

// Path returns FileName, or DefaultLocationsFile when unset.
func (o LocationOptions) Path() string {
	if o.FileName == "" {
		return DefaultLocationsFile
	}
	return o.FileName
}

// Ref returns Branch, or DefaultBranch when unset.
func (o LocationOptions) Ref() string {
	if o.Branch == "" {
		return DefaultBranch
	}
	return o.Branch
}

// Coordinates is a WGS84 position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CustomField is a venue attribute outside the known schema,
// kept verbatim as found in the locations file.
type CustomField struct {
	Key   string
	Value json.RawMessage
}

// Location is a validated venue.
//
// The optional free-form fields hold whatever JSON value the file carried
// (strings, or json.Number for numbers) and are nil when absent or empty.
type Location struct {
	ID            string
	Name          string
	Address       *string
	Coordinates   *Coordinates
	URL           any
	What3Words    any
	Description   any
	Capacity      any
	Accessibility any

	// Custom holds unrecognised keys in file order.
	Custom []CustomField
}

// Field returns the raw value of a custom field.
func (l *Location) Field(key string) (json.RawMessage, bool) {
	for _, f := range l.Custom {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes the known fields followed by the custom fields,
// producing one flat object.
func (l Location) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	known := []struct {
		key   string
		value any
	}{
		{"id", l.ID},
		{"name", l.Name},
		{"address", l.Address},
		{"coordinates", l.Coordinates},
		{"url", l.URL},
		{"what3words", l.What3Words},
		{"description", l.Description},
		{"capacity", l.Capacity},
		{"accessibility", l.Accessibility},
	}

	for i, f := range known {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, f.key, f.value); err != nil {
			return nil, err
		}
	}

	for _, f := range l.Custom {
		buf.WriteByte(',')
		if err := writeMember(&buf, f.Key, f.Value); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// LocationValidationError reports why one element of the locations file
// was rejected.
type LocationValidationError struct {
	// Index is the element's position in the file's array.
	Index int `json:"index"`
	// ID is the element's id, or "unknown" when it has none.
	ID string `json:"id"`
	// Errors lists every violation found, in check order.
	Errors []string `json:"errors"`
}

// LocationResult partitions the locations file into valid venues and
// per-element diagnostics. Errors is nil when every element is valid.
type LocationResult struct {
	Locations []Location                `json:"locations"`
	Errors    []LocationValidationError `json:"errors"`
}

// HasErrors reports whether any element was rejected.
func (r *LocationResult) HasErrors() bool {
	return len(r.Errors) > 0
}
