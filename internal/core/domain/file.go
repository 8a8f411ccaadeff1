package domain

import "encoding/json"

// DefaultBranch resolves to the repository's default branch.
const DefaultBranch = "HEAD"

// FileOptions controls file retrieval.
type FileOptions struct {
	// Branch is the ref to read from. Empty means DefaultBranch.
	Branch string
	// Parse decodes the file text as JSON.
	Parse bool
}

// Ref returns Branch, or DefaultBranch when unset.
func (o FileOptions) Ref() string {
	if o.Branch == "" {
		return DefaultBranch
	}
	return o.Branch
}

// File is the text of a repository blob.
type File struct {
	Path     string `json:"path"`
	Ref      string `json:"ref"`
	Text     string `json:"text"`
	ByteSize int    `json:"byteSize"`
	// JSON is the validated document when FileOptions.Parse was set.
	JSON json.RawMessage `json:"json,omitempty"`
}
