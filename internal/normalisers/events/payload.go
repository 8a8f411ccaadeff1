package events

import (
	"bytes"
	"encoding/json"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// fields is a decoded JSON object whose members are read leniently:
// a missing, null or wrongly typed member reads as its zero value.
type fields map[string]json.RawMessage

func decodeFields(raw json.RawMessage) fields {
	var f fields
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return fields{}
	}
	return f
}

// unwrapEntry returns the issue fields of an entry. An entry carrying a
// non-null "node" member is an edge and is unwrapped once.
func unwrapEntry(raw json.RawMessage) fields {
	f := decodeFields(raw)
	if node, ok := f["node"]; ok && !isNull(node) {
		return decodeFields(node)
	}
	return f
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func (f fields) str(key string) *string {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return s
}

func (f fields) integer(key string) *int {
	raw, ok := f[key]
	if !ok {
		return nil
	}
	var n *int
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	return n
}

// nodes returns the "nodes" list of a connection member.
func (f fields) nodes(key string) []fields {
	raw, ok := f[key]
	if !ok || isNull(raw) {
		return nil
	}
	var conn struct {
		Nodes []json.RawMessage `json:"nodes"`
	}
	if err := json.Unmarshal(raw, &conn); err != nil {
		return nil
	}
	out := make([]fields, 0, len(conn.Nodes))
	for _, n := range conn.Nodes {
		out = append(out, decodeFields(n))
	}
	return out
}

// reactions projects the content of each reaction node in source order.
// A node without a string content yields "" so positions are kept.
func (f fields) reactions() []string {
	out := []string{}
	for _, node := range f.nodes("reactions") {
		content := ""
		if c := node.str("content"); c != nil {
			content = *c
		}
		out = append(out, content)
	}
	return out
}

func (f fields) author() *domain.Author {
	raw, ok := f["author"]
	if !ok || isNull(raw) {
		return nil
	}
	var a domain.Author
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil
	}
	return &a
}
