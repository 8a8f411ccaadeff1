package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

// connection is a GraphQL list that may be returned as edges or nodes.
type connection struct {
	Edges []json.RawMessage `json:"edges"`
	Nodes []json.RawMessage `json:"nodes"`
}

// entries prefers edges and falls back to nodes.
func (c *connection) entries() []json.RawMessage {
	if c == nil {
		return nil
	}
	if c.Edges != nil {
		return c.Edges
	}
	return c.Nodes
}

type totalCount struct {
	TotalCount int `json:"totalCount"`
}

func (t *totalCount) value() int {
	if t == nil {
		return 0
	}
	return t.TotalCount
}

type socialAccountsPayload struct {
	Nodes []struct {
		Provider string `json:"provider"`
		URL      string `json:"url"`
	} `json:"nodes"`
}

func (p *socialAccountsPayload) accounts() []domain.SocialAccount {
	out := []domain.SocialAccount{}
	if p == nil {
		return out
	}
	for _, n := range p.Nodes {
		out = append(out, domain.SocialAccount{Provider: n.Provider, URL: n.URL})
	}
	return out
}

type reactionsPayload struct {
	Nodes []struct {
		Content *string `json:"content"`
	} `json:"nodes"`
}

func (p *reactionsPayload) contents() []string {
	out := []string{}
	if p == nil {
		return out
	}
	for _, n := range p.Nodes {
		content := ""
		if n.Content != nil {
			content = *n.Content
		}
		out = append(out, content)
	}
	return out
}

// decode unmarshals a transport payload.
func decode(data json.RawMessage, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// unwrapNode returns the node of an edge, or the entry itself.
func unwrapNode(raw json.RawMessage) json.RawMessage {
	var edge struct {
		Node json.RawMessage `json:"node"`
	}
	if err := json.Unmarshal(raw, &edge); err == nil && !isNull(edge.Node) {
		return edge.Node
	}
	return raw
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// nonEmpty maps an empty string to nil.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// nonZero maps a zero number to nil.
func nonZero(n *int) *int {
	if n == nil || *n == 0 {
		return nil
	}
	return n
}

// timestamp parses an ISO 8601 date, nil when empty or invalid.
func timestamp(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}
