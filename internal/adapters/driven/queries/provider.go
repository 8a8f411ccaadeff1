// Package queries embeds the GraphQL documents gitevents sends to GitHub.
package queries

import (
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
)

// DefaultApprovedLabel marks issues that are published as events.
const DefaultApprovedLabel = "Approved :white_check_mark:"

// labelPlaceholder is replaced with the approved-event label.
const labelPlaceholder = "DEFAULT_LABEL"

//go:embed graphql/*.graphql
var documents embed.FS

// Ensure Provider implements the interface.
var _ driven.QueryProvider = (*Provider)(nil)

// Provider serves embedded documents with the approved label applied.
type Provider struct {
	label string

	mu    sync.Mutex
	cache map[string]string
}

// New creates a provider. An empty label means DefaultApprovedLabel.
func New(label string) *Provider {
	if label == "" {
		label = DefaultApprovedLabel
	}
	return &Provider{
		label: label,
		cache: make(map[string]string),
	}
}

// Label returns the approved-event label substituted into documents.
func (p *Provider) Label() string {
	return p.label
}

// Get returns the document named name.
func (p *Provider) Get(name string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if doc, ok := p.cache[name]; ok {
		return doc, nil
	}

	if name == "" || strings.ContainsAny(name, "/\\.") {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownQuery, name)
	}

	data, err := documents.ReadFile(path.Join("graphql", name+".graphql"))
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownQuery, name)
	}

	doc := applyLabel(string(data), p.label)
	p.cache[name] = doc
	return doc, nil
}

// applyLabel substitutes the first placeholder only.
func applyLabel(doc, label string) string {
	return strings.Replace(doc, labelPlaceholder, label, 1)
}

// Names lists the available documents.
func Names() []string {
	entries, err := documents.ReadDir("graphql")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".graphql"))
	}
	return names
}
