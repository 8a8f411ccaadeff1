package domain

import "time"

// DefaultPageSize is the number of items requested when no page size is set.
const DefaultPageSize = 10

// Pagination controls the single page requested from list queries.
type Pagination struct {
	// First is the page size. Zero means DefaultPageSize.
	First int
}

// PageSize returns First, or DefaultPageSize when unset.
func (p Pagination) PageSize() int {
	if p.First <= 0 {
		return DefaultPageSize
	}
	return p.First
}

// Event is an issue that represents a meetup or conference.
// Date is derived from the parsed "date" facet of the body.
type Event struct {
	Title     *string        `json:"title"`
	Number    *int           `json:"number"`
	URL       *string        `json:"url"`
	Body      *string        `json:"body"`
	Date      *time.Time     `json:"date"`
	Facets    map[string]any `json:"facets"`
	Talks     []Talk         `json:"talks"`
	Reactions []string       `json:"reactions"`
}

// HasDate reports whether the event carries a parsed date.
func (e *Event) HasDate() bool {
	return e.Date != nil
}

// Talk is a sub-issue of an event.
type Talk struct {
	Title     *string        `json:"title"`
	URL       *string        `json:"url"`
	Body      *string        `json:"body"`
	Author    *Author        `json:"author"`
	Reactions []string       `json:"reactions"`
	Facets    map[string]any `json:"facets"`
}

// Author identifies the GitHub account that opened a talk.
type Author struct {
	Login     string  `json:"login"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	URL       *string `json:"url"`
}
