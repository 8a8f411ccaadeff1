// Package locations validates and normalises the venue list kept as a JSON
// file in the events repository.
package locations

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/logger"
	"github.com/custodia-labs/gitevents/internal/metrics"
)

// Validation messages.
const (
	MsgID          = "Location must have a string id"
	MsgName        = "Location must have a string name"
	MsgAddress     = "Location address must be a string"
	MsgCoordinates = "Location coordinates must be an object"
	MsgLat         = "Location coordinates.lat must be a number"
	MsgLng         = "Location coordinates.lng must be a number"
)

// unknownID identifies a rejected element that has no usable id.
const unknownID = "unknown"

// knownKeys are the schema fields; every other key is a custom field.
var knownKeys = map[string]bool{
	"id":            true,
	"name":          true,
	"address":       true,
	"coordinates":   true,
	"url":           true,
	"what3words":    true,
	"description":   true,
	"capacity":      true,
	"accessibility": true,
}

// Ensure Validator implements the interface.
var _ driven.LocationValidator = (*Validator)(nil)

// Validator checks venue entries against the location schema.
type Validator struct {
	metrics *metrics.Manager
}

// Option configures a Validator.
type Option func(*Validator)

// WithMetrics records accepted and rejected counts on m.
func WithMetrics(m *metrics.Manager) Option {
	return func(v *Validator) {
		v.metrics = m
	}
}

// New creates a location validator.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate partitions raw into valid venues and per-element errors.
// Invalid elements never fail the call.
func (v *Validator) Validate(raw json.RawMessage) (*domain.LocationResult, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.ErrLocationsNotArray
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLocationsNotArray, err)
	}

	result := &domain.LocationResult{Locations: []domain.Location{}}
	for i, element := range elements {
		obj, err := decodeObject(element)
		if err != nil {
			obj = &object{}
		}

		if errs := check(obj); len(errs) > 0 {
			result.Errors = append(result.Errors, domain.LocationValidationError{
				Index:  i,
				ID:     rejectedID(obj),
				Errors: errs,
			})
			continue
		}
		result.Locations = append(result.Locations, normalise(obj))
	}

	logger.Debug("validated %d locations: %d accepted, %d rejected",
		len(elements), len(result.Locations), len(result.Errors))
	v.metrics.RecordLocations(len(result.Locations), len(result.Errors))

	return result, nil
}

// check returns every schema violation of one element, in check order.
func check(obj *object) []string {
	var errs []string

	if id, ok := obj.value("id").(string); !ok || id == "" {
		errs = append(errs, MsgID)
	}
	if name, ok := obj.value("name").(string); !ok || name == "" {
		errs = append(errs, MsgName)
	}

	if address := obj.value("address"); truthy(address) {
		if _, ok := address.(string); !ok {
			errs = append(errs, MsgAddress)
		}
	}

	if coords := obj.value("coordinates"); truthy(coords) {
		m, ok := coords.(map[string]any)
		if !ok {
			return append(errs, MsgCoordinates)
		}
		if !isNumber(m["lat"]) {
			errs = append(errs, MsgLat)
		}
		if !isNumber(m["lng"]) {
			errs = append(errs, MsgLng)
		}
	}

	return errs
}

// rejectedID reports a rejected element's id: the string itself, the JSON
// text of any other truthy id, or "unknown".
func rejectedID(obj *object) string {
	id := obj.value("id")
	if !truthy(id) {
		return unknownID
	}
	if s, ok := id.(string); ok {
		return s
	}
	raw, _ := obj.raw("id")
	return string(bytes.TrimSpace(raw))
}

// normalise builds a Location from an element that passed check.
func normalise(obj *object) domain.Location {
	loc := domain.Location{
		ID:            obj.value("id").(string),
		Name:          obj.value("name").(string),
		URL:           optional(obj, "url"),
		What3Words:    optional(obj, "what3words"),
		Description:   optional(obj, "description"),
		Capacity:      optional(obj, "capacity"),
		Accessibility: optional(obj, "accessibility"),
	}

	if address, ok := obj.value("address").(string); ok && address != "" {
		loc.Address = &address
	}

	if coords, ok := obj.value("coordinates").(map[string]any); ok {
		lat, _ := coords["lat"].(json.Number).Float64()
		lng, _ := coords["lng"].(json.Number).Float64()
		loc.Coordinates = &domain.Coordinates{Lat: lat, Lng: lng}
	}

	for _, m := range obj.members {
		if !knownKeys[m.key] {
			loc.Custom = append(loc.Custom, domain.CustomField{Key: m.key, Value: m.value})
		}
	}

	return loc
}

// optional returns a member's value, or nil when it is absent or falsy.
func optional(obj *object, key string) any {
	v := obj.value(key)
	if !truthy(v) {
		return nil
	}
	return v
}
