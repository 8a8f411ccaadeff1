package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_MarshalJSON(t *testing.T) {
	t.Run("absent optional fields are null", func(t *testing.T) {
		loc := Location{ID: "v1", Name: "Hall"}

		data, err := json.Marshal(loc)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": "v1", "name": "Hall", "address": null, "coordinates": null,
			"url": null, "what3words": null, "description": null,
			"capacity": null, "accessibility": null
		}`, string(data))
	})

	t.Run("custom fields are merged flat after known fields", func(t *testing.T) {
		address := "1 Main St"
		loc := Location{
			ID:          "v2",
			Name:        "Lab",
			Address:     &address,
			Coordinates: &Coordinates{Lat: 1.5, Lng: -2.25},
			Capacity:    json.Number("80"),
			Custom: []CustomField{
				{Key: "wifi", Value: json.RawMessage(`"secret"`)},
				{Key: "parking", Value: json.RawMessage(`true`)},
			},
		}

		data, err := json.Marshal(loc)

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": "v2", "name": "Lab", "address": "1 Main St",
			"coordinates": {"lat": 1.5, "lng": -2.25},
			"url": null, "what3words": null, "description": null,
			"capacity": 80, "accessibility": null,
			"wifi": "secret", "parking": true
		}`, string(data))
		assert.Regexp(t, `"accessibility":null,"wifi":"secret","parking":true}$`, string(data))
	})

	t.Run("nil errors serialise as null", func(t *testing.T) {
		result := LocationResult{Locations: []Location{}}

		data, err := json.Marshal(result)

		require.NoError(t, err)
		assert.JSONEq(t, `{"locations": [], "errors": null}`, string(data))
	})
}

func TestLocation_Field(t *testing.T) {
	loc := Location{Custom: []CustomField{{Key: "wifi", Value: json.RawMessage(`"secret"`)}}}

	value, ok := loc.Field("wifi")
	assert.True(t, ok)
	assert.Equal(t, `"secret"`, string(value))

	_, ok = loc.Field("missing")
	assert.False(t, ok)
}

func TestOptions_Defaults(t *testing.T) {
	assert.Equal(t, "locations.json", LocationOptions{}.Path())
	assert.Equal(t, "HEAD", LocationOptions{}.Ref())
	assert.Equal(t, "venues.json", LocationOptions{FileName: "venues.json"}.Path())
	assert.Equal(t, "develop", LocationOptions{Branch: "develop"}.Ref())
	assert.Equal(t, "HEAD", FileOptions{}.Ref())
	assert.Equal(t, 10, Pagination{}.PageSize())
	assert.Equal(t, 25, Pagination{First: 25}.PageSize())
}
