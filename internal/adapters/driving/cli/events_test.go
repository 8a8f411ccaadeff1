package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitevents/internal/core/domain"
)

func TestEventsCmd_HasSubcommands(t *testing.T) {
	commands := eventsCmd.Commands()
	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"upcoming", "past", "get"}, names)
}

func TestEventsCmd_HasFirstFlag(t *testing.T) {
	flag := eventsCmd.PersistentFlags().Lookup("first")
	require.NotNil(t, flag, "first flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}

func TestEventsUpcoming_Table(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	terminalOutput(t)

	out, err := execute("events", "upcoming", "-n", "3")

	require.NoError(t, err)
	assert.Contains(t, out, "#12 March Meetup")
	assert.Contains(t, out, "2025-03-05")
	assert.Contains(t, out, "Generics in practice")
	assert.Contains(t, out, "by Go Pher")
	assert.False(t, ts.events.past)
	assert.Equal(t, 3, ts.events.page.First)
	assert.Equal(t, "gophers", ts.events.org)
}

func TestEventsUpcoming_JSONWhenPiped(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := execute("events", "upcoming")

	require.NoError(t, err)
	var events []domain.Event
	require.NoError(t, json.Unmarshal([]byte(out), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "March Meetup", *events[0].Title)
}

func TestEventsPast_Empty(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	terminalOutput(t)

	out, err := execute("events", "past")

	require.NoError(t, err)
	assert.True(t, ts.events.past)
	assert.Contains(t, out, "No events found.")
}

func TestEventsGet(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	terminalOutput(t)

	t.Run("found", func(t *testing.T) {
		out, err := execute("events", "get", "12")
		require.NoError(t, err)
		assert.Contains(t, out, "#12 March Meetup")
		assert.Contains(t, out, "TBA")
	})

	t.Run("not found", func(t *testing.T) {
		out, err := execute("events", "get", "99")
		require.NoError(t, err)
		assert.Contains(t, out, "Event #99 not found.")
	})

	t.Run("not found as JSON", func(t *testing.T) {
		out, err := execute("events", "get", "99", "--json")
		require.NoError(t, err)
		assert.Equal(t, "null\n", out)
	})

	t.Run("invalid number", func(t *testing.T) {
		_, err := execute("events", "get", "twelve")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid event number "twelve"`)
	})

	t.Run("requires exactly one arg", func(t *testing.T) {
		_, err := execute("events", "get")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 1 arg(s)")
	})
}
