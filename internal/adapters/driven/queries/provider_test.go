package queries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
)

func TestNames(t *testing.T) {
	assert.ElementsMatch(t, []string{
		driven.QueryEvents,
		driven.QueryEvent,
		driven.QueryDiscussions,
		driven.QueryTeam,
		driven.QueryUser,
		driven.QueryOrganization,
		driven.QueryFile,
	}, Names())
}

func TestGet_DefaultLabel(t *testing.T) {
	p := New("")
	assert.Equal(t, DefaultApprovedLabel, p.Label())

	doc, err := p.Get(driven.QueryEvents)
	require.NoError(t, err)
	assert.Contains(t, doc, `labels: ["Approved :white_check_mark:"]`)
	assert.NotContains(t, doc, labelPlaceholder)
}

func TestGet_CustomLabel(t *testing.T) {
	p := New("published")

	doc, err := p.Get(driven.QueryEvents)
	require.NoError(t, err)
	assert.Contains(t, doc, `labels: ["published"]`)
}

func TestGet_ReplacesFirstPlaceholderOnly(t *testing.T) {
	assert.Equal(t, "x DEFAULT_LABEL", applyLabel("DEFAULT_LABEL DEFAULT_LABEL", "x"))
	assert.Equal(t, "no placeholder", applyLabel("no placeholder", "x"))
}

func TestGet_AllDocuments(t *testing.T) {
	p := New("")

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			doc, err := p.Get(name)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(doc, "query "+name+"("), "document %s has unexpected operation", name)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	p := New("")

	for _, name := range []string{"", "nope", "../graphql/events", "events.graphql"} {
		t.Run(name, func(t *testing.T) {
			doc, err := p.Get(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnknownQuery)
			assert.Equal(t, "unknown GraphQL query: "+name, err.Error())
			assert.Empty(t, doc)
		})
	}
}

func TestGet_Cached(t *testing.T) {
	p := New("")

	first, err := p.Get(driven.QueryUser)
	require.NoError(t, err)
	second, err := p.Get(driven.QueryUser)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, p.cache, 1)
}
