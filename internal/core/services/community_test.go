package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitevents/internal/adapters/driven/queries"
	"github.com/custodia-labs/gitevents/internal/core/domain"
)

func TestDiscussionService_List(t *testing.T) {
	transport := newMockTransport().respond("discussions", `{"repository": {"discussions": {"edges": [
		{"node": {
			"id": "D_1", "number": 12, "title": "Venue ideas", "url": "https://github.com/o/r/discussions/12",
			"body": "", "createdAt": "2024-02-01T10:00:00Z", "updatedAt": "not a date",
			"author": {"login": "gopher", "name": "", "avatarUrl": "https://avatars/1", "url": "https://github.com/gopher"},
			"category": {"id": "C_1", "name": "Ideas", "emoji": ":bulb:", "description": null},
			"reactions": {"nodes": [{"content": "THUMBS_UP"}, {}, {"content": "THUMBS_UP"}]},
			"comments": {"totalCount": 3}
		}},
		{"id": "D_2", "title": "Bare node", "author": null, "category": null}
	]}}}`)
	svc := NewDiscussionService(transport, queries.New(""))

	list, err := svc.List(context.Background(), "o", "r", domain.DiscussionOptions{CategoryID: "C_1"})
	require.NoError(t, err)
	require.Len(t, list, 2)

	first := list[0]
	assert.Equal(t, "D_1", *first.ID)
	assert.Equal(t, 12, *first.Number)
	assert.Nil(t, first.Body)
	assert.Equal(t, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC), *first.CreatedAt)
	assert.Nil(t, first.UpdatedAt)
	require.NotNil(t, first.Author)
	assert.Equal(t, "gopher", *first.Author.Login)
	assert.Nil(t, first.Author.Name)
	require.NotNil(t, first.Category)
	assert.Equal(t, "Ideas", *first.Category.Name)
	assert.Nil(t, first.Category.Description)
	assert.Equal(t, []string{"THUMBS_UP", "", "THUMBS_UP"}, first.Reactions)
	assert.Equal(t, 3, first.CommentCount)

	second := list[1]
	assert.Equal(t, "Bare node", *second.Title)
	assert.Nil(t, second.Author)
	assert.Nil(t, second.Category)
	assert.Empty(t, second.Reactions)
	assert.Zero(t, second.CommentCount)

	assert.Equal(t, map[string]any{
		"organization": "o",
		"repository":   "r",
		"first":        10,
		"categoryId":   "C_1",
	}, transport.lastCall().variables)
}

func TestDiscussionService_ListWithoutCategory(t *testing.T) {
	transport := newMockTransport().respond("discussions", `{"repository": {"discussions": {"nodes": []}}}`)
	svc := NewDiscussionService(transport, queries.New(""))

	list, err := svc.List(context.Background(), "o", "r", domain.DiscussionOptions{Pagination: domain.Pagination{First: 5}})
	require.NoError(t, err)
	assert.Empty(t, list)

	vars := transport.lastCall().variables
	assert.Nil(t, vars["categoryId"])
	assert.Equal(t, 5, vars["first"])
}

func TestDiscussionService_Errors(t *testing.T) {
	t.Run("missing parameters", func(t *testing.T) {
		svc := NewDiscussionService(newMockTransport(), queries.New(""))

		_, err := svc.List(context.Background(), "", "", domain.DiscussionOptions{})
		assert.EqualError(t, err, "missing required parameters: org, repo")
	})

	t.Run("transport failure", func(t *testing.T) {
		transport := newMockTransport()
		transport.err = errors.New("boom")
		svc := NewDiscussionService(transport, queries.New(""))

		_, err := svc.List(context.Background(), "o", "r", domain.DiscussionOptions{})
		assert.EqualError(t, err, "failed to fetch discussions: boom")
	})

	t.Run("missing repository", func(t *testing.T) {
		transport := newMockTransport().respond("discussions", `{"repository": null}`)
		svc := NewDiscussionService(transport, queries.New(""))

		_, err := svc.List(context.Background(), "o", "r", domain.DiscussionOptions{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestTeamService_Get(t *testing.T) {
	transport := newMockTransport().respond("team", `{"organization": {"team": {
		"name": "Organisers", "slug": "organisers", "description": "",
		"members": {"nodes": [{
			"login": "gopher", "name": "Go Pher", "avatarUrl": "https://avatars/1",
			"bio": null, "websiteUrl": "https://go.dev", "company": "", "location": "Berlin",
			"socialAccounts": {"nodes": [{"provider": "MASTODON", "url": "https://hachyderm.io/@gopher"}]}
		}, {
			"login": "bare", "avatarUrl": "https://avatars/2"
		}]}
	}}}`)
	svc := NewTeamService(transport, queries.New(""))

	team, err := svc.Get(context.Background(), "o", "organisers")
	require.NoError(t, err)
	require.NotNil(t, team)

	assert.Equal(t, "Organisers", team.Name)
	assert.Nil(t, team.Description)
	require.Len(t, team.Members, 2)

	member := team.Members[0]
	assert.Equal(t, "Go Pher", *member.Name)
	assert.Nil(t, member.Bio)
	assert.Nil(t, member.Company)
	assert.Equal(t, "Berlin", *member.Location)
	assert.Equal(t, []domain.SocialAccount{{Provider: "MASTODON", URL: "https://hachyderm.io/@gopher"}}, member.SocialAccounts)

	assert.NotNil(t, team.Members[1].SocialAccounts)
	assert.Empty(t, team.Members[1].SocialAccounts)

	assert.Equal(t, map[string]any{"organization": "o", "teamSlug": "organisers"}, transport.lastCall().variables)
}

func TestTeamService_GetNotFound(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no organization", `{"organization": null}`},
		{"no team", `{"organization": {"team": null}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTeamService(newMockTransport().respond("team", tt.data), queries.New(""))

			team, err := svc.Get(context.Background(), "o", "ghosts")
			require.NoError(t, err)
			assert.Nil(t, team)
		})
	}
}

func TestTeamService_Errors(t *testing.T) {
	transport := newMockTransport()
	svc := NewTeamService(transport, queries.New(""))

	_, err := svc.Get(context.Background(), "", "")
	assert.EqualError(t, err, "missing required parameters: org, teamSlug")

	transport.err = errors.New("timeout")
	_, err = svc.Get(context.Background(), "o", "organisers")
	assert.EqualError(t, err, "failed to fetch team organisers: timeout")
}

func TestUserService_Get(t *testing.T) {
	transport := newMockTransport().respond("user", `{"user": {
		"login": "gopher", "name": "Go Pher", "bio": "", "email": "",
		"createdAt": "2015-06-01T00:00:00Z",
		"followers": {"totalCount": 42},
		"following": null,
		"repositories": {"totalCount": 7},
		"socialAccounts": {"nodes": [{"provider": "LINKEDIN", "url": "https://linkedin.com/in/gopher"}]}
	}}`)
	svc := NewUserService(transport, queries.New(""))

	user, err := svc.Get(context.Background(), "gopher")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "gopher", *user.Login)
	assert.Nil(t, user.Bio)
	assert.Nil(t, user.Email)
	assert.Equal(t, 42, user.FollowerCount)
	assert.Zero(t, user.FollowingCount)
	assert.Equal(t, 7, user.PublicRepoCount)
	require.NotNil(t, user.CreatedAt)
	assert.Equal(t, 2015, user.CreatedAt.Year())
	assert.Len(t, user.SocialAccounts, 1)

	assert.Equal(t, map[string]any{"login": "gopher"}, transport.lastCall().variables)
}

func TestUserService_GetNotFound(t *testing.T) {
	svc := NewUserService(newMockTransport().respond("user", `{"user": null}`), queries.New(""))

	user, err := svc.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_Errors(t *testing.T) {
	transport := newMockTransport()
	svc := NewUserService(transport, queries.New(""))

	_, err := svc.Get(context.Background(), "")
	assert.EqualError(t, err, "missing required parameters: login")

	transport.err = domain.ErrAuthRequired
	_, err = svc.Get(context.Background(), "gopher")
	assert.EqualError(t, err, "failed to fetch user: authentication required")
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestOrganizationService_Get(t *testing.T) {
	transport := newMockTransport().respond("organization", `{"organization": {
		"name": "Gophers", "login": "gophers", "description": "", "location": "Earth",
		"membersWithRole": {"totalCount": 12},
		"repositories": null
	}}`)
	svc := NewOrganizationService(transport, queries.New(""))

	org, err := svc.Get(context.Background(), "gophers")
	require.NoError(t, err)
	require.NotNil(t, org)

	assert.Equal(t, "Gophers", *org.Name)
	assert.Nil(t, org.Description)
	assert.Equal(t, 12, org.MemberCount)
	assert.Zero(t, org.PublicRepoCount)

	assert.Equal(t, map[string]any{"organization": "gophers"}, transport.lastCall().variables)
}

func TestOrganizationService_GetNotFound(t *testing.T) {
	svc := NewOrganizationService(newMockTransport().respond("organization", `{"organization": null}`), queries.New(""))

	org, err := svc.Get(context.Background(), "ghosts")
	require.NoError(t, err)
	assert.Nil(t, org)
}

func TestOrganizationService_Errors(t *testing.T) {
	transport := newMockTransport()
	svc := NewOrganizationService(transport, queries.New(""))

	_, err := svc.Get(context.Background(), "")
	assert.EqualError(t, err, "missing required parameters: org")
	assert.Zero(t, transport.callCount())

	transport.err = errors.New("boom")
	_, err = svc.Get(context.Background(), "gophers")
	assert.EqualError(t, err, "failed to fetch organization: boom")
}
