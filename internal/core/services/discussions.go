package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/gitevents/internal/core/domain"
	"github.com/custodia-labs/gitevents/internal/core/ports/driven"
	"github.com/custodia-labs/gitevents/internal/core/ports/driving"
	"github.com/custodia-labs/gitevents/internal/logger"
)

// Ensure DiscussionService implements the interface.
var _ driving.DiscussionService = (*DiscussionService)(nil)

// DiscussionService lists repository discussions.
type DiscussionService struct {
	transport driven.Transport
	queries   driven.QueryProvider
}

// NewDiscussionService creates a new discussion service.
func NewDiscussionService(transport driven.Transport, queries driven.QueryProvider) *DiscussionService {
	return &DiscussionService{transport: transport, queries: queries}
}

// List returns the most recent discussions, optionally in one category.
func (s *DiscussionService) List(
	ctx context.Context, org, repo string, opts domain.DiscussionOptions,
) ([]domain.Discussion, error) {
	if err := requireParams(param{"org", org}, param{"repo", repo}); err != nil {
		return nil, err
	}

	discussions, err := s.list(ctx, org, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discussions: %w", err)
	}
	return discussions, nil
}

func (s *DiscussionService) list(
	ctx context.Context, org, repo string, opts domain.DiscussionOptions,
) ([]domain.Discussion, error) {
	logger.Section("Discussions")

	query, err := s.queries.Get(driven.QueryDiscussions)
	if err != nil {
		return nil, err
	}

	var categoryID any
	if opts.CategoryID != "" {
		categoryID = opts.CategoryID
	}

	data, err := s.transport.Execute(ctx, query, map[string]any{
		"organization": org,
		"repository":   repo,
		"first":        opts.PageSize(),
		"categoryId":   categoryID,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Repository *struct {
			Discussions *connection `json:"discussions"`
		} `json:"repository"`
	}
	if err := decode(data, &payload); err != nil {
		return nil, err
	}
	if payload.Repository == nil {
		return nil, fmt.Errorf("%w: repository %s/%s", domain.ErrNotFound, org, repo)
	}

	entries := payload.Repository.Discussions.entries()
	discussions := make([]domain.Discussion, 0, len(entries))
	for _, entry := range entries {
		var node discussionPayload
		if err := decode(unwrapNode(entry), &node); err != nil {
			return nil, err
		}
		discussions = append(discussions, node.toDomain())
	}

	logger.Debug("fetched %d discussions from %s/%s", len(discussions), org, repo)
	return discussions, nil
}

type discussionPayload struct {
	ID        *string `json:"id"`
	Number    *int    `json:"number"`
	Title     *string `json:"title"`
	URL       *string `json:"url"`
	Body      *string `json:"body"`
	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`
	Author    *struct {
		Login     *string `json:"login"`
		Name      *string `json:"name"`
		AvatarURL *string `json:"avatarUrl"`
		URL       *string `json:"url"`
	} `json:"author"`
	Category *struct {
		ID          *string `json:"id"`
		Name        *string `json:"name"`
		Emoji       *string `json:"emoji"`
		Description *string `json:"description"`
	} `json:"category"`
	Reactions *reactionsPayload `json:"reactions"`
	Comments  *totalCount       `json:"comments"`
}

func (p *discussionPayload) toDomain() domain.Discussion {
	d := domain.Discussion{
		ID:           nonEmpty(p.ID),
		Number:       nonZero(p.Number),
		Title:        nonEmpty(p.Title),
		URL:          nonEmpty(p.URL),
		Body:         nonEmpty(p.Body),
		CreatedAt:    timestamp(p.CreatedAt),
		UpdatedAt:    timestamp(p.UpdatedAt),
		Reactions:    p.Reactions.contents(),
		CommentCount: p.Comments.value(),
	}
	if p.Author != nil {
		d.Author = &domain.DiscussionAuthor{
			Login:     nonEmpty(p.Author.Login),
			Name:      nonEmpty(p.Author.Name),
			AvatarURL: nonEmpty(p.Author.AvatarURL),
			URL:       nonEmpty(p.Author.URL),
		}
	}
	if p.Category != nil {
		d.Category = &domain.DiscussionCategory{
			ID:          nonEmpty(p.Category.ID),
			Name:        nonEmpty(p.Category.Name),
			Emoji:       nonEmpty(p.Category.Emoji),
			Description: nonEmpty(p.Category.Description),
		}
	}
	return d
}
