package domain

import "time"

// Discussion is a normalised repository discussion.
type Discussion struct {
	ID           *string             `json:"id"`
	Number       *int                `json:"number"`
	Title        *string             `json:"title"`
	URL          *string             `json:"url"`
	Body         *string             `json:"body"`
	CreatedAt    *time.Time          `json:"createdAt"`
	UpdatedAt    *time.Time          `json:"updatedAt"`
	Author       *DiscussionAuthor   `json:"author"`
	Category     *DiscussionCategory `json:"category"`
	Reactions    []string            `json:"reactions"`
	CommentCount int                 `json:"commentCount"`
}

// DiscussionAuthor is the account that started a discussion.
type DiscussionAuthor struct {
	Login     *string `json:"login"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	URL       *string `json:"url"`
}

// DiscussionCategory groups discussions.
type DiscussionCategory struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Emoji       *string `json:"emoji"`
	Description *string `json:"description"`
}

// DiscussionOptions narrows a discussion listing.
type DiscussionOptions struct {
	Pagination
	// CategoryID restricts results to one category when set.
	CategoryID string
}
