package domain

import "time"

// Organization is a normalised GitHub organisation profile.
type Organization struct {
	Name            *string    `json:"name"`
	Login           *string    `json:"login"`
	Description     *string    `json:"description"`
	WebsiteURL      *string    `json:"websiteUrl"`
	AvatarURL       *string    `json:"avatarUrl"`
	Email           *string    `json:"email"`
	Location        *string    `json:"location"`
	CreatedAt       *time.Time `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
	MemberCount     int        `json:"memberCount"`
	PublicRepoCount int        `json:"publicRepoCount"`
}
