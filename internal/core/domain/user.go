package domain

import "time"

// User is a normalised GitHub user profile.
type User struct {
	Login           *string         `json:"login"`
	Name            *string         `json:"name"`
	Bio             *string         `json:"bio"`
	AvatarURL       *string         `json:"avatarUrl"`
	URL             *string         `json:"url"`
	WebsiteURL      *string         `json:"websiteUrl"`
	Company         *string         `json:"company"`
	Location        *string         `json:"location"`
	Email           *string         `json:"email"`
	CreatedAt       *time.Time      `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt"`
	FollowerCount   int             `json:"followerCount"`
	FollowingCount  int             `json:"followingCount"`
	PublicRepoCount int             `json:"publicRepoCount"`
	SocialAccounts  []SocialAccount `json:"socialAccounts"`
}
