package domain

// Team is an organisation team and its members.
type Team struct {
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description *string      `json:"description"`
	Members     []TeamMember `json:"members"`
}

// TeamMember is a public profile of a team member.
type TeamMember struct {
	Login          string          `json:"login"`
	Name           *string         `json:"name"`
	AvatarURL      string          `json:"avatarUrl"`
	Bio            *string         `json:"bio"`
	WebsiteURL     *string         `json:"websiteUrl"`
	Company        *string         `json:"company"`
	Location       *string         `json:"location"`
	SocialAccounts []SocialAccount `json:"socialAccounts"`
}

// SocialAccount is a linked profile such as LinkedIn or Mastodon.
type SocialAccount struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}
