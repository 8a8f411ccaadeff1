package driven

// QueryProvider resolves logical query names to GraphQL documents.
type QueryProvider interface {
	// Get returns the document for name with the approved-event label
	// substituted. Unknown names return domain.ErrUnknownQuery.
	Get(name string) (string, error)
}

// Logical query names.
const (
	QueryEvents       = "events"
	QueryEvent        = "event"
	QueryDiscussions  = "discussions"
	QueryTeam         = "team"
	QueryUser         = "user"
	QueryOrganization = "organization"
	QueryFile         = "file"
)
