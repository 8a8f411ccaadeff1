package driven

import "context"

// FacetParser turns an issue-form body into named fields.
//
// A nil or empty body yields an empty, non-nil map. Text that cannot be
// understood is parsed best-effort and never reported as an error; errors
// are reserved for failures such as cancellation.
type FacetParser interface {
	Parse(ctx context.Context, body *string) (map[string]any, error)
}
