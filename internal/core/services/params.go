package services

import "github.com/custodia-labs/gitevents/internal/core/domain"

// param is a named required argument.
type param struct {
	name  string
	value any
}

// requireParams reports every empty argument, in order, in a single error.
func requireParams(params ...param) error {
	var missing []string
	for _, p := range params {
		if isEmpty(p.value) {
			missing = append(missing, p.name)
		}
	}
	if len(missing) > 0 {
		return &domain.MissingParametersError{Names: missing}
	}
	return nil
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case int:
		return x == 0
	default:
		return false
	}
}
