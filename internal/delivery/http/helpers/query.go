package helpers

import (
	"fmt"
	"net/http"

	"eventboard/internal/domain"
)

// ParseFilter reads q, category and status from the request query string.
// Missing values match everything; an unknown status is a validation error.
func ParseFilter(r *http.Request) (domain.FilterCriteria, error) {
	q := r.URL.Query()
	status, ok := domain.ParseStatus(q.Get("status"))
	if !ok {
		return domain.FilterCriteria{}, fmt.Errorf("unknown status %q: %w", q.Get("status"), domain.ErrValidation)
	}
	return domain.FilterCriteria{
		Search:   q.Get("q"),
		Category: q.Get("category"),
		Status:   status,
	}, nil
}
