package queries

import (
	"postboard/pkg/errors"
)

// ListPostsQuery represents a query for one page of the post feed
type ListPostsQuery struct {
	ViewerID string
	Limit    int
	Cursor   string
}

// Validate validates the ListPostsQuery
func (q ListPostsQuery) Validate() error {
	if q.ViewerID == "" {
		return errors.NewValidationError("viewer ID is required")
	}
	return nil
}
