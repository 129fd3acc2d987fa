package queries

import (
	"postboard/pkg/errors"
)

// GetPostQuery represents a query to get a single post
type GetPostQuery struct {
	ViewerID string
	PostID   string
}

// Validate validates the GetPostQuery
func (q GetPostQuery) Validate() error {
	if q.ViewerID == "" {
		return errors.NewValidationError("viewer ID is required")
	}
	if q.PostID == "" {
		return errors.NewValidationError("post ID is required")
	}
	return nil
}
