package common

import (
	"net/http"
	"strconv"
)

// PageParams holds the cursor pagination parameters of a feed request
type PageParams struct {
	Limit  int
	Cursor string
}

// ExtractPageParams reads limit and cursor from the query string.
// A missing, unparsable or zero limit takes defaultSize, a larger one is capped at maxSize.
// Negative limits are kept so callers receive an empty page.
func ExtractPageParams(r *http.Request, defaultSize, maxSize int) PageParams {
	query := r.URL.Query()
	params := PageParams{
		Limit:  defaultSize,
		Cursor: query.Get("cursor"),
	}

	if raw := query.Get("limit"); raw != "" {
		if l, err := strconv.Atoi(raw); err == nil && l != 0 {
			params.Limit = l
		}
	}
	if maxSize > 0 && params.Limit > maxSize {
		params.Limit = maxSize
	}

	return params
}
