package memory

import (
	"slices"

	"postboard/domain/core/entities"
	"postboard/domain/core/valueobjects"
)

// PaginatePosts orders posts newest first (ties by descending ID) and returns
// the page that follows cursor. posts is sorted in place.
//
// A cursor that does not decode, or that names a position no longer present
// in posts, restarts from the first page. A non-positive limit yields an
// empty page.
func PaginatePosts(posts []entities.Post, limit int, cursor string) entities.PostPage {
	page := entities.PostPage{Items: []entities.Post{}}
	if limit <= 0 {
		return page
	}

	slices.SortFunc(posts, entities.ComparePosts)

	start := 0
	if c, ok := valueobjects.DecodeCursor(cursor); ok {
		start = positionAfter(posts, c)
	}

	end := min(start+limit, len(posts))
	if start >= end {
		return page
	}

	page.Items = append(page.Items, posts[start:end]...)
	last := page.Items[len(page.Items)-1]
	next := valueobjects.EncodeCursor(valueobjects.NewCursor(last.CreatedAt, last.ID))
	page.NextCursor = &next
	return page
}

// positionAfter returns the index right after the post matching c in sorted,
// or 0 when no post matches.
func positionAfter(sorted []entities.Post, c valueobjects.Cursor) int {
	probe := entities.Post{ID: c.ID, CreatedAt: c.CreatedAt}
	i, found := slices.BinarySearchFunc(sorted, probe, entities.ComparePosts)
	if !found {
		return 0
	}
	return i + 1
}
