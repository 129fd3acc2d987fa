package valueobjects

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"postboard/pkg/utils"
)

// Cursor is the sort position of the last item handed out in a page.
// Tokens produced by EncodeCursor are opaque to callers.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// cursorPayload is the JSON body carried inside a token
type cursorPayload struct {
	CreatedAt string `json:"createdAt"`
	ID        string `json:"id"`
}

// NewCursor creates a cursor for the given position
func NewCursor(createdAt time.Time, id string) Cursor {
	return Cursor{CreatedAt: createdAt.UTC(), ID: id}
}

// EncodeCursor turns a cursor into a URL-safe token.
// The result depends only on the cursor value.
func EncodeCursor(c Cursor) string {
	data, err := json.Marshal(cursorPayload{
		CreatedAt: utils.FormatTimestamp(c.CreatedAt),
		ID:        c.ID,
	})
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor parses a token produced by EncodeCursor.
// It reports false for an empty or malformed token and never panics.
func DecodeCursor(token string) (Cursor, bool) {
	if token == "" {
		return Cursor{}, false
	}

	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, false
	}

	var payload cursorPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return Cursor{}, false
	}
	if payload.ID == "" || payload.CreatedAt == "" {
		return Cursor{}, false
	}

	createdAt, err := utils.ParseTimestamp(payload.CreatedAt)
	if err != nil {
		return Cursor{}, false
	}

	return Cursor{CreatedAt: createdAt.UTC(), ID: payload.ID}, true
}
