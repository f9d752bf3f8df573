package report

import (
	"encoding/base64"
	"encoding/json"
	"time"

	reporterrors "go-kafe/internal/report/errors"

	"github.com/google/uuid"
)

// Cursor marks a row of the (created_at, id) ordering. Clients only ever
// see it encoded.
type Cursor struct {
	CreatedAt time.Time `json:"t"`
	ID        uuid.UUID `json:"id"`
}

func EncodeCursor(c Cursor) string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func DecodeCursor(s string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Cursor{}, reporterrors.ErrInvalidCursor
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil || c.ID == uuid.Nil || c.CreatedAt.IsZero() {
		return Cursor{}, reporterrors.ErrInvalidCursor
	}
	return c, nil
}
