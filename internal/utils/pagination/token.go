package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// Cursor is the keyset position of the last journal on a page. Journals are
// listed newest first by (journal_date, created_at, journal_id).
type Cursor struct {
	JournalDate time.Time
	CreatedAt   time.Time
	ID          string
}

// EncodeToken creates an opaque page token from a cursor.
func EncodeToken(c Cursor) string {
	tokenStr := strings.Join([]string{c.JournalDate.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.ID}, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	journalDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (journal date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	return Cursor{JournalDate: journalDate, CreatedAt: createdAt, ID: parts[2]}, nil
}
