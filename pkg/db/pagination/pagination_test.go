package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorRoundTrip(t *testing.T) {
	token, err := EncodeCursor(Cursor{ID: "1234567890", CreatedAt: "2026-03-15T12:00:00Z"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	cursor, err := DecodeCursor(token)
	assert.NoError(t, err)
	assert.Equal(t, "1234567890", cursor.ID)
	assert.Equal(t, "2026-03-15T12:00:00Z", cursor.CreatedAt)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, err := DecodeCursor("not base64!!")
	assert.Error(t, err)
}

type row struct {
	ID string
}

func TestBuildCursorPageInfo(t *testing.T) {
	extract := func(r *row) string { return r.ID }

	t.Run("empty", func(t *testing.T) {
		info := BuildCursorPageInfo(nil, 10, extract)
		assert.False(t, info.HasMore)
		assert.Empty(t, info.NextPageToken)
	})

	t.Run("under limit", func(t *testing.T) {
		info := BuildCursorPageInfo([]*row{{ID: "a"}, {ID: "b"}}, 10, extract)
		assert.False(t, info.HasMore)
		assert.Equal(t, "b", info.NextPageToken)
	})

	t.Run("over limit trims to page", func(t *testing.T) {
		info := BuildCursorPageInfo([]*row{{ID: "a"}, {ID: "b"}, {ID: "c"}}, 2, extract)
		assert.True(t, info.HasMore)
		assert.Equal(t, "b", info.NextPageToken)
	})
}
