package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/LaSalleSoftware/lsv2-library-pkg-sub001/pkg/domain-errors"
)

func TestParseEventType(t *testing.T) {
	for id := 1; id <= 6; id++ {
		et, err := ParseEventType(id)
		require.NoError(t, err)
		assert.True(t, et.Valid())
		assert.NotEqual(t, "unknown", et.String())
	}

	for _, id := range []int{0, -1, 7, 99} {
		_, err := ParseEventType(id)
		require.Error(t, err, "id %d", id)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	}
}

func TestTruncateComment(t *testing.T) {
	t.Run("short comment untouched", func(t *testing.T) {
		assert.Equal(t, "x", TruncateComment("x"))
		assert.Equal(t, "", TruncateComment(""))
	})

	t.Run("long comment cut to the bound", func(t *testing.T) {
		long := strings.Repeat("x", 300)
		got := TruncateComment(long)
		assert.Len(t, got, MaxCommentLength)
	})

	t.Run("never splits a rune", func(t *testing.T) {
		// 127 two-byte runes = 254 bytes; one more lands on the boundary.
		long := strings.Repeat("é", 130)
		got := TruncateComment(long)
		assert.LessOrEqual(t, len(got), MaxCommentLength)
		assert.True(t, strings.HasPrefix(long, got))
		for _, r := range got {
			assert.NotEqual(t, '�', r)
		}
	})
}
