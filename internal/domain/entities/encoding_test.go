//go:build unit

package entities_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repoindex/internal/domain/entities"
)

func TestPercentEncode(t *testing.T) {
	t.Parallel()

	t.Run("should encode every reserved byte as uppercase hex and keep the rest", func(t *testing.T) {
		t.Parallel()

		for value := 1; value < 256; value++ {
			// given
			b := byte(value)
			reserved := b < 0x2C || b >= 127 || (b >= 0x3A && b <= 0x40) || b == '[' || b == ']'

			// when
			result := entities.PercentEncode(string([]byte{b}))

			// then
			if reserved {
				assert.Equal(t, fmt.Sprintf("%%%02X", b), result, "byte 0x%02X", b)
			} else {
				assert.Equal(t, string([]byte{b}), result, "byte 0x%02X", b)
			}
		}
	})

	t.Run("should never encode the forward slash", func(t *testing.T) {
		t.Parallel()

		// given
		input := "group/sub/repo"

		// when
		result := entities.PercentEncode(input)

		// then
		assert.Equal(t, "group/sub/repo", result)
	})

	t.Run("should keep comma, dash and dot", func(t *testing.T) {
		t.Parallel()

		// given
		input := "a,b-c.d"

		// when
		result := entities.PercentEncode(input)

		// then
		assert.Equal(t, "a,b-c.d", result)
	})

	t.Run("should encode spaces, colons and brackets in a name", func(t *testing.T) {
		t.Parallel()

		// given
		input := "my repo:[v2]"

		// when
		result := entities.PercentEncode(input)

		// then
		assert.Equal(t, "my%20repo%3A%5Bv2%5D", result)
	})

	t.Run("should encode multi-byte characters byte by byte", func(t *testing.T) {
		t.Parallel()

		// given
		input := "é"

		// when
		result := entities.PercentEncode(input)

		// then
		assert.Equal(t, "%C3%A9", result)
	})

	t.Run("should stop at the first NUL byte", func(t *testing.T) {
		t.Parallel()

		// given
		input := "abc\x00def"

		// when
		result := entities.PercentEncode(input)

		// then
		assert.Equal(t, "abc", result)
	})
}

func TestAppendPercentEncoded(t *testing.T) {
	t.Parallel()

	t.Run("should process at most limit bytes", func(t *testing.T) {
		t.Parallel()

		// given
		input := "a b c"

		// when
		result := entities.AppendPercentEncoded([]byte("x="), input, 3)

		// then
		assert.Equal(t, "x=a%20b", string(result))
	})

	t.Run("should treat a negative limit as the whole string", func(t *testing.T) {
		t.Parallel()

		// given
		input := "a b"

		// when
		result := entities.AppendPercentEncoded(nil, input, -1)

		// then
		assert.Equal(t, "a%20b", string(result))
	})
}

func TestMarkupEscape(t *testing.T) {
	t.Parallel()

	t.Run("should replace the five reserved characters", func(t *testing.T) {
		t.Parallel()

		// given
		input := "<a&b>'\""

		// when
		result := entities.MarkupEscape(input)

		// then
		assert.Equal(t, "&lt;a&amp;b&gt;&#39;&quot;", result)
	})

	t.Run("should pass control characters and line terminators through", func(t *testing.T) {
		t.Parallel()

		// given
		input := "line\r\n\ttab\x01"

		// when
		result := entities.MarkupEscape(input)

		// then
		assert.Equal(t, input, result)
	})

	t.Run("should escape the ampersand of an existing entity", func(t *testing.T) {
		t.Parallel()

		// given
		input := "&amp;"

		// when
		result := entities.MarkupEscape(input)

		// then
		assert.Equal(t, "&amp;amp;", result)
	})

	t.Run("should stop at the first NUL byte", func(t *testing.T) {
		t.Parallel()

		// given
		input := "<b>\x00<i>"

		// when
		result := entities.MarkupEscape(input)

		// then
		assert.Equal(t, "&lt;b&gt;", result)
	})
}

func TestWriteEncoded(t *testing.T) {
	t.Parallel()

	t.Run("should stream both encodings to the writer", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		errPercent := entities.WritePercentEncoded(&buf, "a b", 3)
		errMarkup := entities.WriteMarkupEscaped(&buf, "<x>", 3)

		// then
		require.NoError(t, errPercent)
		require.NoError(t, errMarkup)
		assert.Equal(t, "a%20b&lt;x&gt;", buf.String())
	})

	t.Run("should honour the limit when streaming", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		input := strings.Repeat("&", 10)

		// when
		err := entities.WriteMarkupEscaped(&buf, input, 2)

		// then
		require.NoError(t, err)
		assert.Equal(t, "&amp;&amp;", buf.String())
	})
}
