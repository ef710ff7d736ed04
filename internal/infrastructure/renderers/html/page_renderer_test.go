//go:build unit

package html_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repoindex/internal/domain/entities"
	"github.com/rios0rios0/repoindex/internal/infrastructure/renderers/html"
	"github.com/rios0rios0/repoindex/test/domain/entitybuilders"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func render(t *testing.T, renderer *html.PageRenderer, entry entities.RepoEntry) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, renderer.Row(entry).Render(context.Background(), &buf))
	return buf.String()
}

func TestPageRendererRow(t *testing.T) {
	t.Parallel()

	t.Run("should strip the suffix from link text and href", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := html.NewPageRenderer(nil)
		entry := entitybuilders.NewRepoEntryBuilder().
			WithName("foo.git").
			WithDescription("").
			WithoutActivity().
			BuildRepoEntry()

		// when
		result := render(t, renderer, entry)

		// then
		assert.Equal(t,
			"\n\t\t\t<tr class=\"item-repo\"><td><a href=\"foo/log.html\">foo</a></td><td></td><td></td></tr>",
			result,
		)
	})

	t.Run("should use a name without suffix unchanged", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := html.NewPageRenderer(nil)
		entry := entitybuilders.NewRepoEntryBuilder().WithName("foo").BuildRepoEntry()

		// when
		result := render(t, renderer, entry)

		// then
		assert.Contains(t, result, "<a href=\"foo/log.html\">foo</a>")
	})

	t.Run("should percent-encode the href and markup-escape the text", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := html.NewPageRenderer(nil)
		entry := entitybuilders.NewRepoEntryBuilder().WithName("a b&c.git").BuildRepoEntry()

		// when
		result := render(t, renderer, entry)

		// then
		assert.Contains(t, result, "<a href=\"a%20b%26c/log.html\">a b&amp;c</a>")
	})

	t.Run("should escape the description and keep its line terminator", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := html.NewPageRenderer(nil)
		entry := entitybuilders.NewRepoEntryBuilder().
			WithDescription("<tools> & \"scripts\"\n").
			BuildRepoEntry()

		// when
		result := render(t, renderer, entry)

		// then
		assert.Contains(t, result, "<td>&lt;tools&gt; &amp; &quot;scripts&quot;\n</td>")
	})

	t.Run("should show the last commit date when a commit exists", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := html.NewPageRenderer(nil)
		entry := entitybuilders.NewRepoEntryBuilder().
			WithDescription("").
			WithLastActivity(1700000000).
			BuildRepoEntry()

		// when
		result := render(t, renderer, entry)

		// then
		assert.True(t, strings.HasSuffix(result, "<td></td><td>2023-11-14</td></tr>"))
	})

	t.Run("should use the configured log page and suffix", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.StripSuffix = ".hg"
		settings.LogPage = "index.html"
		renderer := html.NewPageRenderer(settings)
		entry := entitybuilders.NewRepoEntryBuilder().WithName("proj.hg").BuildRepoEntry()

		// when
		result := render(t, renderer, entry)

		// then
		assert.Contains(t, result, "<a href=\"proj/index.html\">proj</a>")
	})
}

func TestPageRendererPage(t *testing.T) {
	t.Parallel()

	t.Run("should write header, rows in order and footer", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := html.NewPageRenderer(nil)
		entries := []entities.RepoEntry{
			entitybuilders.NewRepoEntryBuilder().WithName("first").BuildRepoEntry(),
			entitybuilders.NewRepoEntryBuilder().WithName("second").BuildRepoEntry(),
		}
		var buf bytes.Buffer

		// when
		err := renderer.Page(entries).Render(context.Background(), &buf)

		// then
		require.NoError(t, err)
		page := buf.String()
		assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>\n<meta charset=\"UTF-8\">\n"))
		assert.Contains(t, page, "<tr><td><b>name</b></td><td><b>description</b></td><td><b>last commit</b></td></tr>")
		assert.Less(t, strings.Index(page, ">first</a>"), strings.Index(page, ">second</a>"))
		assert.True(t, strings.HasSuffix(page, "</div>\n</center>"))
	})

	t.Run("should escape the configured header and footer text", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Title = "Tom & Jerry's <repos>"
		settings.Author = "jane"
		settings.Footer = "2024 example.org"
		renderer := html.NewPageRenderer(settings)
		var buf bytes.Buffer

		// when
		err := renderer.Page(nil).Render(context.Background(), &buf)

		// then
		require.NoError(t, err)
		page := buf.String()
		assert.Contains(t, page, "<title>Tom &amp; Jerry&#39;s &lt;repos&gt;</title>\n")
		assert.Contains(t, page, "<meta name=\"author\" content=\"jane\">\n")
		assert.Contains(t, page, "\t&copy; 2024 example.org\n")
		assert.Contains(t, page, "<link rel=\"stylesheet\" type=\"text/css\" href=\"/style.css\">\n")
	})

	t.Run("should omit the author metadata when not configured", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := html.NewPageRenderer(nil)
		var buf bytes.Buffer

		// when
		err := renderer.Header().Render(context.Background(), &buf)

		// then
		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "name=\"author\"")
	})

	t.Run("should report write failures", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := html.NewPageRenderer(nil)

		// when
		err := renderer.Page(nil).Render(context.Background(), failingWriter{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
