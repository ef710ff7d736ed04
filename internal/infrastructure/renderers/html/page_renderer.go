// Package html renders the repository index page.
//
// Every piece of the page is a templ.Component writing its markup in a
// single Write call. Text taken from repositories or settings is escaped
// with the encoders of the entities package.
package html

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/rios0rios0/repoindex/internal/domain/entities"
)

const (
	documentStart = "<!DOCTYPE html>\n" +
		"<meta charset=\"UTF-8\">\n" +
		"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n"
	tableStart = "<div id=\"content\">\n" +
		"\t<center><table id=\"index\">\n" +
		"\t\t<thead>\n" +
		"\t\t\t<tr><td><b>name</b></td><td><b>description</b></td><td><b>last commit</b></td></tr>\n" +
		"\t\t</thead>\n" +
		"\t\t<tbody>"
	tableEnd = "\n\t\t</tbody>\n" +
		"\t</table>\n" +
		"</center>\n" +
		"</div>\n"
)

// PageRenderer builds the components of the index page for one set of settings.
type PageRenderer struct {
	settings *entities.Settings
}

// NewPageRenderer creates a renderer; nil settings means the defaults.
func NewPageRenderer(settings *entities.Settings) *PageRenderer {
	if settings == nil {
		settings = entities.DefaultSettings()
	}
	return &PageRenderer{settings: settings}
}

// Page renders the whole document: header, one row per entry in the given
// order, and footer.
func (r *PageRenderer) Page(entries []entities.RepoEntry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := r.Header().Render(ctx, w); err != nil {
			return err
		}
		for _, entry := range entries {
			if err := r.Row(entry).Render(ctx, w); err != nil {
				return err
			}
		}
		return r.Footer().Render(ctx, w)
	})
}

// Header renders the doctype, metadata, banner and the opening of the table.
func (r *PageRenderer) Header() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		s := r.settings
		buf := make([]byte, 0, 1024)
		buf = append(buf, documentStart...)
		buf = appendElement(buf, "<title>", s.Title, "</title>\n")
		buf = appendElement(buf, "<meta name=\"description\" content=\"", s.Description, "\">\n")
		buf = appendElement(buf, "<meta name=\"keywords\" content=\"", s.Keywords, "\">\n")
		if s.Author != "" {
			buf = appendElement(buf, "<meta name=\"author\" content=\"", s.Author, "\">\n")
		}
		buf = appendElement(buf, "<link rel=\"icon\" type=\"image/png\" href=\"", s.Favicon, "\">\n")
		buf = appendElement(buf, "<link rel=\"stylesheet\" type=\"text/css\" href=\"", s.Stylesheet, "\">\n")
		buf = append(buf, "<div class=\"container\">\n\t<center>\n\t<table>\n\t\t<tr><td>\n"...)
		buf = appendElement(buf, "<b>", s.Banner, "</b>\n")
		buf = append(buf, "\t\t</td></tr>\n\t</table>\n\t</center>\n</div>\n<br>\n"...)
		buf = append(buf, tableStart...)
		_, err := w.Write(buf)
		return err
	})
}

// Row renders the table row of a single entry. The entry is the only input
// besides the settings; nothing is shared between rows.
func (r *PageRenderer) Row(entry entities.RepoEntry) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		link := entry.LinkName(r.settings.StripSuffix)
		buf := make([]byte, 0, 256)
		buf = append(buf, "\n\t\t\t<tr class=\"item-repo\"><td><a href=\""...)
		buf = entities.AppendPercentEncoded(buf, link, len(link))
		buf = append(buf, '/')
		buf = entities.AppendMarkupEscaped(buf, r.settings.LogPage, len(r.settings.LogPage))
		buf = append(buf, "\">"...)
		buf = entities.AppendMarkupEscaped(buf, link, len(link))
		buf = append(buf, "</a></td><td>"...)
		buf = entities.AppendMarkupEscaped(buf, entry.Description, len(entry.Description))
		buf = append(buf, "</td><td>"...)
		buf = append(buf, entry.LastCommitDate()...)
		buf = append(buf, "</td></tr>"...)
		_, err := w.Write(buf)
		return err
	})
}

// Footer closes the table and writes the copyright line.
func (r *PageRenderer) Footer() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		buf := make([]byte, 0, 256)
		buf = append(buf, tableEnd...)
		buf = append(buf, "<center>\n<br/>\n<div id=\"footer\">\n"...)
		buf = appendElement(buf, "\t&copy; ", r.settings.Footer, "\n")
		buf = append(buf, "</div>\n</center>"...)
		_, err := w.Write(buf)
		return err
	})
}

func appendElement(buf []byte, open, text, closing string) []byte {
	buf = append(buf, open...)
	buf = entities.AppendMarkupEscaped(buf, text, len(text))
	return append(buf, closing...)
}
