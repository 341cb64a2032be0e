package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"roo-petroleum-web/internal/domain"
)

// TailwindCDN is the only third-party script the layout loads
const TailwindCDN = "https://cdn.tailwindcss.com"

// PageMeta is the per-page head content
type PageMeta struct {
	Title       string
	Description string
	Nav         NavState
	Year        int
}

// Layout wraps page content in the document shell, header and footer
func (k Kit) Layout(site *domain.SiteContent, meta PageMeta, content ...g.Node) g.Node {
	title := site.Company.Name
	if meta.Title != "" {
		title = meta.Title + " | " + site.Company.Name
	}
	description := meta.Description
	if description == "" {
		description = site.Company.Description
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en-AU"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(description)),
				Meta(g.Attr("property", "og:title"), Content(title)),
				Meta(g.Attr("property", "og:description"), Content(description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Link(Rel("stylesheet"), Href("/assets/theme.css")),
				Script(Src(TailwindCDN)),
			),
			Body(
				Class("min-h-screen flex flex-col bg-white antialiased"),
				k.SiteHeader(site.Company, site.Navigation, meta.Nav),
				Main(
					Class("flex-1"),
					g.Attr("style", "padding-top: var(--layout-header-height)"),
					g.Group(content),
				),
				k.SiteFooter(site, meta.Year),
			),
		),
	})
}
