package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"roo-petroleum-web/internal/domain"
)

// SiteFooter renders company details, quick links, service links and social links
func (k Kit) SiteFooter(site *domain.SiteContent, year int) g.Node {
	col := k.theme.Colors
	co := site.Company
	link := func(item domain.NavigationItem) g.Node {
		return Li(A(Href(item.Href), Class("text-gray-300 "+arb("hover:text", col.Orange)), g.Text(item.Label)))
	}

	return Footer(
		Class("text-white "+arb("bg", col.DarkNavy)),
		Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-12 grid grid-cols-1 md:grid-cols-4 gap-8"),
			Div(Class("md:col-span-2 space-y-3"),
				H2(Class("text-xl font-bold"), g.Text(co.Name)),
				P(Class("text-gray-300"), g.Text(co.Description)),
				Address(Class("not-italic text-sm text-gray-300"),
					g.Text(co.Address.Street), Br(),
					g.Textf("%s %s %s", co.Address.City, co.Address.State, co.Address.ZipCode), Br(),
					g.Text(co.Address.Country),
				),
				P(Class("text-sm"),
					A(Href(co.Contact.PhoneHref), Class(arb("hover:text", col.Orange)), g.Text(co.Contact.Phone)),
					g.Text(" · "),
					A(Href("mailto:"+co.Contact.Email), Class(arb("hover:text", col.Orange)), g.Text(co.Contact.Email)),
				),
			),
			Div(
				H3(Class("font-semibold mb-3"), g.Text("Quick Links")),
				Ul(Class("space-y-2 text-sm"), g.Map(site.Navigation, link)),
			),
			Div(
				H3(Class("font-semibold mb-3"), g.Text("Our Services")),
				Ul(Class("space-y-2 text-sm"), g.Map(site.FooterLinks, link)),
			),
		),
		Div(Class("border-t border-white/10"),
			Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-6 flex flex-col md:flex-row justify-between gap-4 text-sm text-gray-400"),
				P(g.Text("© "+strconv.Itoa(year)+" "+co.Name+". All rights reserved.")),
				Div(Class("flex gap-4"),
					g.Map(site.Social, func(s domain.SocialLink) g.Node {
						return A(
							Href(s.URL), Target("_blank"), Rel("noopener noreferrer"),
							Aria("label", "Follow us on "+s.Platform),
							Class(arb("hover:text", col.Orange)),
							g.Text(s.Platform),
						)
					}),
				),
			),
		),
	)
}
