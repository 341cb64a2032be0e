package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"roo-petroleum-web/internal/domain"
)

// SiteHeader renders the fixed top bar with desktop links and the mobile drawer
func (k Kit) SiteHeader(company domain.CompanyInfo, items []domain.NavigationItem, nav NavState) g.Node {
	col := k.theme.Colors

	return Header(
		Class("fixed top-0 left-0 right-0 z-[9999] shadow-lg border-b "+arb("bg", col.Navy)+" "+arb("border", col.DarkNavy)),
		g.Attr("style", "height: var(--layout-header-height)"),
		Div(
			Class("max-w-7xl mx-auto h-full px-4 sm:px-6 lg:px-8 flex items-center justify-between"),
			A(Href("/"), Class("flex items-center space-x-4"),
				Div(Class("hidden sm:block"),
					P(Class("text-2xl font-bold text-white"), g.Text(company.Name)),
					P(Class("text-sm font-medium "+arb("text", col.Orange)), g.Text(company.ShortTag)),
				),
			),
			Nav(Class("hidden lg:flex items-center space-x-8"), Aria("label", "Main"),
				g.Map(items, func(item domain.NavigationItem) g.Node {
					return k.navLink(item, nav, "text-sm font-semibold")
				}),
			),
			Div(Class("hidden lg:flex items-center space-x-4"),
				k.navLink(domain.NavigationItem{Label: "Sign In", Href: "/signin"}, nav, "text-sm font-semibold"),
				k.LinkButton(ButtonProps{Size: ButtonSmall, Class: "shadow-lg"}, "/contact", g.Text("Get Started")),
			),
			A(
				Href(nav.ToggleHref()),
				Class("lg:hidden p-2 rounded-md text-white hover:bg-white/10"),
				Aria("label", "Toggle mobile menu"),
				Aria("controls", "mobile-menu"),
				g.If(nav.MenuOpen, Aria("expanded", "true")),
				g.If(!nav.MenuOpen, Aria("expanded", "false")),
				g.If(nav.MenuOpen, g.Text("✕")),
				g.If(!nav.MenuOpen, g.Text("☰")),
			),
		),
		g.If(nav.MenuOpen, k.mobileMenu(items, nav)),
	)
}

// mobileMenu links never carry the menu flag, so following one closes the drawer
func (k Kit) mobileMenu(items []domain.NavigationItem, nav NavState) g.Node {
	col := k.theme.Colors
	return Div(
		ID("mobile-menu"),
		Class("lg:hidden absolute top-full left-0 right-0 shadow-xl border-t "+arb("bg", col.Navy)+" "+arb("border", col.DarkNavy)),
		Div(Class("px-4 py-6 space-y-4"),
			g.Map(items, func(item domain.NavigationItem) g.Node {
				return k.navLink(item, nav, "block font-medium py-2")
			}),
			Div(Class("pt-4 space-y-3"),
				k.navLink(domain.NavigationItem{Label: "Sign In", Href: "/signin"}, nav, "block font-medium py-2"),
				k.LinkButton(ButtonProps{Class: "w-full"}, "/contact", g.Text("Get Started")),
			),
		),
	)
}

func (k Kit) navLink(item domain.NavigationItem, nav NavState, class string) g.Node {
	active := nav.IsActive(item)
	color := "text-white " + arb("hover:text", k.theme.Colors.Orange)
	if active {
		color = arb("text", k.theme.Colors.Orange)
	}
	return A(
		Href(item.Href),
		Class(class+" transition-colors duration-200 "+color),
		g.If(active, Aria("current", "page")),
		g.If(item.IsExternal, Target("_blank")),
		g.If(item.IsExternal, Rel("noopener noreferrer")),
		g.Text(item.Label),
	)
}
