package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"roo-petroleum-web/internal/domain"
)

// Hero renders the large banner at the top of the home page
func (k Kit) Hero(h domain.HeroContent) g.Node {
	col := k.theme.Colors
	return Section(
		Class("relative flex items-center justify-center text-white py-24 md:py-32 "+arb("bg", col.Navy)),
		Div(Class("max-w-4xl mx-auto px-4 text-center"),
			g.If(h.Subtitle != "",
				P(Class("font-semibold text-sm sm:text-base uppercase tracking-wider mb-4 "+arb("text", col.Orange)), g.Text(h.Subtitle)),
			),
			H1(Class("text-4xl sm:text-5xl lg:text-6xl font-bold mb-6 leading-tight"), g.Text(h.Title)),
			g.If(h.Description != "",
				P(Class("text-lg sm:text-xl text-gray-100 mb-8 max-w-3xl mx-auto leading-relaxed"), g.Text(h.Description)),
			),
			k.heroActions(h),
			Div(Class("grid grid-cols-1 sm:grid-cols-3 gap-8 max-w-3xl mx-auto mt-12"),
				stat(col.Orange, "100%", "Quality Commitment"),
				stat(col.Orange, "100%", "Eco-Friendly Solutions"),
				stat(col.Orange, "24/7", "Support Available"),
			),
		),
	)
}

// PageHero is the shorter banner used by inner pages
func (k Kit) PageHero(h domain.HeroContent) g.Node {
	col := k.theme.Colors
	return Section(
		Class("text-white py-16 md:py-20 "+arb("bg", col.Navy)),
		Div(Class("max-w-4xl mx-auto px-4 text-center"),
			H1(Class("text-4xl md:text-5xl font-bold mb-4"), g.Text(h.Title)),
			g.If(h.Subtitle != "", P(Class("text-xl mb-4 "+arb("text", col.Orange)), g.Text(h.Subtitle))),
			g.If(h.Description != "", P(Class("text-lg text-gray-200 max-w-3xl mx-auto"), g.Text(h.Description))),
			k.heroActions(h),
		),
	)
}

func (k Kit) heroActions(h domain.HeroContent) g.Node {
	if h.Primary == nil && h.Secondary == nil {
		return nil
	}
	return Div(Class("flex flex-col sm:flex-row gap-4 justify-center items-center mt-8"),
		g.Iff(h.Primary != nil, func() g.Node {
			return k.LinkButton(ButtonProps{Size: ButtonLarge, Class: "min-w-[200px]"}, h.Primary.Href, g.Text(h.Primary.Label))
		}),
		g.Iff(h.Secondary != nil, func() g.Node {
			return k.LinkButton(ButtonProps{Variant: ButtonOutline, Size: ButtonLarge, Class: "min-w-[200px] border-white text-white"}, h.Secondary.Href, g.Text(h.Secondary.Label))
		}),
	)
}

func stat(color, value, label string) g.Node {
	return Div(Class("text-center"),
		Div(Class("text-3xl font-bold mb-2 "+arb("text", color)), g.Text(value)),
		Div(Class("text-sm uppercase tracking-wide"), g.Text(label)),
	)
}
