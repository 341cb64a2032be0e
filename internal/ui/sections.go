package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"roo-petroleum-web/internal/domain"
)

// sectionShell is the padded full-width band every page section sits in
func sectionShell(class string, children ...g.Node) g.Node {
	return Section(Class("py-16 "+class),
		Div(Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"), g.Group(children)),
	)
}

func (k Kit) SectionHeading(title, subtitle string) g.Node {
	return Div(Class("text-center mb-12"),
		H2(Class("text-3xl md:text-4xl font-bold mb-4 "+arb("text", k.theme.Colors.Navy)), g.Text(title)),
		g.If(subtitle != "", P(Class("text-lg text-gray-600 max-w-3xl mx-auto"), g.Text(subtitle))),
	)
}

// FeatureGrid lays out titled blurbs as cards
func (k Kit) FeatureGrid(features []domain.Feature, columns int) g.Node {
	grid := "grid grid-cols-1 md:grid-cols-2 gap-6"
	switch columns {
	case 3:
		grid += " lg:grid-cols-3"
	case 4:
		grid += " lg:grid-cols-4"
	}
	return Div(Class(grid),
		g.Map(features, func(f domain.Feature) g.Node {
			return k.Card(CardProps{Variant: CardElevated, Padding: CardPadLG, Hover: true, Class: "h-full text-center"},
				k.CardTitle("text-xl mb-3", g.Text(f.Title)),
				k.CardDescription("", g.Text(f.Description)),
			)
		}),
	)
}

func (k Kit) checkList(items []string) g.Node {
	return Ul(Class("space-y-2"),
		g.Map(items, func(item string) g.Node {
			return Li(Class("flex items-start text-sm text-gray-600"),
				Span(Class("mr-2 "+arb("text", k.theme.Colors.Orange)), Aria("hidden", "true"), g.Text("✓")),
				g.Text(item),
			)
		}),
	)
}

// ServiceCard is a catalogue entry linking to the service's detail page
func (k Kit) ServiceCard(svc domain.Service) g.Node {
	return k.Card(CardProps{Variant: CardElevated, Hover: true, Class: "h-full flex flex-col"},
		k.CardHeader("",
			k.CardTitle("", g.Text(svc.Title)),
			k.CardDescription("", g.Text(svc.Summary)),
		),
		k.CardContent("flex-1", k.checkList(svc.Features)),
		k.CardFooter("",
			k.LinkButton(ButtonProps{Variant: ButtonGhost, Size: ButtonSmall}, "/services/"+svc.Slug, g.Text("Learn More")),
		),
	)
}

func (k Kit) ServiceGrid(services []domain.Service) g.Node {
	return Div(Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"),
		g.Map(services, k.ServiceCard),
	)
}

func (k Kit) OfferingCard(o domain.Offering) g.Node {
	return k.Card(CardProps{Variant: CardElevated, Padding: CardPadLG, Class: "h-full"},
		k.CardHeader("",
			k.CardTitle("text-2xl", g.Text(o.Title)),
			k.CardDescription("text-base", g.Text(o.Description)),
			g.If(o.Meta != "", P(Class("mt-2 text-sm font-medium "+arb("text", k.theme.Colors.Orange)), g.Text(o.Meta))),
		),
		k.CardContent("", k.checkList(o.Features)),
	)
}

func (k Kit) ListBlock(l domain.ListSection) g.Node {
	return Div(
		k.SectionHeading(l.Heading, l.Intro),
		Div(Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-4"),
			g.Map(l.Items, func(item string) g.Node {
				return k.Card(CardProps{Variant: CardFilled, Class: "text-center"},
					P(Class("font-medium "+arb("text", k.theme.Colors.Navy)), g.Text(item)),
				)
			}),
		),
	)
}

// ProcessSteps renders numbered steps in order
func (k Kit) ProcessSteps(steps []domain.Feature) g.Node {
	col := k.theme.Colors
	nodes := make([]g.Node, 0, len(steps))
	for i, step := range steps {
		nodes = append(nodes, Div(Class("text-center"),
			Div(Class("w-16 h-16 rounded-full flex items-center justify-center mx-auto mb-4 "+arb("bg", col.Orange)),
				Span(Class("text-white font-bold text-xl"), g.Text(strconv.Itoa(i+1))),
			),
			H3(Class("text-xl font-semibold mb-3 "+arb("text", col.Navy)), g.Text(step.Title)),
			P(Class("text-gray-600"), g.Text(step.Description)),
		))
	}
	return Ol(Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-"+strconv.Itoa(min(len(steps), 5))+" gap-8 list-none"),
		g.Map(nodes, func(n g.Node) g.Node { return Li(n) }),
	)
}

// CallToAction is the closing band linking to the contact page
func (k Kit) CallToAction(cta domain.Feature, phone domain.ContactDetails) g.Node {
	return Section(Class("py-16 text-white "+arb("bg", k.theme.Colors.Navy)),
		Div(Class("max-w-4xl mx-auto px-4 text-center"),
			H2(Class("text-3xl md:text-4xl font-bold mb-6"), g.Text(cta.Title)),
			g.If(cta.Description != "", P(Class("text-xl mb-8 text-gray-200"), g.Text(cta.Description))),
			Div(Class("flex flex-col sm:flex-row gap-4 justify-center"),
				k.LinkButton(ButtonProps{Size: ButtonLarge}, "/contact", g.Text("Request Quote")),
				g.If(phone.PhoneHref != "",
					k.LinkButton(ButtonProps{Variant: ButtonOutline, Size: ButtonLarge, Class: "border-white text-white"}, phone.PhoneHref, g.Text("Call Now: "+phone.Phone)),
				),
			),
		),
	)
}
