package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"roo-petroleum-web/internal/domain"
)

// Pages composes full documents from the site content. One method per page kind;
// ServicePage serves every service slug.
type Pages struct {
	Kit  Kit
	Site *domain.SiteContent
}

func NewPages(kit Kit, site *domain.SiteContent) *Pages {
	return &Pages{Kit: kit, Site: site}
}

func (p *Pages) Home(meta PageMeta, form ContactFormView) g.Node {
	k := p.Kit
	return k.Layout(p.Site, meta,
		k.Hero(p.Site.Home),
		sectionShell("bg-gray-50",
			k.SectionHeading(p.Site.ServicesPage.Hero.Title, p.Site.ServicesPage.Hero.Subtitle),
			k.ServiceGrid(p.Site.FeaturedServices()),
			Div(Class("text-center mt-12"),
				P(Class("text-lg text-gray-600 mb-6"), g.Text("Need a custom solution? We're here to help.")),
				Div(Class("flex flex-col sm:flex-row gap-4 justify-center"),
					k.LinkButton(ButtonProps{Size: ButtonLarge}, "/contact", g.Text("Get Quote")),
					k.LinkButton(ButtonProps{Variant: ButtonOutline, Size: ButtonLarge}, "/services", g.Text("All Services")),
				),
			),
		),
		k.ContactForm(form),
	)
}

func (p *Pages) About(meta PageMeta) g.Node {
	k := p.Kit
	about := p.Site.About
	col := k.theme.Colors

	return k.Layout(p.Site, meta,
		k.PageHero(about.Hero),
		sectionShell("",
			k.FeatureGrid(about.Statements, 2),
		),
		sectionShell("bg-gray-50",
			k.SectionHeading("Our Core Values", "These principles guide everything we do and shape our commitment to excellence"),
			k.FeatureGrid(about.Values, 4),
		),
		sectionShell("",
			k.SectionHeading("Our Journey", "Key milestones in our company's growth and evolution"),
			Ol(Class("relative border-l-2 max-w-3xl mx-auto space-y-8 "+arb("border", col.Orange)),
				g.Map(about.Milestones, func(m domain.Milestone) g.Node {
					return Li(Class("ml-6"),
						Span(Class("font-bold text-lg "+arb("text", col.Orange)), g.Text(m.Year)),
						H3(Class("text-xl font-semibold "+arb("text", col.Navy)), g.Text(m.Title)),
						P(Class("text-gray-600"), g.Text(m.Description)),
					)
				}),
			),
		),
		sectionShell("bg-gray-50",
			k.SectionHeading("Leadership Team", "Meet the experienced professionals leading Roo Petroleum forward"),
			Div(Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Map(about.Team, func(m domain.TeamMember) g.Node {
					return k.Card(CardProps{Variant: CardElevated, Padding: CardPadLG, Class: "text-center"},
						k.CardTitle("text-xl", g.Text(m.Name)),
						P(Class("font-medium mb-2 "+arb("text", col.Orange)), g.Text(m.Position)),
						P(Class("text-sm text-gray-500 mb-3"), g.Text(m.Experience)),
						k.CardDescription("", g.Text(m.Description)),
					)
				}),
			),
		),
		k.CallToAction(domain.Feature{
			Title:       "Ready to Partner with Us?",
			Description: "Discover how Roo Petroleum can provide the reliable fuel solutions your business needs.",
		}, p.Site.Company.Contact),
	)
}

func (p *Pages) Services(meta PageMeta) g.Node {
	k := p.Kit
	sp := p.Site.ServicesPage
	return k.Layout(p.Site, meta,
		k.PageHero(sp.Hero),
		sectionShell("",
			k.SectionHeading(sp.Title, sp.Subtitle),
			Div(Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(p.Site.Services, k.ServiceCard),
			),
		),
		g.If(len(sp.Industries) > 0, sectionShell("bg-gray-50",
			k.SectionHeading("Industries We Serve", "Specialized petroleum solutions for diverse industry sectors"),
			k.FeatureGrid(sp.Industries, 3),
		)),
		g.If(len(sp.Process) > 0, sectionShell("",
			k.SectionHeading("Our Service Process", "A streamlined approach to delivering exceptional petroleum services"),
			k.ProcessSteps(sp.Process),
		)),
		k.CallToAction(domain.Feature{
			Title:       "Ready to Get Started?",
			Description: "Contact us today to discuss your petroleum service needs and discover how we can help optimize your operations.",
		}, p.Site.Company.Contact),
	)
}

// Service renders one service detail page
func (p *Pages) Service(meta PageMeta, svc *domain.Service) g.Node {
	k := p.Kit
	hero := domain.HeroContent{
		Title:       svc.Title,
		Subtitle:    svc.Tagline,
		Description: svc.Intro,
		Primary:     &domain.Action{Label: "Get Quote", Href: "/contact"},
		Secondary:   &domain.Action{Label: "All Services", Href: "/services"},
	}

	lists := make([]g.Node, 0, len(svc.Lists))
	for i, l := range svc.Lists {
		bg := ""
		if i%2 == 0 {
			bg = "bg-gray-50"
		}
		lists = append(lists, sectionShell(bg, k.ListBlock(l)))
	}

	return k.Layout(p.Site, meta,
		k.PageHero(hero),
		g.If(len(svc.Benefits) > 0, sectionShell("",
			k.SectionHeading("Why Choose Our "+svc.Title+"?", ""),
			k.FeatureGrid(svc.Benefits, 4),
		)),
		g.If(len(svc.Offerings) > 0, sectionShell("bg-gray-50",
			k.SectionHeading(svc.OfferingTitle, ""),
			Div(Class("grid grid-cols-1 lg:grid-cols-2 gap-8"), g.Map(svc.Offerings, k.OfferingCard)),
		)),
		g.Group(lists),
		g.If(len(svc.Process) > 0, sectionShell("",
			k.SectionHeading("Our Process", ""),
			k.ProcessSteps(svc.Process),
		)),
		k.CallToAction(svc.CTA, p.Site.Company.Contact),
		Div(Class("text-center py-8"),
			A(Href("/services"), Class("font-medium "+arb("text", k.theme.Colors.Navy)+" "+arb("hover:text", k.theme.Colors.Orange)),
				g.Text("← Back to All Services")),
		),
	)
}

func (p *Pages) Contact(meta PageMeta, form ContactFormView) g.Node {
	k := p.Kit
	cp := p.Site.Contact
	col := k.theme.Colors

	return k.Layout(p.Site, meta,
		k.PageHero(cp.Hero),
		sectionShell("bg-gray-50",
			k.SectionHeading("Get In Touch", "Choose the contact method that works best for you"),
			Div(Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Map(cp.Methods, func(m domain.ContactMethod) g.Node {
					return k.Card(CardProps{Variant: CardElevated, Padding: CardPadLG, Class: "text-center"},
						k.CardTitle("", g.Text(m.Title)),
						P(Class("font-semibold "+arb("text", col.Orange)), A(Href(m.Action), g.Text(m.Primary))),
						k.CardDescription("mt-2", g.Text(m.Secondary)),
					)
				}),
			),
		),
		k.ContactForm(form),
		g.If(len(cp.Offices) > 0, sectionShell("bg-gray-50",
			k.SectionHeading("Our Locations", ""),
			Div(Class("grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Map(cp.Offices, func(o domain.Office) g.Node {
					return k.Card(CardProps{Padding: CardPadLG},
						k.CardTitle("", g.Text(o.Name)),
						k.CardContent("text-sm text-gray-600 space-y-1",
							P(g.Text(o.Address)), P(g.Text(o.City)), P(g.Text(o.Phone)), P(g.Text(o.Email)), P(g.Text(o.Hours)),
						),
					)
				}),
			),
		)),
		g.If(len(cp.FAQs) > 0, sectionShell("",
			k.SectionHeading("Frequently Asked Questions", "Find answers to common questions about our services"),
			Div(Class("max-w-3xl mx-auto space-y-4"),
				g.Map(cp.FAQs, func(f domain.FAQ) g.Node {
					return Details(Class("rounded-lg border border-gray-200 p-4"),
						Summary(Class("font-semibold cursor-pointer "+arb("text", col.Navy)), g.Text(f.Question)),
						P(Class("mt-2 text-gray-600"), g.Text(f.Answer)),
					)
				}),
			),
		)),
	)
}

// SignInView is the state of the customer portal form
type SignInView struct {
	CSRFToken string
	Email     string
	// Notice is shown after a sign-in attempt; there is no authentication behind the form
	Notice string
}

func (p *Pages) SignIn(meta PageMeta, v SignInView) g.Node {
	k := p.Kit
	si := p.Site.SignIn
	return k.Layout(p.Site, meta,
		k.PageHero(si.Hero),
		sectionShell("",
			Div(Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-start"),
				k.Card(CardProps{Variant: CardElevated, Padding: CardPadXL},
					k.CardHeader("",
						k.CardTitle("text-2xl", g.Text(si.Title)),
						k.CardDescription("", g.Text(si.Description)),
					),
					Form(Method("post"), Action("/signin"), Class("space-y-6"),
						Input(Type("hidden"), Name(CSRFField), Value(v.CSRFToken)),
						k.Input(FieldProps{ID: "email", Name: "email", Type: "email", Label: "Email Address", Required: true,
							Value: v.Email, Placeholder: "your.email@company.com", AutoComplete: "username"}),
						k.Input(FieldProps{ID: "password", Name: "password", Type: "password", Label: "Password", Required: true,
							Placeholder: "Enter your password", AutoComplete: "current-password"}),
						Label(Class("flex items-center text-sm text-gray-600"),
							Input(Type("checkbox"), Name("remember-me"), Class("mr-2")),
							g.Text("Remember me"),
						),
						g.If(v.Notice != "", Div(Role("status"), Class("p-4 bg-blue-50 border border-blue-200 rounded-md"),
							P(Class("text-blue-800"), g.Text(v.Notice)),
						)),
						k.Button(ButtonProps{Type: "submit", Variant: ButtonSecondary, Size: ButtonLarge, Class: "w-full"}, g.Text("Sign In")),
						P(Class("text-sm text-center text-gray-600"),
							g.Text("Don't have an account? "),
							A(Href("/contact"), Class(arb("text", k.theme.Colors.Orange)), g.Text("Contact us to get started")),
						),
					),
				),
				Div(
					k.SectionHeading("Customer Portal Benefits", "Manage your fuel services efficiently with our comprehensive customer portal"),
					k.FeatureGrid(si.Benefits, 2),
				),
			),
		),
	)
}

func (p *Pages) NotFound(meta PageMeta) g.Node {
	return p.Problem(meta, "Page not found", "The page you are looking for does not exist.")
}

// Problem is the page shown for any request the site cannot serve
func (p *Pages) Problem(meta PageMeta, heading, message string) g.Node {
	k := p.Kit
	return k.Layout(p.Site, meta,
		sectionShell("text-center",
			H1(Class("text-4xl font-bold mb-4 "+arb("text", k.theme.Colors.Navy)), g.Text(heading)),
			P(Class("text-gray-600 mb-8"), g.Text(message)),
			k.LinkButton(ButtonProps{}, "/", g.Text("Back to Home")),
		),
	)
}
