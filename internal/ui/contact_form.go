package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"roo-petroleum-web/internal/domain"
)

const (
	SuccessMessage = "Thank you! Your message has been sent successfully. We'll get back to you soon."
	ErrorMessage   = "Sorry, there was an error sending your message. Please try again or contact us directly."

	submitLabel     = "Send Message"
	submittingLabel = "Sending..."

	// CSRFField and StatusField are the hidden inputs posted with the form
	CSRFField   = "csrf_token"
	StatusField = "status"
)

// ContactFormView is everything the contact form needs to render one state
type ContactFormView struct {
	Title        string
	Subtitle     string
	Action       string
	CSRFToken    string
	ServiceTypes []string
	Result       domain.ContactResult
	// Submitting renders the in-flight state: submit disabled with its spinner
	Submitting bool
	Company    domain.CompanyInfo
}

// ContactForm renders the inquiry form with its field errors and status banner
func (k Kit) ContactForm(v ContactFormView) g.Node {
	draft := v.Result.Draft
	errs := v.Result.Errors
	action := v.Action
	if action == "" {
		action = "/contact"
	}

	label := submitLabel
	if v.Submitting {
		label = submittingLabel
	}

	return Section(ID("contact-form"), Class("py-16 bg-white"),
		Div(Class("max-w-6xl mx-auto px-4"),
			g.If(v.Title != "", k.SectionHeading(v.Title, v.Subtitle)),
			Div(Class("grid grid-cols-1 lg:grid-cols-3 gap-8"),
				Div(Class("lg:col-span-2"),
					k.Card(CardProps{Variant: CardElevated, Padding: CardPadLG},
						Form(
							Method("post"),
							Action(action+"#contact-form"),
							Class("space-y-6"),
							g.Attr("novalidate"),
							Input(Type("hidden"), Name(CSRFField), Value(v.CSRFToken)),
							Input(Type("hidden"), Name(StatusField), Value(string(v.Result.Status))),
							Div(Class("grid grid-cols-1 md:grid-cols-2 gap-4"),
								k.Input(FieldProps{ID: "name", Name: string(domain.FieldName), Label: "Full Name", Required: true,
									Value: draft.Name, Error: errs[domain.FieldName], Placeholder: "Your full name", AutoComplete: "name"}),
								k.Input(FieldProps{ID: "email", Name: string(domain.FieldEmail), Type: "email", Label: "Email Address", Required: true,
									Value: draft.Email, Error: errs[domain.FieldEmail], Placeholder: "your.email@company.com", AutoComplete: "email"}),
							),
							Div(Class("grid grid-cols-1 md:grid-cols-2 gap-4"),
								k.Input(FieldProps{ID: "phone", Name: string(domain.FieldPhone), Type: "tel", Label: "Phone Number", Required: true,
									Value: draft.Phone, Error: errs[domain.FieldPhone], Placeholder: "04xx xxx xxx", AutoComplete: "tel"}),
								k.Input(FieldProps{ID: "company", Name: string(domain.FieldCompany), Label: "Company Name",
									Value: draft.Company, Error: errs[domain.FieldCompany], Placeholder: "Your company name", AutoComplete: "organization"}),
							),
							Div(Class("grid grid-cols-1 md:grid-cols-2 gap-4"),
								k.Select(FieldProps{ID: "serviceType", Name: string(domain.FieldServiceType), Label: "Service Interest",
									Value: draft.ServiceType, Error: errs[domain.FieldServiceType]}, "Select a service", v.ServiceTypes),
								k.Input(FieldProps{ID: "subject", Name: string(domain.FieldSubject), Label: "Subject",
									Value: draft.Subject, Error: errs[domain.FieldSubject], Placeholder: "Brief subject line"}),
							),
							k.TextArea(FieldProps{ID: "message", Name: string(domain.FieldMessage), Label: "Message", Required: true,
								Value: draft.Message, Error: errs[domain.FieldMessage],
								Placeholder: "Tell us about your petroleum needs, project requirements, or any questions you have..."}, 5),
							StatusBanner(v.Result.Status),
							k.Button(ButtonProps{Type: "submit", Size: ButtonLarge, Loading: v.Submitting, Class: "w-full md:w-auto"},
								g.Text(label),
							),
						),
					),
				),
				k.contactInfo(v.Company),
			),
		),
	)
}

// StatusBanner shows the outcome of the last submission; idle and submitting show nothing
func StatusBanner(status domain.SubmissionStatus) g.Node {
	switch status {
	case domain.StatusSuccess:
		return Div(Role("status"), Class("p-4 bg-green-50 border border-green-200 rounded-md"),
			P(Class("text-green-800"), g.Text(SuccessMessage)),
		)
	case domain.StatusError:
		return Div(Role("alert"), Class("p-4 bg-red-50 border border-red-200 rounded-md"),
			P(Class("text-red-800"), g.Text(ErrorMessage)),
		)
	default:
		return nil
	}
}

func (k Kit) contactInfo(co domain.CompanyInfo) g.Node {
	heading := func(s string) g.Node {
		return H4(Class("font-semibold mb-2 "+arb("text", k.theme.Colors.Navy)), g.Text(s))
	}
	return Div(Class("space-y-6"),
		k.Card(CardProps{Variant: CardFilled, Padding: CardPadLG},
			k.CardHeader("", k.CardTitle("", g.Text("Contact Information"))),
			k.CardContent("space-y-4 text-sm text-gray-600",
				Div(heading("Address"),
					P(g.Text(co.Address.Street), Br(),
						g.Textf("%s %s %s", co.Address.City, co.Address.State, co.Address.ZipCode), Br(),
						g.Text(co.Address.Country)),
				),
				Div(heading("Phone"), P(A(Href(co.Contact.PhoneHref), g.Text(co.Contact.Phone)))),
				Div(heading("Email"), P(A(Href("mailto:"+co.Contact.Email), g.Text(co.Contact.Email)))),
				g.If(len(co.Hours) > 0, Div(heading("Business Hours"),
					g.Map(co.Hours, func(h string) g.Node { return P(g.Text(h)) }),
				)),
			),
		),
		g.If(co.Emergency.Href != "",
			k.Card(CardProps{Variant: CardElevated, Padding: CardPadLG},
				k.CardHeader("", k.CardTitle("", g.Text("Emergency Contact"))),
				k.CardContent("",
					P(Class("text-sm text-gray-600 mb-3"), g.Text("For urgent fuel supply needs or emergencies:")),
					P(Class("font-semibold "+arb("text", k.theme.Colors.Orange)),
						A(Href(co.Emergency.Href), g.Text(co.Emergency.Label)),
					),
					g.If(co.Emergency.Note != "", P(Class("text-xs text-gray-500 mt-2"), g.Text(co.Emergency.Note))),
				),
			),
		),
	)
}
