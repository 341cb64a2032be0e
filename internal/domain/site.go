package domain

import "errors"

// ErrServiceNotFound is returned for an unknown service page slug
var ErrServiceNotFound = errors.New("service not found")

// NavigationItem is one header/footer link
type NavigationItem struct {
	Label      string `yaml:"label" validate:"required"`
	Href       string `yaml:"href" validate:"required,startswith=/"`
	IsExternal bool   `yaml:"external"`
}

type Address struct {
	Street  string `yaml:"street"`
	City    string `yaml:"city"`
	State   string `yaml:"state"`
	ZipCode string `yaml:"zip_code"`
	Country string `yaml:"country"`
}

type ContactDetails struct {
	Phone     string `yaml:"phone"`
	PhoneHref string `yaml:"phone_href"`
	Email     string `yaml:"email" validate:"required,email"`
	Website   string `yaml:"website"`
}

type CompanyInfo struct {
	Name        string         `yaml:"name" validate:"required"`
	Tagline     string         `yaml:"tagline"`
	ShortTag    string         `yaml:"short_tagline"`
	Description string         `yaml:"description"`
	Address     Address        `yaml:"address"`
	Contact     ContactDetails `yaml:"contact"`
	Hours       []string       `yaml:"hours"`
	Emergency   EmergencyLine  `yaml:"emergency"`
}

type EmergencyLine struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Note  string `yaml:"note"`
}

type SocialLink struct {
	Platform string `yaml:"platform" validate:"required"`
	URL      string `yaml:"url" validate:"required,url"`
}

// Action is a call-to-action link
type Action struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type HeroContent struct {
	Title       string  `yaml:"title" validate:"required"`
	Subtitle    string  `yaml:"subtitle"`
	Description string  `yaml:"description"`
	Primary     *Action `yaml:"primary"`
	Secondary   *Action `yaml:"secondary"`
}

// Feature is a titled blurb (benefits, values, mission statements)
type Feature struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Offering is a service line with its bullet list
type Offering struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Meta        string   `yaml:"meta"` // e.g. "Capacity: 1,000L - 100,000L"
	Features    []string `yaml:"features"`
}

// ListSection is a headed list of short items (industries, certifications, coverage areas)
type ListSection struct {
	Heading string   `yaml:"heading" validate:"required"`
	Intro   string   `yaml:"intro"`
	Items   []string `yaml:"items" validate:"min=1"`
}

// Service is one entry of the services catalogue and its detail page
type Service struct {
	Slug          string        `yaml:"slug" validate:"required"`
	Title         string        `yaml:"title" validate:"required"`
	Summary       string        `yaml:"summary" validate:"required"`
	Features      []string      `yaml:"features" validate:"min=1"`
	Tagline       string        `yaml:"tagline"`
	Intro         string        `yaml:"intro"`
	Benefits      []Feature     `yaml:"benefits" validate:"dive"`
	OfferingTitle string        `yaml:"offering_title"`
	Offerings     []Offering    `yaml:"offerings" validate:"dive"`
	Lists         []ListSection `yaml:"lists" validate:"dive"`
	Process       []Feature     `yaml:"process" validate:"dive"`
	CTA           Feature       `yaml:"cta"`
	Featured      bool          `yaml:"featured"`
}

type TeamMember struct {
	Name        string `yaml:"name" validate:"required"`
	Position    string `yaml:"position"`
	Experience  string `yaml:"experience"`
	Description string `yaml:"description"`
}

type Milestone struct {
	Year        string `yaml:"year" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

type AboutContent struct {
	Hero       HeroContent  `yaml:"hero"`
	Statements []Feature    `yaml:"statements" validate:"dive"`
	Values     []Feature    `yaml:"values" validate:"dive"`
	Team       []TeamMember `yaml:"team" validate:"dive"`
	Milestones []Milestone  `yaml:"milestones" validate:"dive"`
}

type ContactMethod struct {
	Title     string `yaml:"title" validate:"required"`
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Action    string `yaml:"action"`
}

type Office struct {
	Name    string `yaml:"name" validate:"required"`
	Address string `yaml:"address"`
	City    string `yaml:"city"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Hours   string `yaml:"hours"`
}

type FAQ struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

type ContactPageContent struct {
	Hero         HeroContent     `yaml:"hero"`
	FormTitle    string          `yaml:"form_title"`
	FormSubtitle string          `yaml:"form_subtitle"`
	Methods      []ContactMethod `yaml:"methods" validate:"dive"`
	Offices      []Office        `yaml:"offices" validate:"dive"`
	FAQs         []FAQ           `yaml:"faqs" validate:"dive"`
}

type ServicesPageContent struct {
	Hero       HeroContent `yaml:"hero"`
	Title      string      `yaml:"title"`
	Subtitle   string      `yaml:"subtitle"`
	Industries []Feature   `yaml:"industries" validate:"dive"`
	Process    []Feature   `yaml:"process" validate:"dive"`
}

type SignInContent struct {
	Hero        HeroContent `yaml:"hero"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Unavailable string      `yaml:"unavailable_notice" validate:"required"`
	Benefits    []Feature   `yaml:"benefits" validate:"dive"`
}

// SiteContent is every piece of copy the site renders
type SiteContent struct {
	Company      CompanyInfo         `yaml:"company"`
	Navigation   []NavigationItem    `yaml:"navigation" validate:"min=1,dive"`
	FooterLinks  []NavigationItem    `yaml:"footer_links" validate:"dive"`
	Social       []SocialLink        `yaml:"social" validate:"dive"`
	Home         HeroContent         `yaml:"home"`
	Services     []Service           `yaml:"services" validate:"min=1,dive"`
	ServicesPage ServicesPageContent `yaml:"services_page"`
	About        AboutContent        `yaml:"about"`
	Contact      ContactPageContent  `yaml:"contact"`
	SignIn       SignInContent       `yaml:"signin"`
	ServiceTypes []string            `yaml:"service_types" validate:"min=1"`
}

// ServiceBySlug finds a service detail page
func (s *SiteContent) ServiceBySlug(slug string) (*Service, error) {
	for i := range s.Services {
		if s.Services[i].Slug == slug {
			return &s.Services[i], nil
		}
	}
	return nil, ErrServiceNotFound
}

// FeaturedServices are the catalogue cards shown on the home page
func (s *SiteContent) FeaturedServices() []Service {
	var out []Service
	for _, svc := range s.Services {
		if svc.Featured {
			out = append(out, svc)
		}
	}
	return out
}
