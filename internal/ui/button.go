package ui

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonGhost     ButtonVariant = "ghost"
)

type ButtonSize string

const (
	ButtonSmall  ButtonSize = "sm"
	ButtonMedium ButtonSize = "md"
	ButtonLarge  ButtonSize = "lg"
)

// ButtonProps configures Button. Zero values mean primary, md, type="button".
type ButtonProps struct {
	Variant  ButtonVariant
	Size     ButtonSize
	Type     string
	Disabled bool
	// Loading disables the button and overlays a spinner; the label stays in
	// place, transparent, so the button keeps its size.
	Loading bool
	Class   string
	Attrs   []g.Node
}

const buttonBase = "inline-flex items-center justify-center font-medium rounded-lg transition-all duration-300 ease-in-out focus:outline-none focus:ring-2 focus:ring-offset-2 disabled:opacity-50 disabled:cursor-not-allowed relative overflow-hidden"

func (k Kit) buttonVariantClass(v ButtonVariant) string {
	col := k.theme.Colors
	switch v {
	case "", ButtonPrimary:
		return strings.Join([]string{arb("bg", col.Orange), "text-white", arb("hover:bg", col.DarkOrange), arb("focus:ring", col.Orange), "shadow-md hover:shadow-lg"}, " ")
	case ButtonSecondary:
		return strings.Join([]string{arb("bg", col.Navy), "text-white", arb("hover:bg", col.DarkNavy), arb("focus:ring", col.Navy), "shadow-md hover:shadow-lg"}, " ")
	case ButtonOutline:
		return strings.Join([]string{"border-2", arb("border", col.Orange), arb("text", col.Orange), arb("hover:bg", col.Orange), "hover:text-white", arb("focus:ring", col.Orange), "bg-transparent"}, " ")
	case ButtonGhost:
		return strings.Join([]string{arb("text", col.Navy), "bg-transparent", arb("hover:bg", col.Gray100), arb("focus:ring", col.Gray300)}, " ")
	default:
		panic(fmt.Sprintf("ui: unknown button variant %q", string(v)))
	}
}

func buttonSizeClass(s ButtonSize) string {
	switch s {
	case ButtonSmall:
		return "px-3 py-1.5 text-sm h-8"
	case "", ButtonMedium:
		return "px-4 py-2 text-base h-10"
	case ButtonLarge:
		return "px-6 py-3 text-lg h-12"
	default:
		panic(fmt.Sprintf("ui: unknown button size %q", string(s)))
	}
}

func (k Kit) buttonClasses(p ButtonProps) c.Classes {
	classes := c.Classes{buttonBase: true}
	classes[k.buttonVariantClass(p.Variant)] = true
	classes[buttonSizeClass(p.Size)] = true
	if p.Class != "" {
		classes[p.Class] = true
	}
	return classes
}

// Button renders a <button>
func (k Kit) Button(p ButtonProps, children ...g.Node) g.Node {
	typ := p.Type
	if typ == "" {
		typ = "button"
	}

	return Button(
		Type(typ),
		k.buttonClasses(p),
		g.If(p.Disabled || p.Loading, Disabled()),
		g.If(p.Loading, Aria("busy", "true")),
		g.Group(p.Attrs),
		g.If(p.Loading, Spinner()),
		Span(
			g.If(p.Loading, Class("opacity-0")),
			g.If(!p.Loading, Class("opacity-100")),
			g.Group(children),
		),
	)
}

// LinkButton renders an anchor with button styling, for navigation CTAs
func (k Kit) LinkButton(p ButtonProps, href string, children ...g.Node) g.Node {
	return A(
		Href(href),
		k.buttonClasses(p),
		g.Group(p.Attrs),
		g.Group(children),
	)
}

// Spinner is the loading indicator laid over a busy button
func Spinner() g.Node {
	return Div(
		Class("absolute inset-0 flex items-center justify-center"),
		Aria("hidden", "true"),
		Div(Class("w-4 h-4 border-2 border-current border-t-transparent rounded-full animate-spin")),
	)
}
