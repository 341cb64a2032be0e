package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

type CardVariant string

const (
	CardDefault  CardVariant = "default"
	CardElevated CardVariant = "elevated"
	CardOutlined CardVariant = "outlined"
	CardFilled   CardVariant = "filled"
)

type CardPadding string

const (
	CardPadNone CardPadding = "none"
	CardPadSM   CardPadding = "sm"
	CardPadMD   CardPadding = "md"
	CardPadLG   CardPadding = "lg"
	CardPadXL   CardPadding = "xl"
)

type CardRounded string

const (
	CardRoundNone CardRounded = "none"
	CardRoundSM   CardRounded = "sm"
	CardRoundMD   CardRounded = "md"
	CardRoundLG   CardRounded = "lg"
	CardRoundXL   CardRounded = "xl"
	CardRoundFull CardRounded = "full"
)

// CardProps configures Card. Zero values mean default variant, md padding, lg rounding.
type CardProps struct {
	Variant CardVariant
	Padding CardPadding
	Rounded CardRounded
	Hover   bool
	// Clickable renders a <button type="button"> instead of a <div>
	Clickable bool
	// Href is the click action: the card renders as a link to it
	Href  string
	Class string
	Attrs []g.Node
}

func cardVariantClass(v CardVariant) string {
	switch v {
	case "", CardDefault:
		return "bg-white border border-gray-200"
	case CardElevated:
		return "bg-white shadow-md hover:shadow-lg"
	case CardOutlined:
		return "bg-transparent border-2 border-gray-300"
	case CardFilled:
		return "bg-gray-50 border border-gray-200"
	default:
		panic(fmt.Sprintf("ui: unknown card variant %q", string(v)))
	}
}

func cardPaddingClass(p CardPadding) string {
	switch p {
	case CardPadNone:
		return ""
	case CardPadSM:
		return "p-3"
	case "", CardPadMD:
		return "p-4"
	case CardPadLG:
		return "p-6"
	case CardPadXL:
		return "p-8"
	default:
		panic(fmt.Sprintf("ui: unknown card padding %q", string(p)))
	}
}

func cardRoundedClass(r CardRounded) string {
	switch r {
	case CardRoundNone:
		return ""
	case CardRoundSM:
		return "rounded-sm"
	case CardRoundMD:
		return "rounded-md"
	case "", CardRoundLG:
		return "rounded-lg"
	case CardRoundXL:
		return "rounded-xl"
	case CardRoundFull:
		return "rounded-full"
	default:
		panic(fmt.Sprintf("ui: unknown card rounding %q", string(r)))
	}
}

// Card renders a content container
func (k Kit) Card(p CardProps, children ...g.Node) g.Node {
	classes := c.Classes{
		"transition-all duration-200 ease-in-out": true,
		cardVariantClass(p.Variant):               true,
		cardPaddingClass(p.Padding):               true,
		cardRoundedClass(p.Rounded):               true,
		p.Class:                                   true,
	}
	delete(classes, "")
	if p.Hover {
		classes["hover:shadow-lg hover:scale-[1.02] "+arb("hover:border", k.theme.Colors.Orange+"/30")] = true
	}

	if p.Clickable || p.Href != "" {
		classes["cursor-pointer text-left focus:outline-none focus:ring-2 focus:ring-offset-2 "+arb("focus:ring", k.theme.Colors.Orange+"/20")] = true
		if p.Href != "" {
			return A(Href(p.Href), classes, g.Group(p.Attrs), g.Group(children))
		}
		return Button(Type("button"), classes, g.Group(p.Attrs), g.Group(children))
	}
	return Div(classes, g.Group(p.Attrs), g.Group(children))
}

func withClass(base, extra string) g.Node {
	if extra == "" {
		return Class(base)
	}
	return Class(base + " " + extra)
}

func (k Kit) CardHeader(class string, children ...g.Node) g.Node {
	return Div(withClass("mb-4", class), g.Group(children))
}

func (k Kit) CardTitle(class string, children ...g.Node) g.Node {
	return H3(withClass("text-lg font-semibold mb-2 "+arb("text", k.theme.Colors.Navy), class), g.Group(children))
}

func (k Kit) CardDescription(class string, children ...g.Node) g.Node {
	return P(withClass("text-gray-600 text-sm", class), g.Group(children))
}

func (k Kit) CardContent(class string, children ...g.Node) g.Node {
	if class == "" {
		return Div(g.Group(children))
	}
	return Div(Class(class), g.Group(children))
}

func (k Kit) CardFooter(class string, children ...g.Node) g.Node {
	return Div(withClass("mt-4 pt-4 border-t border-gray-200", class), g.Group(children))
}
