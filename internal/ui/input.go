package ui

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

type InputVariant string

const (
	InputDefault  InputVariant = "default"
	InputFilled   InputVariant = "filled"
	InputOutlined InputVariant = "outlined"
)

type InputSize string

const (
	InputSmall  InputSize = "sm"
	InputMedium InputSize = "md"
	InputLarge  InputSize = "lg"
)

// FieldProps configures Input, TextArea and Select
type FieldProps struct {
	ID          string
	Name        string
	Type        string
	Label       string
	Value       string
	Placeholder string
	// Error replaces HelperText and switches the control to its error style
	Error        string
	HelperText   string
	Required     bool
	Disabled     bool
	AutoComplete string
	Variant      InputVariant
	Size         InputSize
	Class        string
	Attrs        []g.Node
}

const fieldBase = "w-full rounded-lg border transition-all duration-200 focus:outline-none focus:ring-2 focus:ring-offset-1 disabled:opacity-50 disabled:cursor-not-allowed placeholder:text-gray-400"

const fieldErrorClass = "border-red-500 focus:border-red-500 focus:ring-red-500/20"

func (k Kit) inputVariantClass(v InputVariant) string {
	col := k.theme.Colors
	focus := arb("focus:border", col.Orange) + " " + arb("focus:ring", col.Orange+"/20")
	switch v {
	case "", InputDefault:
		return "border-gray-300 bg-white " + arb("text", col.Navy) + " " + focus + " hover:border-gray-400"
	case InputFilled:
		return "border-transparent bg-gray-100 " + arb("text", col.Navy) + " focus:bg-white " + focus + " hover:bg-gray-50"
	case InputOutlined:
		return "border-2 border-gray-300 bg-transparent " + arb("text", col.Navy) + " " + focus + " hover:border-gray-400"
	default:
		panic(fmt.Sprintf("ui: unknown input variant %q", string(v)))
	}
}

func inputSizeClass(s InputSize) string {
	switch s {
	case InputSmall:
		return "px-3 py-1.5 text-sm h-8"
	case "", InputMedium:
		return "px-4 py-2 text-base h-10"
	case InputLarge:
		return "px-5 py-3 text-lg h-12"
	default:
		panic(fmt.Sprintf("ui: unknown input size %q", string(s)))
	}
}

// fieldID prefers the explicit ID, then one derived from the name
func fieldID(p FieldProps) string {
	if p.ID != "" {
		return p.ID
	}
	return "input-" + p.Name
}

func (k Kit) fieldClasses(p FieldProps, sized bool) c.Classes {
	classes := c.Classes{fieldBase: true}
	classes[k.inputVariantClass(p.Variant)] = true
	if sized {
		classes[inputSizeClass(p.Size)] = true
	} else {
		classes["px-4 py-2 text-base resize-y"] = true
	}
	if p.Error != "" {
		classes[fieldErrorClass] = true
	}
	if p.Class != "" {
		classes[p.Class] = true
	}
	return classes
}

// fieldAttrs are shared by every control kind
func fieldAttrs(p FieldProps) g.Node {
	id := fieldID(p)
	return g.Group([]g.Node{
		ID(id),
		g.If(p.Name != "", Name(p.Name)),
		g.If(p.Placeholder != "", Placeholder(p.Placeholder)),
		g.If(p.Required, Required()),
		g.If(p.Disabled, Disabled()),
		g.If(p.AutoComplete != "", AutoComplete(p.AutoComplete)),
		g.If(p.Error != "", Aria("invalid", "true")),
		g.If(p.Error != "" || p.HelperText != "", Aria("describedby", id+"-hint")),
		g.Group(p.Attrs),
	})
}

// fieldWrap adds the label above and the error or helper text below a control
func (k Kit) fieldWrap(p FieldProps, control g.Node) g.Node {
	id := fieldID(p)
	return Div(
		Class("w-full"),
		g.If(p.Label != "",
			Label(
				For(id),
				Class("block text-sm font-medium mb-1 "+arb("text", k.theme.Colors.Navy)),
				g.Text(p.Label),
				g.If(p.Required, Span(Class("text-red-500 ml-1"), g.Text("*"))),
			),
		),
		Div(Class("relative"), control),
		g.If(p.Error != "",
			P(ID(id+"-hint"), Class("mt-1 text-xs text-red-500"), g.Text(p.Error)),
		),
		g.If(p.Error == "" && p.HelperText != "",
			P(ID(id+"-hint"), Class("mt-1 text-xs text-gray-500"), g.Text(p.HelperText)),
		),
	)
}

// Input renders a labelled <input>
func (k Kit) Input(p FieldProps) g.Node {
	typ := p.Type
	if typ == "" {
		typ = "text"
	}
	return k.fieldWrap(p, Input(
		Type(typ),
		k.fieldClasses(p, true),
		g.If(p.Value != "", Value(p.Value)),
		fieldAttrs(p),
	))
}

// TextArea renders a labelled <textarea>
func (k Kit) TextArea(p FieldProps, rows int) g.Node {
	if rows <= 0 {
		rows = 5
	}
	return k.fieldWrap(p, Textarea(
		Rows(strconv.Itoa(rows)),
		k.fieldClasses(p, false),
		fieldAttrs(p),
		g.Text(p.Value),
	))
}

// Select renders a labelled <select>. prompt, when set, is an empty first option.
func (k Kit) Select(p FieldProps, prompt string, options []string) g.Node {
	return k.fieldWrap(p, Select(
		k.fieldClasses(p, true),
		fieldAttrs(p),
		g.If(prompt != "", Option(Value(""), g.If(p.Value == "", Selected()), g.Text(prompt))),
		g.Group(g.Map(options, func(opt string) g.Node {
			return Option(Value(opt), g.If(opt == p.Value, Selected()), g.Text(opt))
		})),
	))
}
