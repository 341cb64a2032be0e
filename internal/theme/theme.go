// Package theme holds the brand design tokens. A Theme is a plain value: copies are
// independent, so a Theme handed to the UI kit cannot be changed behind its back.
package theme

import (
	"fmt"
	"strings"
)

type Colors struct {
	Navy        string
	Orange      string
	White       string
	LightBlue   string
	DarkNavy    string
	LightOrange string
	DarkOrange  string

	Gray100 string
	Gray200 string
	Gray300 string
	Gray400 string
	Gray500 string
	Gray600 string
	Gray700 string
	Gray800 string
	Gray900 string
	Black   string

	Success string
	Warning string
	Error   string
	Info    string
}

type Spacing struct {
	XS, SM, MD, LG, XL, XL2, XL3, XL4, XL5 string
}

type Typography struct {
	FontSans string
	FontMono string

	SizeXS, SizeSM, SizeBase, SizeLG, SizeXL, Size2XL, Size3XL, Size4XL, Size5XL, Size6XL string

	LineTight, LineNormal, LineRelaxed string
}

type Radius struct {
	None, SM, Base, MD, LG, XL, XL2, XL3, Full string
}

type Shadows struct {
	SM, Base, MD, LG, XL string
}

type Transitions struct {
	Fast, Normal, Slow string
}

type Layout struct {
	MaxWidth     string
	HeaderHeight string
}

type Brand struct {
	Name        string
	Tagline     string
	Description string
}

// Theme is the full token set
type Theme struct {
	Brand       Brand
	Colors      Colors
	Spacing     Spacing
	Typography  Typography
	Radius      Radius
	Shadows     Shadows
	Transitions Transitions
	Layout      Layout
}

// Default returns the Roo Petroleum brand tokens
func Default() Theme {
	return Theme{
		Brand: Brand{
			Name:        "Roo Petroleum",
			Tagline:     "Fueling Your Journey with Reliability and Care",
			Description: "Your trusted partner for quality petroleum products and exceptional service.",
		},
		Colors: Colors{
			Navy:        "#003666",
			Orange:      "#F2601A",
			White:       "#FFFFFF",
			LightBlue:   "#4A90E2",
			DarkNavy:    "#002244",
			LightOrange: "#FF7A3D",
			DarkOrange:  "#D4501A",
			Gray100:     "#F8F9FA",
			Gray200:     "#E9ECEF",
			Gray300:     "#DEE2E6",
			Gray400:     "#CED4DA",
			Gray500:     "#ADB5BD",
			Gray600:     "#6C757D",
			Gray700:     "#495057",
			Gray800:     "#343A40",
			Gray900:     "#212529",
			Black:       "#000000",
			Success:     "#28A745",
			Warning:     "#FFC107",
			Error:       "#DC3545",
			Info:        "#17A2B8",
		},
		Spacing: Spacing{
			XS: "0.25rem", SM: "0.5rem", MD: "1rem", LG: "1.5rem", XL: "2rem",
			XL2: "3rem", XL3: "4rem", XL4: "6rem", XL5: "8rem",
		},
		Typography: Typography{
			FontSans: `ui-sans-serif, system-ui, -apple-system, "Segoe UI", Roboto, sans-serif`,
			FontMono: `ui-monospace, SFMono-Regular, Menlo, monospace`,
			SizeXS:   "0.75rem", SizeSM: "0.875rem", SizeBase: "1rem", SizeLG: "1.125rem",
			SizeXL: "1.25rem", Size2XL: "1.5rem", Size3XL: "1.875rem", Size4XL: "2.25rem",
			Size5XL: "3rem", Size6XL: "3.75rem",
			LineTight: "1.25", LineNormal: "1.5", LineRelaxed: "1.75",
		},
		Radius: Radius{
			None: "0", SM: "0.125rem", Base: "0.25rem", MD: "0.375rem", LG: "0.5rem",
			XL: "0.75rem", XL2: "1rem", XL3: "1.5rem", Full: "9999px",
		},
		Shadows: Shadows{
			SM:   "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			Base: "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
			MD:   "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
			LG:   "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
			XL:   "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
		},
		Transitions: Transitions{
			Fast: "150ms ease-in-out", Normal: "300ms ease-in-out", Slow: "500ms ease-in-out",
		},
		Layout: Layout{
			MaxWidth:     "1200px",
			HeaderHeight: "80px",
		},
	}
}

// CSS renders the tokens as custom properties on :root
func (t Theme) CSS() string {
	vars := [][2]string{
		{"color-navy", t.Colors.Navy},
		{"color-orange", t.Colors.Orange},
		{"color-white", t.Colors.White},
		{"color-light-blue", t.Colors.LightBlue},
		{"color-dark-navy", t.Colors.DarkNavy},
		{"color-light-orange", t.Colors.LightOrange},
		{"color-dark-orange", t.Colors.DarkOrange},
		{"color-gray-100", t.Colors.Gray100},
		{"color-gray-200", t.Colors.Gray200},
		{"color-gray-300", t.Colors.Gray300},
		{"color-gray-400", t.Colors.Gray400},
		{"color-gray-500", t.Colors.Gray500},
		{"color-gray-600", t.Colors.Gray600},
		{"color-gray-700", t.Colors.Gray700},
		{"color-gray-800", t.Colors.Gray800},
		{"color-gray-900", t.Colors.Gray900},
		{"color-black", t.Colors.Black},
		{"color-success", t.Colors.Success},
		{"color-warning", t.Colors.Warning},
		{"color-error", t.Colors.Error},
		{"color-info", t.Colors.Info},
		{"space-xs", t.Spacing.XS},
		{"space-sm", t.Spacing.SM},
		{"space-md", t.Spacing.MD},
		{"space-lg", t.Spacing.LG},
		{"space-xl", t.Spacing.XL},
		{"space-2xl", t.Spacing.XL2},
		{"space-3xl", t.Spacing.XL3},
		{"space-4xl", t.Spacing.XL4},
		{"space-5xl", t.Spacing.XL5},
		{"font-sans", t.Typography.FontSans},
		{"font-mono", t.Typography.FontMono},
		{"text-xs", t.Typography.SizeXS},
		{"text-sm", t.Typography.SizeSM},
		{"text-base", t.Typography.SizeBase},
		{"text-lg", t.Typography.SizeLG},
		{"text-xl", t.Typography.SizeXL},
		{"text-2xl", t.Typography.Size2XL},
		{"text-3xl", t.Typography.Size3XL},
		{"text-4xl", t.Typography.Size4XL},
		{"text-5xl", t.Typography.Size5XL},
		{"text-6xl", t.Typography.Size6XL},
		{"leading-tight", t.Typography.LineTight},
		{"leading-normal", t.Typography.LineNormal},
		{"leading-relaxed", t.Typography.LineRelaxed},
		{"radius-none", t.Radius.None},
		{"radius-sm", t.Radius.SM},
		{"radius-base", t.Radius.Base},
		{"radius-md", t.Radius.MD},
		{"radius-lg", t.Radius.LG},
		{"radius-xl", t.Radius.XL},
		{"radius-2xl", t.Radius.XL2},
		{"radius-3xl", t.Radius.XL3},
		{"radius-full", t.Radius.Full},
		{"shadow-sm", t.Shadows.SM},
		{"shadow-base", t.Shadows.Base},
		{"shadow-md", t.Shadows.MD},
		{"shadow-lg", t.Shadows.LG},
		{"shadow-xl", t.Shadows.XL},
		{"transition-fast", t.Transitions.Fast},
		{"transition-normal", t.Transitions.Normal},
		{"transition-slow", t.Transitions.Slow},
		{"layout-max-width", t.Layout.MaxWidth},
		{"layout-header-height", t.Layout.HeaderHeight},
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range vars {
		fmt.Fprintf(&b, "  --%s: %s;\n", v[0], v[1])
	}
	b.WriteString("}\n")
	fmt.Fprintf(&b, "body { font-family: var(--font-sans); color: var(--color-gray-900); }\n")
	return b.String()
}
