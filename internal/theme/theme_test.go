package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheme(t *testing.T) {
	t.Run("Should expose the brand palette", func(t *testing.T) {
		th := Default()
		assert.Equal(t, "#003666", th.Colors.Navy)
		assert.Equal(t, "#F2601A", th.Colors.Orange)
		assert.Equal(t, "#D4501A", th.Colors.DarkOrange)
		assert.Equal(t, "Roo Petroleum", th.Brand.Name)
	})

	t.Run("Should keep copies independent", func(t *testing.T) {
		a := Default()
		b := a
		b.Colors.Orange = "#000000"

		assert.Equal(t, "#F2601A", a.Colors.Orange)
		assert.Equal(t, "#F2601A", Default().Colors.Orange)
	})

	t.Run("Should render custom properties", func(t *testing.T) {
		css := Default().CSS()
		assert.Contains(t, css, ":root {")
		assert.Contains(t, css, "--color-navy: #003666;")
		assert.Contains(t, css, "--space-md: 1rem;")
		assert.Contains(t, css, "--radius-full: 9999px;")
	})
}
