package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortvis/internal/sorting"
)

type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) Color() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Theme defines the palette shared by the terminal and window front ends.
type Theme struct {
	Name       string
	Background RGB
	Title      RGB
	Text       RGB
	Shades     [3]RGB
	Roles      map[sorting.Role]RGB
}

// BarColor resolves the color of b: its role color when marked, otherwise
// its default shade.
func (t Theme) BarColor(b Bar) RGB {
	if b.Marked {
		if c, ok := t.Roles[b.Role]; ok {
			return c
		}
	}
	return t.Shades[b.Shade%len(t.Shades)]
}

var (
	black  = RGB{0, 0, 0}
	white  = RGB{255, 255, 255}
	green  = RGB{0, 255, 0}
	red    = RGB{255, 0, 0}
	yellow = RGB{255, 255, 0}
	pink   = RGB{255, 192, 203}
)

var (
	ThemeClassic = Theme{
		Name:       "classic",
		Background: white,
		Title:      green,
		Text:       black,
		Shades:     [3]RGB{{128, 128, 128}, {160, 160, 160}, {192, 192, 192}},
		Roles: map[sorting.Role]RGB{
			sorting.RolePrimary:     green,
			sorting.RoleSecondary:   red,
			sorting.RolePivotLow:    pink,
			sorting.RolePivotHigh:   red,
			sorting.RoleScan:        yellow,
			sorting.RoleMergeCursor: red,
		},
	}

	ThemeMidnight = Theme{
		Name:       "midnight",
		Background: RGB{10, 10, 20},
		Title:      RGB{0, 255, 255},
		Text:       RGB{200, 200, 220},
		Shades:     [3]RGB{{60, 60, 90}, {80, 80, 120}, {100, 100, 150}},
		Roles: map[sorting.Role]RGB{
			sorting.RolePrimary:     RGB{255, 0, 255},
			sorting.RoleSecondary:   RGB{0, 255, 255},
			sorting.RolePivotLow:    RGB{255, 136, 0},
			sorting.RolePivotHigh:   RGB{255, 136, 0},
			sorting.RoleScan:        RGB{255, 255, 0},
			sorting.RoleMergeCursor: RGB{0, 255, 136},
		},
	}

	ThemeRetro = Theme{
		Name:       "retro",
		Background: RGB{0, 17, 0},
		Title:      RGB{136, 255, 136},
		Text:       RGB{0, 204, 0},
		Shades:     [3]RGB{{0, 85, 0}, {0, 119, 0}, {0, 153, 0}},
		Roles: map[sorting.Role]RGB{
			sorting.RolePrimary:     RGB{136, 255, 136},
			sorting.RoleSecondary:   RGB{255, 255, 0},
			sorting.RolePivotLow:    RGB{0, 255, 0},
			sorting.RolePivotHigh:   RGB{0, 255, 0},
			sorting.RoleScan:        RGB{204, 255, 204},
			sorting.RoleMergeCursor: RGB{255, 255, 0},
		},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: RGB{0, 26, 51},
		Title:      RGB{255, 215, 0},
		Text:       RGB{224, 240, 255},
		Shades:     [3]RGB{{0, 68, 119}, {0, 119, 190}, {0, 168, 204}},
		Roles: map[sorting.Role]RGB{
			sorting.RolePrimary:     RGB{0, 255, 136},
			sorting.RoleSecondary:   RGB{255, 68, 68},
			sorting.RolePivotLow:    RGB{255, 204, 0},
			sorting.RolePivotHigh:   RGB{255, 204, 0},
			sorting.RoleScan:        RGB{255, 215, 0},
			sorting.RoleMergeCursor: RGB{255, 68, 68},
		},
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: RGB{45, 27, 46},
		Title:      RGB{254, 202, 87},
		Text:       RGB{255, 245, 245},
		Shades:     [3]RGB{{139, 107, 140}, {170, 120, 150}, {200, 140, 160}},
		Roles: map[sorting.Role]RGB{
			sorting.RolePrimary:     RGB{95, 208, 104},
			sorting.RoleSecondary:   RGB{255, 71, 87},
			sorting.RolePivotLow:    RGB{255, 159, 243},
			sorting.RolePivotHigh:   RGB{255, 159, 243},
			sorting.RoleScan:        RGB{255, 192, 72},
			sorting.RoleMergeCursor: RGB{255, 71, 87},
		},
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeMidnight,
		ThemeRetro,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
