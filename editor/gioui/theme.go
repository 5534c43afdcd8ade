package gioui

import (
	"fmt"
	"image/color"

	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

type (
	Theme struct {
		Material material.Theme
		Button   struct {
			Filled   ButtonStyle
			Text     ButtonStyle
			Disabled ButtonStyle
		}
		IconButton struct {
			Enabled  IconButtonStyle
			Disabled IconButtonStyle
			Error    IconButtonStyle
		}
		NumericUpDown NumericUpDownStyle
		Popup         struct {
			Menu   PopupStyle
			Dialog PopupStyle
		}
		Menu    MenuStyle
		Dialog  DialogStyle
		Tooltip struct {
			Bg    color.NRGBA
			Color color.NRGBA
		}
		Alert struct {
			Info    AlertStyle
			Warning AlertStyle
			Error   AlertStyle
			Margin  layout.Inset
			Inset   layout.Inset
		}
		Panel struct {
			Bg         color.NRGBA
			RowHeader  LabelStyle
			RowValue   LabelStyle
			Expander   LabelStyle
			Version    LabelStyle
			ErrorColor color.NRGBA
		}
		Wave struct {
			Bg         color.NRGBA
			SelectedBg color.NRGBA
			Fill       color.NRGBA
			Stem       color.NRGBA
			Sample     color.NRGBA
			Center     color.NRGBA
			ClipEdge   color.NRGBA
			PlayCursor color.NRGBA
			Border     color.NRGBA
			Title      LabelStyle
			Status     LabelStyle
			Name       EditorStyle
		}
		VuMeter struct {
			RangeDB float32
			Bar     color.NRGBA
			Peak    color.NRGBA
			Clip    color.NRGBA
		}
		Plot PlotStyle

		iconCache map[*byte]*widget.Icon
	}
)

var fontCollection []font.FontFace = gofont.Collection()

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var secondaryColor = color.NRGBA{R: 128, G: 222, B: 234, A: 255}

var highEmphasisTextColor = color.NRGBA{R: 222, G: 222, B: 222, A: 222}
var mediumEmphasisTextColor = color.NRGBA{R: 153, G: 153, B: 153, A: 153}
var disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}

var backgroundColor = color.NRGBA{R: 18, G: 18, B: 18, A: 255}
var numberInputBgColor = color.NRGBA{R: 255, G: 255, B: 255, A: 8}
var popupSurfaceColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}
var popupShadowColor = color.NRGBA{R: 0, G: 0, B: 0, A: 192}
var menuHoverColor = color.NRGBA{R: 30, G: 31, B: 38, A: 255}
var errorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}
var warningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}
var dialogBgColor = color.NRGBA{R: 0, G: 0, B: 0, A: 224}
var nameHintColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

var labelDefaultFont = fontCollection[6].Font

// themeOverrides are the few palette entries a user can override from
// piirto/theme.yml in their config directory, as "#rrggbb" strings.
type themeOverrides struct {
	Primary    hexColor `yaml:",omitempty"`
	Secondary  hexColor `yaml:",omitempty"`
	Background hexColor `yaml:",omitempty"`
}

type hexColor color.NRGBA

func (h *hexColor) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return fmt.Errorf("invalid color %q: %w", s, err)
	}
	*h = hexColor(color.NRGBA{R: r, G: g, B: b, A: 255})
	return nil
}

// NewTheme builds the default theme, with the user overrides from theme.yml
// applied if the file exists. The error is only a warning: the returned theme
// is usable even when err is non-nil.
func NewTheme() (*Theme, error) {
	primary, secondary, bg := primaryColor, secondaryColor, backgroundColor
	var overrides themeOverrides
	exists, err := ReadCustomConfigYml("theme.yml", &overrides)
	if exists && err == nil {
		if overrides.Primary != (hexColor{}) {
			primary = color.NRGBA(overrides.Primary)
		}
		if overrides.Secondary != (hexColor{}) {
			secondary = color.NRGBA(overrides.Secondary)
		}
		if overrides.Background != (hexColor{}) {
			bg = color.NRGBA(overrides.Background)
		}
	}
	if !exists {
		err = nil
	}

	th := &Theme{iconCache: map[*byte]*widget.Icon{}}
	th.Material = *material.NewTheme()
	th.Material.Palette = material.Palette{
		Bg:         bg,
		Fg:         highEmphasisTextColor,
		ContrastBg: primary,
		ContrastFg: black,
	}

	th.Button.Filled = ButtonStyle{Color: black, Bg: primary, TextSize: unit.Sp(14), CornerRadius: unit.Dp(18), Height: unit.Dp(36), Inset: layout.UniformInset(unit.Dp(6))}
	th.Button.Text = ButtonStyle{Color: primary, Bg: transparent, TextSize: unit.Sp(14), CornerRadius: unit.Dp(18), Height: unit.Dp(36), Inset: layout.UniformInset(unit.Dp(6))}
	th.Button.Disabled = ButtonStyle{Color: disabledTextColor, Bg: transparent, TextSize: unit.Sp(14), CornerRadius: unit.Dp(18), Height: unit.Dp(36), Inset: layout.UniformInset(unit.Dp(6))}
	th.IconButton.Enabled = IconButtonStyle{Color: primary, Size: unit.Dp(24), Inset: layout.UniformInset(unit.Dp(6))}
	th.IconButton.Disabled = IconButtonStyle{Color: disabledTextColor, Size: unit.Dp(24), Inset: layout.UniformInset(unit.Dp(6))}
	th.IconButton.Error = IconButtonStyle{Color: errorColor, Size: unit.Dp(24), Inset: layout.UniformInset(unit.Dp(6))}

	th.NumericUpDown = NumericUpDownStyle{
		TextColor:         white,
		DisabledTextColor: disabledTextColor,
		IconColor:         highEmphasisTextColor,
		BgColor:           numberInputBgColor,
		CornerRadius:      unit.Dp(4),
		ButtonWidth:       unit.Dp(16),
		UnitsPerStep:      unit.Dp(8),
		TextSize:          unit.Sp(14),
		Width:             unit.Dp(70),
		Height:            unit.Dp(20),
	}

	th.Popup.Menu = PopupStyle{
		SurfaceColor: popupSurfaceColor, ShadowColor: popupShadowColor,
		ShadowE: unit.Dp(2), ShadowS: unit.Dp(2), ShadowW: unit.Dp(2),
		SE: unit.Dp(6), SW: unit.Dp(6),
	}
	th.Popup.Dialog = PopupStyle{
		SurfaceColor: popupSurfaceColor, ShadowColor: popupShadowColor,
		ShadowN: unit.Dp(2), ShadowE: unit.Dp(2), ShadowS: unit.Dp(2), ShadowW: unit.Dp(2),
		SE: unit.Dp(6), SW: unit.Dp(6), NW: unit.Dp(6), NE: unit.Dp(6),
	}

	th.Menu = MenuStyle{
		Text:     LabelStyle{Color: white, TextSize: unit.Sp(16), Font: labelDefaultFont},
		Shortcut: mediumEmphasisTextColor,
		Hover:    menuHoverColor,
		Disabled: mediumEmphasisTextColor,
		IconSize: unit.Dp(16),
	}

	th.Dialog = DialogStyle{
		Bg:    dialogBgColor,
		Title: LabelStyle{Color: highEmphasisTextColor, TextSize: unit.Sp(18), Font: labelDefaultFont, ShadeColor: black},
		Text:  LabelStyle{Color: highEmphasisTextColor, TextSize: unit.Sp(14), Font: labelDefaultFont},
	}

	th.Tooltip.Bg = black
	th.Tooltip.Color = white

	th.Alert.Info = AlertStyle{Bg: color.NRGBA{R: 50, G: 50, B: 51, A: 255}, Text: LabelStyle{Color: white, TextSize: unit.Sp(16), Font: labelDefaultFont, Alignment: text.Middle}}
	th.Alert.Warning = AlertStyle{Bg: warningColor, Text: LabelStyle{Color: black, TextSize: unit.Sp(16), Font: labelDefaultFont, Alignment: text.Middle}}
	th.Alert.Error = AlertStyle{Bg: errorColor, Text: LabelStyle{Color: black, TextSize: unit.Sp(16), Font: labelDefaultFont, Alignment: text.Middle}}
	th.Alert.Margin = layout.UniformInset(unit.Dp(6))
	th.Alert.Inset = layout.UniformInset(unit.Dp(6))

	th.Panel.Bg = color.NRGBA{R: 24, G: 24, B: 26, A: 255}
	th.Panel.RowHeader = LabelStyle{Color: mediumEmphasisTextColor, TextSize: unit.Sp(14), Font: labelDefaultFont}
	th.Panel.RowValue = LabelStyle{Color: highEmphasisTextColor, TextSize: unit.Sp(14), Font: labelDefaultFont}
	th.Panel.Expander = LabelStyle{Color: secondary, TextSize: unit.Sp(14), Font: labelDefaultFont}
	th.Panel.Version = LabelStyle{Color: mediumEmphasisTextColor, TextSize: unit.Sp(12), Font: labelDefaultFont}
	th.Panel.ErrorColor = errorColor

	th.Wave.Bg = backgroundColor
	th.Wave.SelectedBg = color.NRGBA{R: 26, G: 26, B: 30, A: 255}
	th.Wave.Fill = color.NRGBA{R: primary.R, G: primary.G, B: primary.B, A: 160}
	th.Wave.Stem = color.NRGBA{R: primary.R, G: primary.G, B: primary.B, A: 96}
	th.Wave.Sample = primary
	th.Wave.Center = color.NRGBA{R: 255, G: 255, B: 255, A: 24}
	th.Wave.ClipEdge = color.NRGBA{R: secondary.R, G: secondary.G, B: secondary.B, A: 96}
	th.Wave.PlayCursor = color.NRGBA{R: 252, G: 186, B: 3, A: 255}
	th.Wave.Border = color.NRGBA{R: 255, G: 255, B: 255, A: 16}
	th.Wave.Title = LabelStyle{Color: secondary, TextSize: unit.Sp(14), Font: labelDefaultFont, ShadeColor: black}
	th.Wave.Status = LabelStyle{Color: mediumEmphasisTextColor, TextSize: unit.Sp(12), Font: labelDefaultFont, ShadeColor: black}
	th.Wave.Name = EditorStyle{Color: secondary, HintColor: nameHintColor, TextSize: unit.Sp(14), Font: labelDefaultFont}

	th.VuMeter.RangeDB = 80
	th.VuMeter.Bar = mediumEmphasisTextColor
	th.VuMeter.Peak = white
	th.VuMeter.Clip = errorColor

	th.Plot = PlotStyle{
		CurveColors: [2]color.NRGBA{primary, secondary},
		LimitColor:  color.NRGBA{R: 255, G: 255, B: 255, A: 8},
		CursorColor: color.NRGBA{R: 252, G: 186, B: 3, A: 192},
		Ticks:       LabelStyle{Color: mediumEmphasisTextColor, TextSize: unit.Sp(12), Font: labelDefaultFont},
		DpPerTick:   unit.Dp(40),
	}

	return th, err
}

// Icon returns a widget for the given material design icon data, caching the
// parsed icons between calls.
func (th *Theme) Icon(data []byte) *widget.Icon {
	if icon, ok := th.iconCache[&data[0]]; ok {
		return icon
	}
	icon, err := widget.NewIcon(data)
	if err != nil {
		panic(fmt.Errorf("parsing icon failed: %w", err))
	}
	th.iconCache[&data[0]] = icon
	return icon
}
