package chart

import (
	"fmt"
	"image/color"

	"gioui.org/font"
	"gioui.org/unit"

	"git.sr.ht/~whereswaldon/ratecurve/geometry"
	"git.sr.ht/~whereswaldon/ratecurve/tooltip"
)

// Config describes how a Widget looks. Every field is optional; zero values
// and nil pointers select the default.
type Config struct {
	// ChartPosition is the margin in pixels between the container's edges
	// and the plotting area.
	ChartPosition *geometry.Rect
	// CurvePadding grows the curve's bounding box, in data units.
	CurvePadding *geometry.Rect

	CurveWidth float32
	CurveColor color.NRGBA

	// PointRadius and PointColor style the reference marker.
	PointRadius float32
	PointColor  color.NRGBA
	// CursorRadius and CursorColor style the hover marker.
	CursorRadius float32
	CursorColor  color.NRGBA

	// VerticalAxisCount and HorizontalAxisCount are the number of
	// gridlines, including the two border lines. Both must be at least 2.
	VerticalAxisCount   int
	HorizontalAxisCount int
	AxisColor           color.NRGBA

	XLabelFormatter LabelFormatter
	YLabelFormatter LabelFormatter
	// XLabelOffset is relative to the bottom end of each vertical
	// gridline, YLabelOffset to the left end of each horizontal one.
	XLabelOffset  *geometry.Point
	YLabelOffset  *geometry.Point
	LabelFontSize unit.Sp
	LabelColor    color.NRGBA

	XLegendText string
	YLegendText string
	// XLegendOffset is relative to the middle of the bottom edge of the
	// plotting area, YLegendOffset to the middle of its left edge.
	XLegendOffset  *geometry.Point
	YLegendOffset  *geometry.Point
	LegendFontSize unit.Sp
	LegendColor    color.NRGBA

	// TooltipFormatter renders the tooltip text of a point. It defaults to
	// the axis label formatters.
	TooltipFormatter  tooltip.Formatter
	TooltipXLabel     string
	TooltipYLabel     string
	TooltipLabelColor color.NRGBA
	TooltipValueColor color.NRGBA
	TooltipBackground color.NRGBA
	TooltipFontSize   unit.Sp

	FontFamily string

	// DisableRotatedLegend hides the vertical legend on hosts that cannot
	// draw rotated text reliably.
	DisableRotatedLegend bool
}

// Settings is a Config with every default applied. It is computed once when
// a widget is created.
type Settings struct {
	ChartPosition geometry.Rect
	CurvePadding  geometry.Rect

	CurveWidth float32
	CurveColor color.NRGBA

	PointRadius  float32
	PointColor   color.NRGBA
	CursorRadius float32
	CursorColor  color.NRGBA

	VerticalAxisCount   int
	HorizontalAxisCount int
	AxisColor           color.NRGBA

	XLabelFormatter LabelFormatter
	YLabelFormatter LabelFormatter
	XLabelOffset    geometry.Point
	YLabelOffset    geometry.Point
	LabelFontSize   unit.Sp
	LabelColor      color.NRGBA

	XLegendText    string
	YLegendText    string
	XLegendOffset  geometry.Point
	YLegendOffset  geometry.Point
	LegendFontSize unit.Sp
	LegendColor    color.NRGBA

	TooltipFormatter tooltip.Formatter
	Tooltip          tooltip.Style

	Font font.Font

	DisableRotatedLegend bool
}

// Defaults.
var (
	DefaultChartPosition = geometry.Rect{Left: 60, Right: 20, Top: 20, Bottom: 50}
	DefaultXLabelOffset  = geometry.Point{Y: 8}
	DefaultYLabelOffset  = geometry.Point{X: -8}
	DefaultXLegendOffset = geometry.Point{Y: 30}
	DefaultYLegendOffset = geometry.Point{X: -48}
)

const (
	defaultAxisCount      = 5
	defaultCurveWidth     = 2
	defaultPointRadius    = 5
	defaultCursorRadius   = 4
	defaultLabelFontSize  = 12
	defaultLegendFontSize = 13
)

var (
	defaultCurveColor  = color.NRGBA{R: 0x2b, G: 0x7f, B: 0xa8, A: 0xff}
	defaultPointColor  = color.NRGBA{R: 0xa4, G: 0x63, B: 0x3a, A: 0xff}
	defaultCursorColor = color.NRGBA{R: 0x51, G: 0x85, B: 0x4d, A: 0xff}
	defaultAxisColor   = color.NRGBA{A: 50}
	defaultLabelColor  = color.NRGBA{A: 200}
	defaultLegendColor = color.NRGBA{A: 255}
	defaultTipLabel    = color.NRGBA{A: 150}
	defaultTipValue    = color.NRGBA{A: 255}
	defaultTipFill     = color.NRGBA{R: 255, G: 255, B: 255, A: 230}
)

// Resolve applies the defaults to c and checks the result.
func (c Config) Resolve() (Settings, error) {
	s := Settings{
		ChartPosition: orDefault(c.ChartPosition, DefaultChartPosition),
		CurvePadding:  orDefault(c.CurvePadding, geometry.Rect{}),

		CurveWidth: orZero(c.CurveWidth, defaultCurveWidth),
		CurveColor: orColor(c.CurveColor, defaultCurveColor),

		PointRadius:  orZero(c.PointRadius, defaultPointRadius),
		PointColor:   orColor(c.PointColor, defaultPointColor),
		CursorRadius: orZero(c.CursorRadius, defaultCursorRadius),
		CursorColor:  orColor(c.CursorColor, defaultCursorColor),

		VerticalAxisCount:   orZero(c.VerticalAxisCount, defaultAxisCount),
		HorizontalAxisCount: orZero(c.HorizontalAxisCount, defaultAxisCount),
		AxisColor:           orColor(c.AxisColor, defaultAxisColor),

		XLabelFormatter: c.XLabelFormatter,
		YLabelFormatter: c.YLabelFormatter,
		XLabelOffset:    orDefault(c.XLabelOffset, DefaultXLabelOffset),
		YLabelOffset:    orDefault(c.YLabelOffset, DefaultYLabelOffset),
		LabelFontSize:   orZero(c.LabelFontSize, defaultLabelFontSize),
		LabelColor:      orColor(c.LabelColor, defaultLabelColor),

		XLegendText:    c.XLegendText,
		YLegendText:    c.YLegendText,
		XLegendOffset:  orDefault(c.XLegendOffset, DefaultXLegendOffset),
		YLegendOffset:  orDefault(c.YLegendOffset, DefaultYLegendOffset),
		LegendFontSize: orZero(c.LegendFontSize, defaultLegendFontSize),
		LegendColor:    orColor(c.LegendColor, defaultLegendColor),

		Font: font.Font{Typeface: font.Typeface(c.FontFamily)},

		DisableRotatedLegend: c.DisableRotatedLegend,
	}
	if s.XLabelFormatter == nil {
		s.XLabelFormatter = Percent
	}
	if s.YLabelFormatter == nil {
		s.YLabelFormatter = Percent
	}
	s.TooltipFormatter = c.TooltipFormatter
	if s.TooltipFormatter == nil {
		xf, yf := s.XLabelFormatter, s.YLabelFormatter
		s.TooltipFormatter = func(p geometry.Point) tooltip.Text {
			return tooltip.Text{X: xf(p.X), Y: yf(p.Y)}
		}
	}
	s.Tooltip = tooltip.Style{
		XLabel:     orString(c.TooltipXLabel, orString(c.XLegendText, "X")),
		YLabel:     orString(c.TooltipYLabel, orString(c.YLegendText, "Y")),
		LabelColor: orColor(c.TooltipLabelColor, defaultTipLabel),
		ValueColor: orColor(c.TooltipValueColor, defaultTipValue),
		Background: orColor(c.TooltipBackground, defaultTipFill),
		TextSize:   orZero(c.TooltipFontSize, defaultLabelFontSize),
		Font:       s.Font,
	}

	if s.VerticalAxisCount < 2 || s.HorizontalAxisCount < 2 {
		return Settings{}, fmt.Errorf("%w: axis counts must be at least 2, got %d vertical and %d horizontal",
			ErrConfig, s.VerticalAxisCount, s.HorizontalAxisCount)
	}
	if s.CurveWidth < 0 || s.PointRadius < 0 || s.CursorRadius < 0 {
		return Settings{}, fmt.Errorf("%w: widths and radii must not be negative", ErrConfig)
	}
	if s.LabelFontSize < 0 || s.LegendFontSize < 0 || s.Tooltip.TextSize < 0 {
		return Settings{}, fmt.Errorf("%w: font sizes must not be negative", ErrConfig)
	}
	return s, nil
}

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

func orZero[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func orColor(c, def color.NRGBA) color.NRGBA {
	return orZero(c, def)
}

func orString(s, def string) string {
	return orZero(s, def)
}
