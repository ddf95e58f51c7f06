package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gioui.org/unit"
	"gopkg.in/yaml.v3"

	"git.sr.ht/~whereswaldon/ratecurve/geometry"
)

// Offset is a pixel offset as written in a style file.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Color is an NRGBA color written as "#rrggbb" or "#rrggbbaa".
type Color color.NRGBA

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = Color(parsed)
	return nil
}

// ParseColor parses a "#rrggbb" or "#rrggbbaa" hex color. Colors without
// an alpha component are opaque.
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("%w: color %q is not #rrggbb or #rrggbbaa", ErrConfig, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: color %q: %v", ErrConfig, s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Style is the on-disk form of a Config. Formatters are selected by name,
// see FormatterByName.
type Style struct {
	ChartPosition *geometry.Rect `yaml:"chartPosition"`
	CurvePadding  *geometry.Rect `yaml:"curvePadding"`

	CurveWidth   float32 `yaml:"curveWidth"`
	CurveColor   Color   `yaml:"curveColor"`
	PointRadius  float32 `yaml:"pointRadius"`
	PointColor   Color   `yaml:"pointColor"`
	CursorRadius float32 `yaml:"cursorRadius"`
	CursorColor  Color   `yaml:"cursorColor"`

	VerticalAxisCount   int   `yaml:"verticalAxisCount"`
	HorizontalAxisCount int   `yaml:"horizontalAxisCount"`
	AxisColor           Color `yaml:"axisColor"`

	XLabelFormat  string  `yaml:"xLabelFormat"`
	YLabelFormat  string  `yaml:"yLabelFormat"`
	XLabelOffset  *Offset `yaml:"xLabelOffset"`
	YLabelOffset  *Offset `yaml:"yLabelOffset"`
	LabelFontSize float32 `yaml:"labelFontSize"`
	LabelColor    Color   `yaml:"labelColor"`

	XLegend        string  `yaml:"xLegend"`
	YLegend        string  `yaml:"yLegend"`
	XLegendOffset  *Offset `yaml:"xLegendOffset"`
	YLegendOffset  *Offset `yaml:"yLegendOffset"`
	LegendFontSize float32 `yaml:"legendFontSize"`
	LegendColor    Color   `yaml:"legendColor"`

	TooltipXLabel     string  `yaml:"tooltipXLabel"`
	TooltipYLabel     string  `yaml:"tooltipYLabel"`
	TooltipLabelColor Color   `yaml:"tooltipLabelColor"`
	TooltipValueColor Color   `yaml:"tooltipValueColor"`
	TooltipBackground Color   `yaml:"tooltipBackground"`
	TooltipFontSize   float32 `yaml:"tooltipFontSize"`

	FontFamily           string `yaml:"fontFamily"`
	DisableRotatedLegend bool   `yaml:"disableRotatedLegend"`
}

// LoadStyle decodes a YAML style. Unknown keys are an error. An empty
// document is the default style.
func LoadStyle(r io.Reader) (Style, error) {
	var s Style
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Style{}, nil
		}
		return Style{}, fmt.Errorf("%w: decoding style: %w", ErrConfig, err)
	}
	return s, nil
}

// Config converts the style into a widget Config.
func (s Style) Config() (Config, error) {
	cfg := Config{
		ChartPosition: s.ChartPosition,
		CurvePadding:  s.CurvePadding,

		CurveWidth:   s.CurveWidth,
		CurveColor:   color.NRGBA(s.CurveColor),
		PointRadius:  s.PointRadius,
		PointColor:   color.NRGBA(s.PointColor),
		CursorRadius: s.CursorRadius,
		CursorColor:  color.NRGBA(s.CursorColor),

		VerticalAxisCount:   s.VerticalAxisCount,
		HorizontalAxisCount: s.HorizontalAxisCount,
		AxisColor:           color.NRGBA(s.AxisColor),

		XLabelOffset:  s.XLabelOffset.point(),
		YLabelOffset:  s.YLabelOffset.point(),
		LabelFontSize: unit.Sp(s.LabelFontSize),
		LabelColor:    color.NRGBA(s.LabelColor),

		XLegendText:    s.XLegend,
		YLegendText:    s.YLegend,
		XLegendOffset:  s.XLegendOffset.point(),
		YLegendOffset:  s.YLegendOffset.point(),
		LegendFontSize: unit.Sp(s.LegendFontSize),
		LegendColor:    color.NRGBA(s.LegendColor),

		TooltipXLabel:     s.TooltipXLabel,
		TooltipYLabel:     s.TooltipYLabel,
		TooltipLabelColor: color.NRGBA(s.TooltipLabelColor),
		TooltipValueColor: color.NRGBA(s.TooltipValueColor),
		TooltipBackground: color.NRGBA(s.TooltipBackground),
		TooltipFontSize:   unit.Sp(s.TooltipFontSize),

		FontFamily:           s.FontFamily,
		DisableRotatedLegend: s.DisableRotatedLegend,
	}
	var err error
	if s.XLabelFormat != "" {
		if cfg.XLabelFormatter, err = FormatterByName(s.XLabelFormat); err != nil {
			return Config{}, fmt.Errorf("xLabelFormat: %w", err)
		}
	}
	if s.YLabelFormat != "" {
		if cfg.YLabelFormatter, err = FormatterByName(s.YLabelFormat); err != nil {
			return Config{}, fmt.Errorf("yLabelFormat: %w", err)
		}
	}
	return cfg, nil
}

func (o *Offset) point() *geometry.Point {
	if o == nil {
		return nil
	}
	p := geometry.Pt(o.X, o.Y)
	return &p
}
