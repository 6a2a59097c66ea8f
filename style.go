package ccfeplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		fmt.Printf("Cannot parse style %q as float: %s", s, err.Error())
		return 0.5
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// Set alpha to a in color c. An alpha already present in c is dropped.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// -------------------------------------------------------------------------
// Markers

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	CrossPoint
	PlusPoint
	StarPoint
	PointPoint
)

// String2PointShape understands both the matplotlib-style single
// character specs ("o", "s", "D", ...) and spelled out names.
func String2PointShape(s string) PointShape {
	switch s {
	case "o", "circle":
		return CirclePoint
	case "s", "square":
		return SquarePoint
	case "D", "d", "diamond":
		return DiamondPoint
	case "^", "delta":
		return DeltaPoint
	case "v", "<", ">", "nabla":
		return NablaPoint
	case "solid-circle":
		return SolidCirclePoint
	case "solid-square":
		return SolidSquarePoint
	case "x", "cross":
		return CrossPoint
	case "+", "plus":
		return PlusPoint
	case "*", "star":
		return StarPoint
	case ".", ",", "point":
		return PointPoint
	}
	return BlankPoint
}

// Glyph returns the drawing primitive for a point shape. The renderer
// has no distinct delta/nabla or star glyphs, so the nearest ones are
// substituted.
func (p PointShape) Glyph() draw.GlyphDrawer {
	switch p {
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case DiamondPoint:
		return diamondGlyph{}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case NablaPoint:
		return draw.PyramidGlyph{}
	case SolidCirclePoint, PointPoint:
		return draw.CircleGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	case StarPoint:
		return draw.CrossGlyph{}
	}
	return nil
}

// diamondGlyph strokes a square rotated by 45 degrees. The renderer
// ships no diamond glyph of its own.
type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)})
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + sty.Radius})
	p.Line(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - sty.Radius})
	p.Line(vg.Point{X: pt.X - sty.Radius, Y: pt.Y})
	p.Close()
	c.Stroke(p)
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

// String2LineType understands both the matplotlib-style specs
// ("-", "--", "-.", ":", "None") and spelled out names.
func String2LineType(s string) LineType {
	switch s {
	case "-", "solid":
		return SolidLine
	case "--", "dashed":
		return DashedLine
	case ":", "dotted":
		return DottedLine
	case "-.", "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	case "None", "none", " ", "", "blank":
		return BlankLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of lt. A nil pattern is a solid
// line; a blank line has no pattern and must not be drawn at all.
func (lt LineType) Dashes() []vg.Length {
	switch lt {
	case DashedLine:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case DottedLine:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case DotDashLine:
		return []vg.Length{vg.Points(1), vg.Points(2), vg.Points(6), vg.Points(2)}
	case LongdashLine:
		return []vg.Length{vg.Points(9), vg.Points(3)}
	case TwodashLine:
		return []vg.Length{vg.Points(3), vg.Points(2), vg.Points(6), vg.Points(2)}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.NRGBA{
	"red":     color.NRGBA{0xff, 0x00, 0x00, 0xff},
	"green":   color.NRGBA{0x00, 0xff, 0x00, 0xff},
	"blue":    color.NRGBA{0x00, 0x00, 0xff, 0xff},
	"cyan":    color.NRGBA{0x00, 0xff, 0xff, 0xff},
	"magenta": color.NRGBA{0xff, 0x00, 0xff, 0xff},
	"yellow":  color.NRGBA{0xff, 0xff, 0x00, 0xff},
	"white":   color.NRGBA{0xff, 0xff, 0xff, 0xff},
	"gray20":  color.NRGBA{0x33, 0x33, 0x33, 0xff},
	"gray40":  color.NRGBA{0x66, 0x66, 0x66, 0xff},
	"gray":    color.NRGBA{0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  color.NRGBA{0x99, 0x99, 0x99, 0xff},
	"gray80":  color.NRGBA{0xcc, 0xcc, 0xcc, 0xff},
	"black":   color.NRGBA{0x00, 0x00, 0x00, 0xff},

	// Single letter format-spec codes.
	"r": color.NRGBA{0xff, 0x00, 0x00, 0xff},
	"g": color.NRGBA{0x00, 0xff, 0x00, 0xff},
	"b": color.NRGBA{0x00, 0x00, 0xff, 0xff},
	"c": color.NRGBA{0x00, 0xff, 0xff, 0xff},
	"m": color.NRGBA{0xff, 0x00, 0xff, 0xff},
	"y": color.NRGBA{0xff, 0xff, 0x00, 0xff},
	"k": color.NRGBA{0x00, 0x00, 0x00, 0xff},
	"w": color.NRGBA{0xff, 0xff, 0xff, 0xff},
}

func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
