// Package scene computes the animated weather illustration as plain shapes
// for one instant. Nothing here draws; the GUI turns shapes into canvas
// objects.
package scene

import (
	"image/color"
	"math"

	"mood-weather/internal/weather"
)

type Mode int

const (
	Auto Mode = iota
	Sunny
	Rain
	Snow
	Cloud
)

// Modes is the order offered in the animation selector.
var Modes = []Mode{Auto, Sunny, Rain, Snow, Cloud}

var modeNames = map[Mode]string{
	Auto:  "Auto",
	Sunny: "Sunny",
	Rain:  "Rain",
	Snow:  "Snow",
	Cloud: "Cloud",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "Unknown"
}

// ParseMode maps a selector label back to a Mode. Unknown labels are Auto.
func ParseMode(name string) Mode {
	for m, n := range modeNames {
		if n == name {
			return m
		}
	}
	return Auto
}

// Auto thresholds.
const (
	RainPrecipMM = 0.5
	SnowBelowC   = 5.0
	CloudBelowC  = 18.0
)

// ModeFor resolves the mode to draw. An explicit override wins; Auto derives
// the mode from the last result and falls back to Sunny without one.
func ModeFor(override Mode, last *weather.FetchedWeather) Mode {
	if override != Auto {
		return override
	}
	if last == nil {
		return Sunny
	}
	switch {
	case last.PrecipitationMM >= RainPrecipMM:
		return Rain
	case last.TempMaxC < SnowBelowC:
		return Snow
	case last.TempMaxC < CloudBelowC:
		return Cloud
	default:
		return Sunny
	}
}

type Point struct {
	X, Y float32
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Scale(k float32) Point { return Point{p.X * k, p.Y * k} }

// Shape is one of Circle, Line or Rect.
type Shape interface {
	isShape()
}

// Circle is filled when Fill is non-nil and outlined when StrokeWidth > 0.
type Circle struct {
	Center      Point
	Radius      float32
	Fill        color.Color
	Stroke      color.Color
	StrokeWidth float32
}

type Line struct {
	From, To Point
	Color    color.Color
	Width    float32
}

type Rect struct {
	Min, Max     Point
	Fill         color.Color
	CornerRadius float32
}

func (Circle) isShape() {}
func (Line) isShape()   {}
func (Rect) isShape()   {}

const (
	MaxSize    = 420
	Rings      = 5
	SunRays    = 10
	RainDrops  = 80
	SnowFlakes = 70
	LoadArcs   = 3
	arcSteps   = 24
)

var (
	sunColor      = color.NRGBA{R: 255, G: 210, B: 80, A: 255}
	rayColor      = color.NRGBA{R: 255, G: 180, B: 40, A: 255}
	cloudFill     = color.NRGBA{R: 235, G: 240, B: 245, A: 255}
	cloudEdge     = color.NRGBA{R: 210, G: 215, B: 225, A: 255}
	rainSky       = color.NRGBA{R: 230, G: 235, B: 245, A: 255}
	rainSun       = color.NRGBA{R: 255, G: 220, B: 120, A: 255}
	rainCloud     = color.NRGBA{R: 220, G: 225, B: 235, A: 255}
	dropColor     = color.NRGBA{R: 120, G: 170, B: 255, A: 255}
	snowSky       = color.NRGBA{R: 240, G: 245, B: 255, A: 255}
	flakeFill     = color.NRGBA{R: 250, G: 252, B: 255, A: 255}
	flakeEdge     = color.NRGBA{R: 220, G: 230, B: 245, A: 255}
	loadingColor  = dropColor
	ringBaseColor = color.NRGBA{R: 200, G: 200, B: 220}
)

// SquareSize is the side of the drawing square for the available area.
func SquareSize(width, height float32) float32 {
	return float32(math.Min(math.Min(float64(width), float64(height)), MaxSize))
}

// Build returns the shapes for mode at t seconds on a size×size square whose
// top-left corner is the origin. Later shapes draw over earlier ones. mode
// must already be resolved; Auto draws only the rings.
func Build(mode Mode, t, size float32, loading bool) []Shape {
	center := Point{size / 2, size / 2}
	var shapes []Shape

	for i := 0; i < Rings; i++ {
		fi := float32(i)
		r := size/2.2 - fi*14 + sin(t*5+fi*0.7)
		alpha := 20 - i*3
		if alpha < 5 {
			alpha = 5
		}
		c := ringBaseColor
		c.A = uint8(alpha)
		shapes = append(shapes, Circle{Center: center, Radius: r, Stroke: c, StrokeWidth: 1})
	}

	sunR := SunRadius(t, size)

	switch mode {
	case Sunny:
		shapes = append(shapes, Circle{Center: center, Radius: sunR, Fill: sunColor})
		spin := t * 0.7
		for k := 0; k < SunRays; k++ {
			fk := float32(k)
			ang := spin + fk*(2*math.Pi/SunRays)
			dir := Point{cos(ang), sin(ang)}
			a := center.Add(dir.Scale(sunR + 6))
			b := center.Add(dir.Scale(sunR + 26 + 4*abs(sin(t*3.1+fk))))
			shapes = append(shapes, Line{From: a, To: b, Color: rayColor, Width: 2})
		}

	case Cloud:
		shapes = append(shapes, Circle{Center: center, Radius: sunR, Fill: sunColor})
		drift := sin(t*30) * size * 0.15
		cc := Point{center.X + drift, center.Y + size*0.05}
		radii := [4]float32{size * 0.10, size * 0.08, size * 0.07, size * 0.06}
		offsets := [4]Point{
			{-radii[0] * 0.6, 0},
			{0, -radii[1] * 0.2},
			{radii[2] * 0.6, 0},
			{radii[3] * 1.1, 0.05 * size},
		}
		for i, r := range radii {
			shapes = append(shapes, Circle{
				Center: cc.Add(offsets[i]), Radius: r,
				Fill: cloudFill, Stroke: cloudEdge, StrokeWidth: 1,
			})
		}

	case Rain:
		shapes = append(shapes, Rect{Min: Point{2, 2}, Max: Point{size - 2, size - 2}, Fill: rainSky, CornerRadius: 6})
		shapes = append(shapes, Circle{Center: Point{center.X, center.Y - size*0.18}, Radius: sunR * 0.7, Fill: rainSun})

		cc := Point{center.X, center.Y - size*0.10}
		radii := [3]float32{size * 0.12, size * 0.10, size * 0.09}
		offsets := [3]Point{
			{-radii[0] * 0.6, 0},
			{0, -radii[1] * 0.2},
			{radii[2] * 0.7, 0.05 * size},
		}
		for i, r := range radii {
			shapes = append(shapes, Circle{Center: cc.Add(offsets[i]), Radius: r, Fill: rainCloud})
		}

		slope := normalize(Point{0.3, 1})
		fall := size * 0.6
		for i := 0; i < RainDrops; i++ {
			fi := float32(i)
			x := abs(fract(sin(fi*127.1)*43758.5453)) * size
			y := wrap(abs(fract(sin(fi*311.7)*12543.1234))*size+mod(t*fall, size), size)
			p0 := Point{x, y}
			shapes = append(shapes, Line{From: p0, To: p0.Add(slope.Scale(14)), Color: dropColor, Width: 1.6})
		}

	case Snow:
		shapes = append(shapes, Rect{Min: Point{2, 2}, Max: Point{size - 2, size - 2}, Fill: snowSky, CornerRadius: 6})
		fall := size * 0.25
		for i := 0; i < SnowFlakes; i++ {
			fi := float32(i)
			radius := 1.5 + float32((i*7)%3)
			x := abs(fract(sin(fi*83.1)*15437.77))*size + sin(t*12+fi*0.7)*8
			y := wrap(abs(fract(sin(fi*17.7)*937.13))*size+mod(t*fall, size), size)
			shapes = append(shapes, Circle{
				Center: Point{x, y}, Radius: radius,
				Fill: flakeFill, Stroke: flakeEdge, StrokeWidth: 1,
			})
		}
	}

	if loading {
		shapes = append(shapes, loadingArcs(center, sunR, t)...)
	}
	return shapes
}

// SunRadius pulses around 12% of size.
func SunRadius(t, size float32) float32 {
	return size * 0.12 * (1 + 0.07*sin(t*2.2))
}

// loadingArcs approximates three rotating third-circle arcs with segments.
func loadingArcs(center Point, sunR, t float32) []Shape {
	var shapes []Shape
	for j := 0; j < LoadArcs; j++ {
		fj := float32(j)
		r := sunR + 40 + fj*16
		start := fract(t*1.8+fj) * 2 * math.Pi
		span := float32(2 * math.Pi * 0.33)

		prev := center.Add(Point{cos(start), sin(start)}.Scale(r))
		for k := 1; k <= arcSteps; k++ {
			ang := start + span*float32(k)/arcSteps
			next := center.Add(Point{cos(ang), sin(ang)}.Scale(r))
			shapes = append(shapes, Line{From: prev, To: next, Color: loadingColor, Width: 2})
			prev = next
		}
	}
	return shapes
}

func sin(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos(x float32) float32 { return float32(math.Cos(float64(x))) }
func abs(x float32) float32 { return float32(math.Abs(float64(x))) }

// fract keeps the sign of x.
func fract(x float32) float32 {
	_, f := math.Modf(float64(x))
	return float32(f)
}

func mod(x, m float32) float32 { return float32(math.Mod(float64(x), float64(m))) }

// wrap folds y back into [0, size) after a single overflow.
func wrap(y, size float32) float32 {
	if y > size {
		return y - size
	}
	return y
}

func normalize(p Point) Point {
	n := float32(math.Hypot(float64(p.X), float64(p.Y)))
	return p.Scale(1 / n)
}
