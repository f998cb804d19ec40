package components

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"mood-weather/internal/weather/scene"
)

const SceneMinSize = 240

// Scene renders scene.Build for the current frame, centred in its area.
type Scene struct {
	widget.BaseWidget

	mode    scene.Mode
	loading bool
	start   time.Time
	elapsed float32
}

func NewScene() *Scene {
	s := &Scene{mode: scene.Sunny, start: time.Now()}
	s.ExtendBaseWidget(s)
	return s
}

// SetFrame advances the animation clock and redraws. mode must be resolved
// with scene.ModeFor first.
func (s *Scene) SetFrame(mode scene.Mode, loading bool, now time.Time) {
	s.mode = mode
	s.loading = loading
	s.elapsed = float32(now.Sub(s.start).Seconds())
	s.Refresh()
}

func (s *Scene) CreateRenderer() fyne.WidgetRenderer {
	r := &sceneRenderer{scene: s}
	r.rebuild(fyne.NewSize(SceneMinSize, SceneMinSize))
	return r
}

type sceneRenderer struct {
	scene   *Scene
	size    fyne.Size
	objects []fyne.CanvasObject
}

func (r *sceneRenderer) Layout(size fyne.Size) { r.rebuild(size) }

func (r *sceneRenderer) MinSize() fyne.Size {
	return fyne.NewSize(SceneMinSize, SceneMinSize)
}

func (r *sceneRenderer) Refresh() {
	r.rebuild(r.size)
	canvas.Refresh(r.scene)
}

func (r *sceneRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *sceneRenderer) Destroy() {}

func (r *sceneRenderer) rebuild(size fyne.Size) {
	r.size = size
	side := scene.SquareSize(size.Width, size.Height)
	origin := scene.Point{X: (size.Width - side) / 2, Y: (size.Height - side) / 2}

	shapes := scene.Build(r.scene.mode, r.scene.elapsed, side, r.scene.loading)
	objects := make([]fyne.CanvasObject, 0, len(shapes))
	for _, sh := range shapes {
		objects = append(objects, toCanvas(sh, origin))
	}
	r.objects = objects
}

func toCanvas(sh scene.Shape, origin scene.Point) fyne.CanvasObject {
	switch s := sh.(type) {
	case scene.Circle:
		c := canvas.NewCircle(orTransparent(s.Fill))
		c.StrokeColor = orTransparent(s.Stroke)
		c.StrokeWidth = s.StrokeWidth
		center := origin.Add(s.Center)
		c.Move(fyne.NewPos(center.X-s.Radius, center.Y-s.Radius))
		c.Resize(fyne.NewSize(2*s.Radius, 2*s.Radius))
		return c
	case scene.Line:
		l := canvas.NewLine(s.Color)
		l.StrokeWidth = s.Width
		from, to := origin.Add(s.From), origin.Add(s.To)
		l.Position1 = fyne.NewPos(from.X, from.Y)
		l.Position2 = fyne.NewPos(to.X, to.Y)
		return l
	case scene.Rect:
		rect := canvas.NewRectangle(orTransparent(s.Fill))
		rect.CornerRadius = s.CornerRadius
		topLeft := origin.Add(s.Min)
		rect.Move(fyne.NewPos(topLeft.X, topLeft.Y))
		rect.Resize(fyne.NewSize(s.Max.X-s.Min.X, s.Max.Y-s.Min.Y))
		return rect
	default:
		return canvas.NewRectangle(color.Transparent)
	}
}

func orTransparent(c color.Color) color.Color {
	if c == nil {
		return color.Transparent
	}
	return c
}
