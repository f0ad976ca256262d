package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/shatter-grid/internal/config"
)

var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeySpace:       KeySpace,
	ebiten.KeyEnter:       KeyEnter,
	ebiten.KeyNumpadEnter: KeyEnter,
	ebiten.KeyEscape:      KeyEscape,
	ebiten.KeyO:           KeyO,
	ebiten.KeyS:           KeyS,
	ebiten.KeyC:           KeyC,
	ebiten.KeyH:           KeyH,
	ebiten.KeyB:           KeyB,
	ebiten.KeyF:           KeyF,
	ebiten.KeyI:           KeyI,
	ebiten.KeyM:           KeyM,
	ebiten.KeyJ:           KeyJ,
	ebiten.KeyDigit0:      Key0,
	ebiten.KeyDigit1:      Key1,
	ebiten.KeyDigit2:      Key2,
	ebiten.KeyDigit3:      Key3,
	ebiten.KeyDigit4:      Key4,
	ebiten.KeyArrowUp:     KeyUp,
	ebiten.KeyArrowDown:   KeyDown,
	ebiten.KeyArrowLeft:   KeyLeft,
	ebiten.KeyArrowRight:  KeyRight,
}

type ebitenModifiers struct{}

func (ebitenModifiers) IsModifierHeld(m Modifier) bool {
	switch m {
	case ModControl:
		return ebiten.IsKeyPressed(ebiten.KeyControl)
	case ModShift:
		return ebiten.IsKeyPressed(ebiten.KeyShift)
	}
	return false
}

// Game adapts a Scene to ebiten. The scene is rendered at a fixed logical
// size onto an offscreen image which is then scaled into the viewport.
type Game struct {
	scene     *Scene
	canvas    *imageCanvas
	offscreen *ebiten.Image
	keys      []ebiten.Key
	debug     bool
}

func NewGame(scene *Scene, face text.Face, debug bool) *Game {
	off := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	return &Game{
		scene:     scene,
		canvas:    newImageCanvas(off, face),
		offscreen: off,
		debug:     debug,
	}
}

func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := ebitenKeys[k]; ok {
			g.scene.KeyPressed(key, ebitenModifiers{})
		}
	}
	if g.scene.ExitRequested() {
		return ebiten.Termination
	}

	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(g.canvas)

	vp := g.scene.Viewport
	if vp.Visible() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(vp.W)/config.ScreenWidth, float64(vp.H)/config.ScreenHeight)
		op.GeoM.Translate(float64(vp.X), float64(vp.Y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.offscreen, op)
	}

	if g.debug {
		fx := g.scene.Effects
		status := fmt.Sprintf("TPS %.1f | frame %d | palette %s | shatter %s | particles %d | viewport %s",
			ebiten.ActualTPS(), g.scene.Frame(), g.scene.Palette.Mode, fx.Shatter, g.scene.Pool.ActiveCount(), vp)
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// imageCanvas draws onto an ebiten image with the vector package.
type imageCanvas struct {
	dst   *ebiten.Image
	face  text.Face
	white *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

func newImageCanvas(dst *ebiten.Image, face text.Face) *imageCanvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &imageCanvas{
		dst:   dst,
		face:  face,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

func (c *imageCanvas) Clear(clr color.Color) { c.dst.Fill(clr) }

func (c *imageCanvas) FillTriangle(a, b, d Point, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(a.X), float32(a.Y))
	path.LineTo(float32(b.X), float32(b.Y))
	path.LineTo(float32(d.X), float32(d.Y))
	path.Close()
	c.fill(&path, clr)
}

func (c *imageCanvas) FillQuad(q [4]Point, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(q[0].X), float32(q[0].Y))
	for _, p := range q[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	c.fill(&path, clr)
}

func (c *imageCanvas) fill(path *vector.Path, clr color.Color) {
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = float32(n.R) / 0xff
		c.vs[i].ColorG = float32(n.G) / 0xff
		c.vs[i].ColorB = float32(n.B) / 0xff
		c.vs[i].ColorA = float32(n.A) / 0xff
	}
	c.dst.DrawTriangles(c.vs, c.is, c.white, &ebiten.DrawTrianglesOptions{})
}

func (c *imageCanvas) Line(a, b Point, clr color.Color) {
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, true)
}

func (c *imageCanvas) Polyline(pts []Point, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		c.Line(pts[i-1], pts[i], clr)
	}
}

// Text draws s with its baseline at the given point.
func (c *imageCanvas) Text(s string, at Point, clr color.Color) {
	if c.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y-c.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, c.face, op)
}
