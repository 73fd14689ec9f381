package tactile

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title string
	// Width and Height are the window and logical screen size. Default 640x480.
	Width, Height int
	// ShowFPS adds an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene         *Scene
	width, height int
}

func (g *gameShell) Update() error              { return g.scene.Update() }
func (g *gameShell) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
func (g *gameShell) Layout(_, _ int) (int, int) { return g.width, g.height }

// Run opens a window and runs the scene until the window closes or the
// update func returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.ShowFPS {
		w := NewFPSWidget()
		scene.Root().AddChild(w.Node())
		scene.AddBehavior(w)
	}
	return ebiten.RunGame(&gameShell{scene: scene, width: cfg.Width, height: cfg.Height})
}

// FPSWidget is a node showing the current FPS and TPS, redrawn about twice
// a second. Add its Node to the tree and the widget itself as a behavior.
type FPSWidget struct {
	node    *Node
	img     *ebiten.Image
	elapsed float64
}

// NewFPSWidget creates the widget. It draws with ebitenutil.DebugPrint.
func NewFPSWidget() *FPSWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	node := NewSprite("fps_widget", 0, 0)
	node.SetCustomImage(img)
	return &FPSWidget{node: node, img: img, elapsed: 0.5}
}

// Node returns the node displaying the counters.
func (w *FPSWidget) Node() *Node { return w.node }

// Update implements Behavior.
func (w *FPSWidget) Update(dt float64) {
	w.elapsed += dt
	if w.elapsed < 0.5 {
		return
	}
	w.elapsed = 0

	w.img.Clear()
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
