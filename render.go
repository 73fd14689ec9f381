package tactile

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// --- White pixel singleton (no sync.Once, tactile is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image, drawn
// stretched for sprites without a custom image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// Draw refreshes transforms and draws every visible, renderable node in tree
// order, then runs the draw func if one is set.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.root.UpdateTransforms()
	s.drawBuf = collectDrawables(s.root, s.drawBuf[:0])
	for _, n := range s.drawBuf {
		switch n.Type {
		case NodeTypeSprite:
			drawSprite(screen, n)
		case NodeTypeText:
			drawText(screen, n)
		}
	}
	clear(s.drawBuf)
	if s.drawFunc != nil {
		s.drawFunc(screen)
	}
}

// SetDrawFunc sets a callback run after the scene is drawn, e.g. to draw a
// UI layer on top.
func (s *Scene) SetDrawFunc(fn func(screen *ebiten.Image)) {
	s.drawFunc = fn
}

// collectDrawables walks the tree in painter order. Invisible nodes hide
// their subtree; non-renderable nodes only hide themselves.
func collectDrawables(n *Node, buf []*Node) []*Node {
	if !n.Visible || n.disposed {
		return buf
	}
	if n.IsGraphic() {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectDrawables(child, buf)
	}
	return buf
}

// geoM converts an affine matrix [a, b, c, d, tx, ty] to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// spriteSize returns the image to draw and the scale fitting it to the
// node's Width and Height. A zero size keeps the image's own size.
func spriteSize(n *Node) (img *ebiten.Image, sx, sy float64) {
	img = n.customImage
	if img == nil {
		return nil, n.Width, n.Height
	}
	b := img.Bounds()
	sx, sy = 1, 1
	if n.Width > 0 && b.Dx() > 0 {
		sx = n.Width / float64(b.Dx())
	}
	if n.Height > 0 && b.Dy() > 0 {
		sy = n.Height / float64(b.Dy())
	}
	return img, sx, sy
}

func drawSprite(dst *ebiten.Image, n *Node) {
	img, sx, sy := spriteSize(n)
	if sx == 0 || sy == 0 {
		return
	}
	if img == nil {
		img = ensureWhitePixel()
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(sx, sy)
	op.GeoM.Concat(geoM(n.worldTransform))
	scaleColor(&op.ColorScale, n.Color)
	dst.DrawImage(img, &op)
}

func drawText(dst *ebiten.Image, n *Node) {
	if n.Face == nil || n.Content == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoM(n.worldTransform)
	scaleColor(&op.ColorScale, n.Color)
	text.Draw(dst, n.Content, n.Face, op)
}

// scaleColor applies a non-premultiplied tint.
func scaleColor(cs *ebiten.ColorScale, c Color) {
	cs.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
}
