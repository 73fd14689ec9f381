package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/tactile"
)

const (
	buttonW = 160
	buttonH = 48
)

func loadFace(size float64) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// newButtonNode builds a compound button: a transparent hit area holding a
// Backplate, a centered Frontplate and a Label on top.
func newButtonNode(name, caption string, face text.Face, x, y float64, tint tactile.Color) *tactile.Node {
	root := tactile.NewContainer(name)
	root.HitShape = tactile.HitRect{Width: buttonW, Height: buttonH}
	root.SetPosition(x, y)

	back := tactile.NewSprite("Backplate", buttonW, buttonH)
	back.Color = tactile.Color{R: 0.05, G: 0.05, B: 0.05, A: 1}
	back.SetPosition(0, 4)
	root.AddChild(back)

	front := tactile.NewSprite("Frontplate", buttonW, buttonH)
	front.Color = tint
	front.SetPivot(buttonW/2, buttonH/2)
	front.SetPosition(buttonW/2, buttonH/2)
	root.AddChild(front)

	label := tactile.NewText("Label", caption, face)
	label.Color = tactile.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
	label.SetPosition((buttonW-label.Width)/2, (buttonH-label.Height)/2)
	front.AddChild(label)
	return root
}

// buildUI lays out an ebitenui overlay with one button in the bottom-right
// corner.
func buildUI(face text.Face) (*ebitenui.UI, *widget.Button) {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout(
		widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 24, Right: 24}),
	)))

	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{180, 180, 180, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{200, 200, 200, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{160, 160, 160, 255}),
		}),
		widget.ButtonOpts.Text("ebitenui", &face, &widget.ButtonTextColor{
			Idle:    color.Black,
			Hover:   color.Black,
			Pressed: color.RGBA{0, 0, 200, 255},
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(buttonW, buttonH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	root.AddChild(btn)

	return &ebitenui.UI{Container: root}, btn
}
