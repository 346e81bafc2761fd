package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/splatter/drawing"
	"github.com/milk9111/splatter/splatter"
	"golang.org/x/image/font/basicfont"
)

// viewerUI is the viewer's control panel. The panel is kept so clicks on it
// can be kept from spawning splatters.
type viewerUI struct {
	ui      *ebitenui.UI
	panel   *widget.Container
	effects []*widget.Button
	sizes   []*widget.Button
	actions []*widget.Button
}

// newViewerUI builds the control panel in the bottom-left corner: one button
// per effect, one per size, and Warm/Clear actions.
func newViewerUI(g *Game) *viewerUI {
	v := &viewerUI{}
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x7a, G: 0x0e, B: 0x12, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}

	button := func(buttons *[]*widget.Button, label string, onClick func()) *widget.Button {
		b := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
		*buttons = append(*buttons, b)
		return b
	}
	row := func() *widget.Container {
		return widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)
	}

	effects := row()
	for id := 0; id < splatter.EffectCount; id++ {
		effect := splatter.EffectID(id)
		effects.AddChild(button(&v.effects, fmt.Sprintf("Effect %d", id), func() { g.selectEffect(effect) }))
	}

	sizes := row()
	for _, size := range []splatter.Size{splatter.Regular, splatter.Large} {
		sizes.AddChild(button(&v.sizes, size.String(), func() { g.selectSize(size) }))
	}

	actions := row()
	actions.AddChild(button(&v.actions, "Warm", func() {
		drawing.Precompute()
		g.status = "all splatters decoded"
	}))
	actions.AddChild(button(&v.actions, "Clear", g.clear))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(effects)
	panel.AddChild(sizes)
	panel.AddChild(actions)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	v.ui = &ebitenui.UI{Container: root}
	v.panel = panel
	return v
}

// covers reports whether the screen point (x, y) lies on the panel.
func (v *viewerUI) covers(x, y int) bool {
	return image.Pt(x, y).In(v.panel.GetWidget().Rect)
}
