package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/tonebubbles/common"
	"github.com/milk9111/tonebubbles/obj"
	"github.com/milk9111/tonebubbles/round"
)

var (
	panelColor  = color.NRGBA{R: 0x10, G: 0x0c, B: 0x24, A: 210}
	buttonColor = color.NRGBA{R: 0x4a, G: 0x3d, B: 0x7a, A: 255}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type menuButton struct {
	label   string
	onClick func()
}

// newMenuUI lays out a centered panel with a title, optional detail lines
// and a column of buttons.
func newMenuUI(title string, lines []string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := imageui.NewNineSliceColor(buttonColor)

	var face ebtext.Face = obj.LabelFace()
	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, textColor),
		widget.TextOpts.WidgetOpts(center),
	))
	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, textColor),
			widget.TextOpts.WidgetOpts(center),
		))
	}
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 6, Bottom: 6, Left: 16, Right: 16}),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// NewPauseUI builds the pause menu: resume, restart the round, or quit.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI("Paused", nil, []menuButton{
		{"Resume", func() { g.paused = false }},
		{"Restart", g.restart},
		{"Quit", func() { g.quit = true }},
	})
}

// NewResultsUI builds the end-of-round screen.
func NewResultsUI(g *Game, outcome round.Outcome, level, wave int) *ebitenui.UI {
	title := "Round cleared!"
	if outcome == round.OutcomeFailed {
		title = "Out of lives"
	}
	lines := []string{
		fmt.Sprintf("%s round, reached level %d wave %d", g.roundName, level, wave),
	}
	return newMenuUI(title, lines, []menuButton{
		{"Play again", g.restart},
		{"Quit", func() { g.quit = true }},
	})
}
