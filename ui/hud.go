package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/dungeon/common"
	"github.com/milk9111/dungeon/ecs"
	"github.com/milk9111/dungeon/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var (
	defaultTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelColor       = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160}
)

// HUD draws the interaction prompt at the bottom centre of the screen and
// the game log in the top-left corner.
type HUD struct {
	ui *ebitenui.UI

	promptPanel *widget.Container
	prompt      *widget.Text
	logPanel    *widget.Container
	log         *widget.Text

	last Texts
}

// Texts is what the HUD shows this frame.
type Texts struct {
	Prompt      string
	PromptColor color.Color
	Log         string
	LogColor    color.Color
}

// ReadTexts collects the prompt and log text from the world.
func ReadTexts(w *ecs.World) Texts {
	var out Texts
	ecs.ForEach2(w, component.InteractivePromptComponent.Kind(), component.UITextComponent.Kind(), func(_ ecs.Entity, _ *component.InteractivePrompt, t *component.UIText) {
		out.Prompt = t.Value
		out.PromptColor = t.Color
	})
	ecs.ForEach2(w, component.GameLogComponent.Kind(), component.UITextComponent.Kind(), func(_ ecs.Entity, _ *component.GameLog, t *component.UIText) {
		out.Log = t.Value
		out.LogColor = t.Color
	})
	return out
}

// NewHUD builds the widgets. Text colours are taken from the world's UIText
// components when the HUD is created.
func NewHUD(w *ecs.World) *HUD {
	texts := ReadTexts(w)

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	panelImg := imageui.NewNineSliceColor(panelColor)

	prompt := widget.NewText(
		widget.TextOpts.Text("", &face, orDefault(texts.PromptColor)),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
	promptPanel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	promptPanel.AddChild(prompt)

	logText := widget.NewText(
		widget.TextOpts.Text("", &face, orDefault(texts.LogColor)),
		widget.TextOpts.MaxWidth(common.BaseWidth/3),
	)
	logPanel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	logPanel.AddChild(logText)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)
	root.AddChild(promptPanel)
	root.AddChild(logPanel)

	h := &HUD{
		ui:          &ebitenui.UI{Container: root},
		promptPanel: promptPanel,
		prompt:      prompt,
		logPanel:    logPanel,
		log:         logText,
	}
	h.apply(texts, true)
	return h
}

func orDefault(c color.Color) color.Color {
	if c == nil {
		return defaultTextColor
	}
	return c
}

// Update copies the current texts into the widgets and lets ebitenui handle
// layout and input.
func (h *HUD) Update(w *ecs.World) {
	if h == nil {
		return
	}
	h.apply(ReadTexts(w), false)
	h.ui.Update()
}

func (h *HUD) apply(texts Texts, force bool) {
	if !force && texts.Prompt == h.last.Prompt && texts.Log == h.last.Log {
		return
	}
	h.prompt.Label = texts.Prompt
	h.log.Label = texts.Log
	setVisible(h.promptPanel, texts.Prompt != "")
	setVisible(h.logPanel, texts.Log != "")
	h.ui.Container.RequestRelayout()
	h.last = texts
}

func setVisible(c *widget.Container, visible bool) {
	if visible {
		c.GetWidget().Visibility = widget.Visibility_Show
	} else {
		c.GetWidget().Visibility = widget.Visibility_Hide
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	h.ui.Draw(screen)
}
