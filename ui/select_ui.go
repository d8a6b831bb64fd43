package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/kagerun/components"
	cfg "github.com/automoto/kagerun/config"
	"github.com/automoto/kagerun/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SelectUI holds the ebitenui interface for the title screen
type SelectUI struct {
	UI     *ebitenui.UI
	Select *components.SelectData

	// MapID resolves a level index to the map id best times are keyed by
	MapID func(level int) string

	OnStart func()

	slotLabel      *widget.Label
	characterLabel *widget.Label
	abilityLabel   *widget.Label
	levelLabel     *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewSelectUI creates the title screen widgets over sel.
func NewSelectUI(sel *components.SelectData, mapID func(int) string, onStart func()) *SelectUI {
	sui := &SelectUI{
		Select:  sel,
		MapID:   mapID,
		OnStart: onStart,
	}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *SelectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	sui.normalFace = &text.GoTextFace{Source: fontSource, Size: 10}
	sui.smallFace = &text.GoTextFace{Source: fontSource, Size: 8}
}

func (sui *SelectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.MenuBackground)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.C.Title, &sui.titleFace, &widget.LabelColor{Idle: cfg.Momo}),
	))

	sui.slotLabel = sui.valueLabel()
	contentContainer.AddChild(sui.buildRow("Save:", sui.slotLabel, func(dir int) {
		systems.CycleSlot(sui.Select, dir)
	}))

	sui.characterLabel = sui.valueLabel()
	contentContainer.AddChild(sui.buildRow("Character:", sui.characterLabel, func(dir int) {
		systems.CycleCharacter(sui.Select, dir)
	}))
	sui.abilityLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{Idle: cfg.Haizakura}),
	)
	contentContainer.AddChild(sui.abilityLabel)

	sui.levelLabel = sui.valueLabel()
	contentContainer.AddChild(sui.buildRow("Start:", sui.levelLabel, func(dir int) {
		systems.CycleLevel(sui.Select, dir)
	}))

	contentContainer.AddChild(sui.buildButtonsContainer())

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows: Choose   Backspace: Slot   Enter: Start", &sui.smallFace, &widget.LabelColor{Idle: cfg.Haizakura}),
	))

	rootContainer.AddChild(contentContainer)
	sui.UI = &ebitenui.UI{Container: rootContainer}
}

func (sui *SelectUI) valueLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{Idle: cfg.Kohaku}),
	)
}

// buildRow lays out a caption, a value and a pair of cycle buttons.
func (sui *SelectUI) buildRow(caption string, value *widget.Label, cycle func(dir int)) *widget.Container {
	padding := widget.Insets{Top: 2, Bottom: 2, Left: 4, Right: 4}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.MenuRowBackground)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(caption, &sui.normalFace, &widget.LabelColor{Idle: cfg.White}),
	))
	row.AddChild(sui.smallButton("<", func() { cycle(-1) }))
	row.AddChild(value)
	row.AddChild(sui.smallButton(">", func() { cycle(1) }))
	return row
}

func (sui *SelectUI) smallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(18, 16)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.Kohaku,
			Pressed: cfg.Haizakura,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func (sui *SelectUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	resetButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 22)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Reset Slot", &sui.smallFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.Akane,
			Pressed: cfg.Haizakura,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ResetSlot(sui.Select)
			sui.UpdateUI()
		}),
	)
	container.AddChild(resetButton)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 22)),
		widget.ButtonOpts.Image(sui.startButtonImage()),
		widget.ButtonOpts.Text("START", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   cfg.Sakura,
			Pressed: cfg.Haizakura,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnStart != nil {
				sui.OnStart()
			}
		}),
	)
	container.AddChild(startButton)
	return container
}

func (sui *SelectUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (sui *SelectUI) startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{140, 40, 46, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{183, 40, 46, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{110, 30, 36, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// UpdateUI refreshes every label from the selection.
func (sui *SelectUI) UpdateUI() {
	sel := sui.Select
	if sel.Save == nil {
		return
	}
	if sui.slotLabel != nil {
		sui.slotLabel.Label = systems.SlotLabel(sel)
	}
	if sui.characterLabel != nil {
		sui.characterLabel.Label = sel.Character
	}
	if sui.abilityLabel != nil {
		sui.abilityLabel.Label = systems.AbilityLabel(sel)
	}
	if sui.levelLabel != nil {
		id := ""
		if sui.MapID != nil {
			id = sui.MapID(sel.Level)
		}
		sui.levelLabel.Label = systems.LevelLabel(sel, id)
	}
}

// Update calls the UI's Update method
func (sui *SelectUI) Update() {
	sui.UI.Update()
	// labels are filled on the first frame, after the widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
