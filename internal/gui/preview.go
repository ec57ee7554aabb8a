//go:build cgo

// Package gui is the raylib preview window: one fish on a lake backdrop, with
// the catch popup on demand.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/fishsprite/internal/biology"
	"github.com/appengine-ltd/fishsprite/internal/draw/rldraw"
	"github.com/appengine-ltd/fishsprite/internal/fish"
	"github.com/appengine-ltd/fishsprite/internal/species"
	"github.com/appengine-ltd/fishsprite/internal/ui/theme"
	"github.com/appengine-ltd/fishsprite/pkg/logger"
)

type PreviewConfig struct {
	Species *species.Descriptor
	Size    species.SizeCategory
	Weight  float64
	Seed    int64
	Width   int32
	Height  int32
	// Scale multiplies the species body size so small fish stay visible.
	Scale float64
}

type Preview struct {
	cfg     PreviewConfig
	src     *biology.Rand
	fish    *fish.Fish
	surface *rldraw.Surface
	popup   bool
	summary fish.Summary
	width   int32
	height  int32
}

func NewPreview(cfg PreviewConfig) (*Preview, error) {
	if cfg.Species == nil {
		return nil, fmt.Errorf("preview needs a species")
	}
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}

	p := &Preview{
		cfg:     cfg,
		src:     biology.NewRand(cfg.Seed),
		surface: rldraw.New(),
		width:   cfg.Width,
		height:  cfg.Height,
	}

	var (
		f   *fish.Fish
		err error
	)
	if cfg.Weight > 0 {
		f, err = fish.New(cfg.Species, cfg.Weight, cfg.Species.Classify(cfg.Weight), 0, 0)
	} else {
		f, err = fish.Spawn(cfg.Species, cfg.Size, p.src, 0, 0)
	}
	if err != nil {
		return nil, err
	}
	p.fish = f
	p.summary = f.Summary(p.src)
	return p, nil
}

func (p *Preview) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(p.width, p.height, "fishsprite: "+p.cfg.Species.Name)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)

	logger.Log.WithField("species", p.cfg.Species.ID).Info("preview window opened")

	for !rl.WindowShouldClose() {
		p.width = int32(rl.GetScreenWidth())
		p.height = int32(rl.GetScreenHeight())

		if p.update() {
			break
		}

		rl.BeginDrawing()
		rl.ClearBackground(theme.Water)
		p.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

// update handles input and reports whether the window should close.
func (p *Preview) update() bool {
	switch {
	case rl.IsKeyPressed(rl.KeyEscape), rl.IsKeyPressed(rl.KeyQ):
		return true
	case rl.IsKeyPressed(rl.KeyLeft):
		p.fish.FacingRight = false
	case rl.IsKeyPressed(rl.KeyRight):
		p.fish.FacingRight = true
	case rl.IsKeyPressed(rl.KeySpace), rl.IsKeyPressed(rl.KeyEnter):
		p.popup = !p.popup
		if p.popup {
			p.summary = p.fish.Summary(p.src)
		}
	case rl.IsKeyPressed(rl.KeyR):
		size := p.cfg.Species.Classify(p.fish.Weight)
		f, err := fish.Spawn(p.cfg.Species, size, p.src, 0, 0)
		if err == nil {
			f.FacingRight = p.fish.FacingRight
			f.Angle = p.fish.Angle
			p.fish = f
			p.summary = f.Summary(p.src)
		}
	}

	if rl.IsKeyDown(rl.KeyUp) {
		p.fish.Angle = math.Max(-math.Pi/4, p.fish.Angle-0.02)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		p.fish.Angle = math.Min(math.Pi/4, p.fish.Angle+0.02)
	}
	return false
}

func (p *Preview) draw() {
	l := previewLayout(p.width, p.height)
	bodySize := p.fish.BodySize() * p.cfg.Scale

	drawWaterBands(l.Field)

	p.fish.X, p.fish.Y = float64(l.FishX), float64(l.FishY)
	if err := p.fish.Render(p.surface, bodySize); err != nil {
		theme.DrawHintText(err.Error(), int32(l.Field.X)+12, int32(l.Field.Y)+12)
	}

	theme.DrawHintText("←/→ face   ↑/↓ tilt   space catch popup   r respawn   q quit", int32(l.Field.X)+12, p.height-28)

	if !p.popup {
		return
	}
	theme.DrawCatchCard(l.Popup, l.PopupFishY)
	theme.DrawHeader("Caught a "+p.summary.Name+"!", int32(l.Popup.X)+24, int32(l.Popup.Y)+18)

	p.surface.Save()
	p.surface.Translate(float64(l.PopupFishX), float64(l.PopupFishY))
	if err := p.fish.RenderAt(p.surface, p.fish.BodySize()*p.cfg.Scale*0.8); err != nil {
		logger.Log.WithError(err).Warn("popup render failed")
	}
	p.surface.Restore()

	lines := []string{
		fmt.Sprintf("Weight  %.2f lb", p.summary.WeightLb),
		fmt.Sprintf("Length  %d in", p.summary.LengthIn),
		fmt.Sprintf("Age     ~%d years", p.summary.AgeYears),
		fmt.Sprintf("Size    %s", p.summary.Size),
	}
	y := int32(l.Popup.Y + l.Popup.Height - 24 - float32(len(lines))*float32(theme.Type.Body+6))
	for _, line := range lines {
		theme.DrawBodyText(line, int32(l.Popup.X)+24, y)
		y += theme.Type.Body + 6
	}
}

func drawWaterBands(field rl.Rectangle) {
	bands := int32(6)
	bandH := field.Height / float32(bands)
	for i := int32(0); i < bands; i++ {
		shade := theme.Mix(theme.Water, theme.DeepWater, float32(i)/float32(bands-1))
		rl.DrawRectangleRec(rl.NewRectangle(field.X, field.Y+float32(i)*bandH, field.Width, bandH+1), shade)
	}
}
