package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/fishsprite/internal/biology"
	"github.com/appengine-ltd/fishsprite/internal/draw/ggdraw"
	"github.com/appengine-ltd/fishsprite/internal/fish"
	"github.com/appengine-ltd/fishsprite/internal/species"
	"github.com/appengine-ltd/fishsprite/pkg/logger"
)

type ViewerConfig struct {
	Species *species.Descriptor
	Weight  float64
	Seed    int64
	// Cols and Rows size the fish pane in terminal cells.
	Cols int
	Rows int
}

type Viewer struct {
	cfg ViewerConfig
}

func NewViewer(cfg ViewerConfig) *Viewer {
	return &Viewer{cfg: cfg}
}

func (v *Viewer) Run() error {
	m, err := newViewerModel(v.cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// --- Styles (lake) ---
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("153"))
	paneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("31"))
)

const (
	weightStep = 0.1
	angleStep  = math.Pi / 24
	maxAngle   = math.Pi / 4
)

type viewerModel struct {
	desc  *species.Descriptor
	fish  *fish.Fish
	src   *biology.Rand
	popup bool
	age   int
	cols  int
	rows  int
}

func newViewerModel(cfg ViewerConfig) (viewerModel, error) {
	if cfg.Species == nil {
		return viewerModel{}, fmt.Errorf("viewer needs a species")
	}
	cols := clampInt(cfg.Cols, 24, 120)
	rows := clampInt(cfg.Rows, 8, 40)

	m := viewerModel{
		desc: cfg.Species,
		src:  biology.NewRand(cfg.Seed),
		cols: cols,
		rows: rows,
	}
	weight := cfg.Weight
	if weight <= 0 {
		r, _ := cfg.Species.Size(species.SizeMedium)
		weight = biology.RandomWeight(m.src, r.MinWeight, r.MaxWeight)
	}
	if err := m.setWeight(weight); err != nil {
		return viewerModel{}, err
	}
	return m, nil
}

func (m *viewerModel) setWeight(weight float64) error {
	weight = math.Round(weight*100) / 100
	if weight < 0.01 {
		weight = 0.01
	}
	f, err := fish.New(m.desc, weight, m.desc.Classify(weight), float64(m.cols)/2, float64(m.rows))
	if err != nil {
		return err
	}
	if m.fish != nil {
		f.FacingRight = m.fish.FacingRight
		f.Angle = m.fish.Angle
	}
	m.fish = f
	m.age = f.BiologicalAge(m.src)
	logger.Log.WithField("weight", weight).Debug("viewer weight changed")
	return nil
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "left", "h":
		m.fish.FacingRight = false
	case "right", "l":
		m.fish.FacingRight = true
	case "up", "k":
		m.fish.Angle = math.Max(-maxAngle, m.fish.Angle-angleStep)
	case "down", "j":
		m.fish.Angle = math.Min(maxAngle, m.fish.Angle+angleStep)
	case "+", "=":
		_ = m.setWeight(m.fish.Weight + weightStep)
	case "-", "_":
		_ = m.setWeight(m.fish.Weight - weightStep)
	case "r":
		m.age = m.fish.BiologicalAge(m.src)
	case "p", " ":
		m.popup = !m.popup
	}
	return m, nil
}

func (m viewerModel) View() string {
	var out strings.Builder
	out.WriteString(titleStyle.Render(m.desc.Name))
	if m.desc.Scientific != "" {
		out.WriteString(dimStyle.Render("  " + m.desc.Scientific))
	}
	out.WriteString("\n")

	out.WriteString(paneStyle.Render(strings.TrimRight(m.frame(), "\n")))
	out.WriteString("\n")

	out.WriteString(statStyle.Render(fmt.Sprintf(
		"weight %.2f lb   length %d in   age ~%d yr   size %s",
		m.fish.Weight, m.fish.Length(), m.age, m.fish.Size,
	)))
	out.WriteString("\n")
	mode := "on field"
	if m.popup {
		mode = "catch popup"
	}
	out.WriteString(dimStyle.Render(fmt.Sprintf("mode: %s   angle %.0f°", mode, m.fish.Angle*180/math.Pi)))
	out.WriteString("\n\n")
	out.WriteString(dimStyle.Render("←/→ face  ↑/↓ tilt  +/- weight  r re-roll age  p popup  q quit"))
	out.WriteString("\n")
	return out.String()
}

// frame rasterises the fish into the pane, two pixel rows per text row.
func (m viewerModel) frame() string {
	w, h := m.cols, m.rows*2
	s := ggdraw.New(w, h)
	bodySize := bodySizeFor(m.fish, w, h)

	var err error
	if m.popup {
		s.Save()
		s.Translate(float64(w)/2, float64(h)/2)
		err = m.fish.RenderAt(s, bodySize)
		s.Restore()
	} else {
		f := *m.fish
		f.X, f.Y = float64(w)/2, float64(h)/2
		err = f.Render(s, bodySize)
	}
	if err != nil {
		return err.Error()
	}
	return ggdraw.ANSIHalfBlocks(s.Image())
}

// bodySizeFor scales the species body size to fit a w×h pixel pane. The
// silhouette spans about 3.3 body sizes nose to tail and 2 vertically.
func bodySizeFor(f *fish.Fish, w, h int) float64 {
	fit := math.Min(float64(w)/3.4, float64(h)/2.2)
	trophy, ok := f.Species.Size(species.SizeTrophy)
	if !ok || trophy.BodySize <= 0 {
		return fit
	}
	return fit * f.BodySize() / trophy.BodySize
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
