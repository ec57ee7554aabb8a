package svgdraw

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestGroupsBalanceAcrossSaveRestore(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 100, 50)
	s.Save()
	s.Translate(50, 25)
	s.Scale(-1, 1)
	s.Rotate(0.5)
	s.SetFillStyle(color.RGBA{R: 0xd4, G: 0xa0, B: 0x17, A: 255}, 1)
	s.FillEllipse(0, 0, 40, 17)
	s.Restore()
	s.Close()

	out := buf.String()
	opened := strings.Count(out, "<g ")
	closed := strings.Count(out, "</g>")
	if opened != 3 || closed != 3 {
		t.Fatalf("expected 3 balanced groups, got %d open / %d closed", opened, closed)
	}
	if !strings.Contains(out, "fill:#d4a017") {
		t.Fatalf("expected fill colour in output:\n%s", out)
	}
	if !strings.Contains(out, "scale(-1,1)") {
		t.Fatalf("expected mirror transform in output")
	}
}

func TestCloseEndsOpenGroupsOnce(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 10, 10)
	s.Translate(1, 1)
	s.Save()
	s.Translate(2, 2)
	s.Close()
	s.Close()

	out := buf.String()
	if strings.Count(out, "</g>") != 2 {
		t.Fatalf("expected both groups closed:\n%s", out)
	}
	if strings.Count(out, "</svg>") != 1 {
		t.Fatalf("expected a single document end")
	}
}

func TestFillPathUsesBuiltPath(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, 10, 10)
	s.SetFillStyle(color.Black, 0.5)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(4, 2)
	s.LineTo(4, -2)
	s.ClosePath()
	s.FillPath()
	s.FillPath()
	s.Close()

	out := buf.String()
	if strings.Count(out, `d="M0,0 L4,2 L4,-2 Z"`) != 1 {
		t.Fatalf("expected the built path exactly once:\n%s", out)
	}
	if !strings.Contains(out, "fill-opacity:0.50") {
		t.Fatalf("expected half opacity:\n%s", out)
	}
}
