package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/fishsprite/internal/fish"
	"github.com/appengine-ltd/fishsprite/internal/species"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSpeciesListsBuiltIns(t *testing.T) {
	out, err := runCLI(t, "species")
	if err != nil {
		t.Fatalf("species: %v", err)
	}
	if !strings.Contains(out, "yellow_perch") || !strings.Contains(out, "TROPHY") {
		t.Fatalf("unexpected listing:\n%s", out)
	}
}

func TestSpeciesYAMLDumpLoadsBack(t *testing.T) {
	out, err := runCLI(t, "species", "--yaml")
	if err != nil {
		t.Fatalf("species --yaml: %v", err)
	}
	descs, err := species.ParseFile([]byte(out))
	if err != nil {
		t.Fatalf("parse dump: %v", err)
	}
	if len(descs) != 1 || descs[0].ID != species.YellowPerchID {
		t.Fatalf("unexpected dump %+v", descs)
	}
}

func TestStatsJSON(t *testing.T) {
	out, err := runCLI(t, "stats", "yellow perch", "1", "--json", "-n", "50", "--seed", "5")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var got []fish.Summary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(got) != 50 {
		t.Fatalf("expected 50 summaries, got %d", len(got))
	}
	for _, s := range got {
		if s.LengthIn != 10 || s.AgeYears < 3 || s.AgeYears > 5 || s.Size != "MEDIUM" {
			t.Fatalf("unexpected summary %+v", s)
		}
	}
}

func TestStatsRejectsBadInput(t *testing.T) {
	if _, err := runCLI(t, "stats", "yellow_perch", "heavy"); err == nil {
		t.Fatalf("expected weight parse error")
	}
	if _, err := runCLI(t, "stats", "yellow_perch", "-2"); err == nil {
		t.Fatalf("expected negative weight error")
	}
	_, err := runCLI(t, "stats", "yelow_perch", "1")
	if err == nil || !strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("expected suggestion, got %v", err)
	}
}

func TestLengthSeries(t *testing.T) {
	d := species.YellowPerch()
	series, err := lengthSeries(&d, 1, 8, 2)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if series[0] != 10 || series[1] != 20 {
		t.Fatalf("unexpected series %v", series)
	}
	if _, err := lengthSeries(&d, 2, 1, 10); err == nil {
		t.Fatalf("expected error for inverted range")
	}
	if _, err := lengthSeries(&d, 0, 1, 1); err == nil {
		t.Fatalf("expected error for a single point")
	}
}

func TestCurvePlots(t *testing.T) {
	out, err := runCLI(t, "curve", "yellow_perch", "--points", "20")
	if err != nil {
		t.Fatalf("curve: %v", err)
	}
	if !strings.Contains(out, "Yellow Perch length") {
		t.Fatalf("expected caption in plot:\n%s", out)
	}
}

func TestRenderWritesSVGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perch.svg")
	if _, err := runCLI(t, "render", "yellow_perch", "-o", path, "--weight", "1.5", "--size", "large", "--left", "--angle", "15", "--seed", "3"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "scale(-1,1)") {
		t.Fatalf("unexpected svg:\n%s", out)
	}
}

func TestRenderPNGToStdout(t *testing.T) {
	out, err := runCLI(t, "render", "yellow_perch", "--format", "png", "--background", "none", "--seed", "3")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "\x89PNG") {
		t.Fatalf("expected png bytes on stdout")
	}
}

func TestRenderRejectsBadBackground(t *testing.T) {
	if _, err := runCLI(t, "render", "yellow_perch", "--background", "lake", "--seed", "3"); err == nil {
		t.Fatalf("expected background parse error")
	}
}

func TestTraceSummary(t *testing.T) {
	out, err := runCLI(t, "trace", "yellow_perch", "--summary", "--seed", "1")
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	for _, want := range []string{"fill_ellipse   2", "fill_rect      7", "fill_path      1", "fill_triangle  3", "save           1", "restore        1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestConfigFileFeedsCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "fishsprite.yaml")
	cfg := "width: 64\nheight: 32\nformat: svg\nseed: 8\nsize: small\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	out, err := runCLI(t, "render", "yellow_perch", "--config", cfgPath)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `width="64"`) || !strings.Contains(out, "translate(32,16)") {
		t.Fatalf("expected config canvas in svg:\n%s", out)
	}
}
