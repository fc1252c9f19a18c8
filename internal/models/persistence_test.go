package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseEnterpriseLine(t *testing.T) {
	e, err := ParseEnterpriseLine("[e] x:1 y:2 e:2000 s:600 t:7 |")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if e.X() != 1 || e.Y() != 2 || e.Energy() != 2000 || e.Shields() != 600 || e.TorpedoAmmo() != 7 {
		t.Errorf("Unexpected enterprise %s", e.Export())
	}
}

func TestParseEnterpriseLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"missing terminator", "[e] x:1 y:2 e:2000 s:600 t:7", ErrMalformedLine},
		{"missing key", "[e] x:1 y:2 e:2000 s:600 |", ErrMalformedLine},
		{"not a number", "[e] x:1 y:two e:2000 s:600 t:7 |", ErrMalformedLine},
		{"repeated key", "[e] x:1 x:2 y:2 e:2000 s:600 t:7 |", ErrMalformedLine},
		{"wrong prefix", "[q] x:1 y:2 e:2000 s:600 t:7 |", ErrMalformedLine},
		{"out of bounds", "[e] x:9 y:2 e:2000 s:600 t:7 |", ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseEnterpriseLine(tt.line); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseEnterpriseLineIgnoresUnknownKeys(t *testing.T) {
	if _, err := ParseEnterpriseLine("[e] x:1 y:2 e:2000 s:600 t:7 note:hello |"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestParseQuadrantLine(t *testing.T) {
	q, err := ParseQuadrantLine("[q] x:3 y:4 s:512 |", testRNG(1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.StarCount() != 5 || q.StarbaseCount() != 1 || q.KlingonCount() != 2 {
		t.Errorf("Expected 5/1/2, got %d/%d/%d", q.StarCount(), q.StarbaseCount(), q.KlingonCount())
	}
	if q.Symbol() != "512" {
		t.Errorf("Expected symbol 512, got %s", q.Symbol())
	}

	for _, bad := range []string{"[q] x:3 y:4 s:51 |", "[q] x:3 y:4 s:5a2 |", "[q] x:8 y:4 s:512 |"} {
		if _, err := ParseQuadrantLine(bad, testRNG(1)); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	SaveDir = t.TempDir()
	rng := testRNG(11)
	galaxy := NewGalaxy(rng)
	enterprise := NewEnterpriseWithStats(3, 4, 1800, 700, 6)
	data := enterprise.Export() + galaxy.Export()

	path := SavePath("slot1")
	saver := NewSaver(data, path)
	saver.Save()
	if !saver.Success() {
		t.Fatalf("Save failed: %v", saver.Err())
	}

	loader := NewLoader(path, testRNG(12))
	loader.Load()
	if !loader.Success() {
		t.Fatalf("Load failed: %v", loader.Err())
	}
	got := loader.Enterprise().Export() + loader.Galaxy().Export()
	if got != data {
		t.Errorf("Expected round trip to reproduce the save.\nwant:\n%s\ngot:\n%s", data, got)
	}
	if loader.EnterpriseLine() != strings.TrimSuffix(enterprise.Export(), "\n") {
		t.Errorf("Unexpected enterprise line %q", loader.EnterpriseLine())
	}
	if len(loader.GalaxyLines()) != QuadrantCount {
		t.Errorf("Expected %d galaxy lines, got %d", QuadrantCount, len(loader.GalaxyLines()))
	}
}

func TestLoaderMissingSections(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"no enterprise", "[q] x:0 y:0 s:100 |\n", ErrMissingEnterprise},
		{"no quadrants", "[e] x:1 y:1 e:100 s:100 t:1 |\n", ErrMissingQuadrants},
		{"empty", "", ErrMissingEnterprise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader("", testRNG(1))
			l.LoadFrom(strings.NewReader(tt.data))
			if l.Success() {
				t.Fatal("Expected load to fail")
			}
			if !errors.Is(l.Err(), tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, l.Err())
			}
			if l.Galaxy() != nil || l.Enterprise() != nil {
				t.Error("Expected no result on failure")
			}
		})
	}
}

func TestLoaderFillsMissingQuadrants(t *testing.T) {
	data := "[e] x:1 y:1 e:100 s:100 t:1 |\n[q] x:2 y:2 s:301 |\nnoise line\n"
	l := NewLoader("", testRNG(1))
	l.LoadFrom(strings.NewReader(data))
	if !l.Success() {
		t.Fatalf("Load failed: %v", l.Err())
	}
	g := l.Galaxy()
	if len(g.Quadrants()) != QuadrantCount {
		t.Errorf("Expected %d quadrants, got %d", QuadrantCount, len(g.Quadrants()))
	}
	if g.KlingonCount() != 1 {
		t.Errorf("Expected 1 Klingon, got %d", g.KlingonCount())
	}
	if g.QuadrantAt(0, 0).Symbol() != "000" {
		t.Errorf("Expected filled quadrant to be empty, got %s", g.QuadrantAt(0, 0).Symbol())
	}
}

func TestLoaderRejectsDuplicateQuadrant(t *testing.T) {
	data := "[e] x:1 y:1 e:100 s:100 t:1 |\n[q] x:2 y:2 s:301 |\n[q] x:2 y:2 s:100 |\n"
	l := NewLoader("", testRNG(1))
	l.LoadFrom(strings.NewReader(data))
	var perr *ParseError
	if !errors.As(l.Err(), &perr) {
		t.Fatalf("Expected ParseError, got %v", l.Err())
	}
	if perr.Line != 3 {
		t.Errorf("Expected line 3, got %d", perr.Line)
	}
	if !errors.Is(l.Err(), ErrInvalidQuadrant) {
		t.Errorf("Expected ErrInvalidQuadrant, got %v", l.Err())
	}
}

func TestLoaderMissingFile(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.trek"), testRNG(1))
	l.Load()
	if l.Success() || !errors.Is(l.Err(), os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", l.Err())
	}
}

func TestSaverKeepsOldFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slot.trek")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	// A directory in the way makes the rename fail.
	blocked := filepath.Join(dir, "blocked.trek")
	if err := os.MkdirAll(filepath.Join(blocked, "child"), 0755); err != nil {
		t.Fatal(err)
	}
	s := NewSaver("new", blocked)
	s.Save()
	if s.Success() {
		t.Error("Expected save over a non-empty directory to fail")
	}

	ok := NewSaver("new", path)
	ok.Save()
	if !ok.Success() {
		t.Fatalf("Save failed: %v", ok.Err())
	}
	b, _ := os.ReadFile(path)
	if string(b) != "new" {
		t.Errorf("Expected new contents, got %q", b)
	}
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("Expected no temp files left, found %s", e.Name())
		}
	}
}

func TestListSaves(t *testing.T) {
	SaveDir = filepath.Join(t.TempDir(), "saves")
	saves, err := ListSaves()
	if err != nil || len(saves) != 0 {
		t.Fatalf("Expected empty list for missing dir, got %v %v", saves, err)
	}
	for _, name := range []string{"b", "a"} {
		if err := WriteSave(SavePath(name), "x"); err != nil {
			t.Fatal(err)
		}
	}
	os.WriteFile(filepath.Join(SaveDir, "notes.txt"), []byte("x"), 0644)

	saves, err = ListSaves()
	if err != nil {
		t.Fatal(err)
	}
	if len(saves) != 2 || saves[0] != "a" || saves[1] != "b" {
		t.Errorf("Expected [a b], got %v", saves)
	}
}
