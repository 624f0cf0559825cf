package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVisCommand(t *testing.T) {
	path := writeGraph(t)
	out := filepath.Join(t.TempDir(), "chart.html")

	if _, err := execute(t, "vis", "--graph", path, "--seed", "a", "--out", out); err != nil {
		t.Fatal(err)
	}

	page, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	html := string(page)
	for _, want := range []string{"<html", "seed: a", "distrusted"} {
		if !strings.Contains(html, want) {
			t.Errorf("chart is missing %q", want)
		}
	}
	// every node of the graph is drawn
	for _, id := range []string{"b", "c", "d", "e"} {
		if !strings.Contains(html, `"`+id+`"`) {
			t.Errorf("chart is missing node %q", id)
		}
	}
}

func TestVisUnwritableOut(t *testing.T) {
	path := writeGraph(t)
	out := filepath.Join(t.TempDir(), "missing", "chart.html")

	if _, err := execute(t, "vis", "--graph", path, "--seed", "a", "--out", out); err == nil {
		t.Error("Expected an error for an output path in a missing directory")
	}
}
