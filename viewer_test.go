package main

import (
	"testing"

	"github.com/milk9111/splatter/config"
	"github.com/milk9111/splatter/splatter"
)

func TestViewerPanelButtons(t *testing.T) {
	g := &Game{cfg: config.Default()}
	v := newViewerUI(g)
	if v.ui == nil || v.panel == nil {
		t.Fatalf("expected a UI and a panel")
	}

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"effects", len(v.effects), splatter.EffectCount},
		{"sizes", len(v.sizes), splatter.SizeCount},
		{"actions", len(v.actions), 2},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("%s: expected %d buttons, got %d", c.name, c.want, c.got)
		}
	}
}

func TestViewerControls(t *testing.T) {
	cfg := config.Default()
	cfg.MaxSplatters = 2
	g := &Game{cfg: cfg}

	g.selectEffect(3)
	g.selectSize(splatter.Large)
	for i := 0; i < 3; i++ {
		g.spawn(float64(i), 0)
	}
	if len(g.splatters) != 2 {
		t.Fatalf("expected spawn to cap at 2 splatters, got %d", len(g.splatters))
	}
	if a := g.splatters[0]; a.X != 1 || a.Effect != 3 || a.Size != splatter.Large {
		t.Fatalf("expected oldest splatter dropped, got %+v", a)
	}

	g.clear()
	if len(g.splatters) != 0 {
		t.Fatalf("expected clear to remove all splatters")
	}
}
