package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/splatter/assets"
	"github.com/milk9111/splatter/splatter"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"regular", []string{"--x", "200", "--y", "200"}, "effect=0 frame=0 size=regular bitmap=240x240 anchor=80,80"},
		{"large", []string{"-e", "2", "-s", "large", "--x", "200", "--y", "200"}, "effect=2 frame=0 size=large bitmap=400x400 anchor=0,0"},
		{"fraction", []string{"-e", "3", "-f", "1", "--x", "150.7", "--y", "150.7"}, "effect=3 frame=1 size=regular bitmap=240x240 anchor=30,30"},
		{"overrun_and_unknown_effect", []string{"-e", "99", "-f", "9"}, "effect=0 frame=3 size=regular bitmap=240x240 anchor=-120,-120"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := run(t, append([]string{"resolve"}, c.args...)...)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if strings.TrimSpace(out) != c.want {
				t.Fatalf("expected %q, got %q", c.want, out)
			}
		})
	}
}

func TestResolveRejectsUnknownSize(t *testing.T) {
	if _, err := run(t, "resolve", "-s", "huge"); err == nil {
		t.Fatalf("expected error for unknown size")
	}
}

func TestInfoCommand(t *testing.T) {
	out, err := run(t, "info")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"240x240", "400x400", "-120", "-200", "decoded 32 frames"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestInfoReportsBadTable(t *testing.T) {
	var b strings.Builder
	b.WriteString("splatters:\n")
	for id := 0; id < splatter.EffectCount; id++ {
		fmt.Fprintf(&b, "  - id: %d\n", id)
		b.WriteString("    regular: [a, b, c, d]\n    large: [a, b, c, d]\n")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := run(t, "--table", path, "info")
	if err == nil || !strings.Contains(err.Error(), "decode asset") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	out, err := run(t, "export", "-o", dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "wrote 32 frames") {
		t.Fatalf("unexpected output %q", out)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 32 {
		t.Fatalf("expected 32 files, got %d", len(entries))
	}

	f, err := os.Open(filepath.Join(dir, frameFileName(1, splatter.Large, 3)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode exported frame: %v", err)
	}
	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 400 {
		t.Fatalf("expected 400x400, got %v", img.Bounds())
	}
}

func TestPreviewerKeys(t *testing.T) {
	r := splatter.NewRegistry(splatter.NewCache(assets.Splatters()))
	p := &previewer{registry: r, effect: 99, size: splatter.Regular}

	steps := []struct {
		ev         *tcell.EventKey
		keepGoing  bool
		wantEffect splatter.EffectID
		wantFrame  int
		wantSize   splatter.Size
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), true, 1, 0, splatter.Regular},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), true, 0, 0, splatter.Regular},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), true, 3, 0, splatter.Regular},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), true, 3, 0, splatter.Regular},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), true, 3, 1, splatter.Regular},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), true, 3, 1, splatter.Large},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), true, 3, 1, splatter.Regular},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false, 3, 1, splatter.Regular},
	}
	for i, s := range steps {
		if got := p.handleKey(s.ev); got != s.keepGoing {
			t.Fatalf("step %d: expected keepGoing=%v", i, s.keepGoing)
		}
		if p.effect != s.wantEffect || p.frame != s.wantFrame || p.size != s.wantSize {
			t.Fatalf("step %d: expected %d/%d/%v, got %d/%d/%v",
				i, s.wantEffect, s.wantFrame, s.wantSize, p.effect, p.frame, p.size)
		}
	}
}

func TestPreviewerRunsUntilQuit(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)

	r := splatter.NewRegistry(splatter.NewCache(assets.Splatters()))
	p := &previewer{registry: r, size: splatter.Large}

	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	p.run(screen)

	if p.frame != 1 {
		t.Fatalf("expected frame 1 after one right arrow, got %d", p.frame)
	}
	if got, _, _, _ := screen.GetContent(0, 0); got != 'e' {
		t.Fatalf("expected status line, got %q", got)
	}
}
