package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/splatter/splatter"
	"github.com/milk9111/splatter/termview"
	"github.com/spf13/cobra"
)

func newPreviewCmd(opts *options) *cobra.Command {
	var ff frameFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show splatter frames in the terminal",
		Long: `Show splatter frames in the terminal.

Keys: left/right frame, up/down effect, space size, q or esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := splatter.ParseSize(ff.size)
			if err != nil {
				return err
			}
			r, err := opts.registry()
			if err != nil {
				return err
			}
			if err := warm(r); err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			p := &previewer{
				registry: r,
				effect:   splatter.EffectID(ff.effect),
				frame:    splatter.ClampFrame(ff.frame),
				size:     size,
			}
			p.run(screen)
			return nil
		},
	}
	ff.register(cmd)
	return cmd
}

type previewer struct {
	registry *splatter.Registry
	effect   splatter.EffectID
	frame    int
	size     splatter.Size
}

// run draws and handles keys until the user quits.
func (p *previewer) run(screen tcell.Screen) {
	for {
		p.draw(screen)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if !p.handleKey(ev) {
				return
			}
		case nil:
			return
		}
	}
}

// handleKey applies one key press and reports whether to keep running.
func (p *previewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		p.frame = splatter.ClampFrame(p.frame + 1)
	case tcell.KeyLeft:
		p.frame = splatter.ClampFrame(p.frame - 1)
	case tcell.KeyUp:
		p.effect = (p.effect.Normalize() + 1) % splatter.EffectCount
	case tcell.KeyDown:
		p.effect = (p.effect.Normalize() + splatter.EffectCount - 1) % splatter.EffectCount
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			p.size = (p.size + 1) % splatter.SizeCount
		}
	}
	return true
}

func (p *previewer) draw(screen tcell.Screen) {
	screen.Clear()
	w, h := screen.Size()
	bmp := p.registry.FrameOf(p.effect, p.frame, p.size)

	status := fmt.Sprintf("effect %d  frame %d/%d  %v %dx%d", p.registry.Splatter(p.effect).ID,
		p.frame, splatter.FrameCount-1, p.size, bmp.Width(), bmp.Height())
	for i, r := range status {
		if i >= w {
			break
		}
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Bold(true))
	}

	cols, rows := termview.Fit(bmp, w, h-1)
	termview.Draw(screen, bmp, (w-cols)/2, 1+(h-1-rows)/2, cols, rows)
	screen.Show()
}
