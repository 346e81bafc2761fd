package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/milk9111/splatter/splatter"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

func newExportCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every decoded splatter frame as a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.registry()
			if err != nil {
				return err
			}
			if err := warm(r); err != nil {
				return err
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			n := 0
			for id := splatter.EffectID(0); id < splatter.EffectCount; id++ {
				for _, size := range []splatter.Size{splatter.Regular, splatter.Large} {
					fs := r.Splatter(id).Frames(size)
					for i := 0; i < fs.Len(); i++ {
						path := filepath.Join(out, frameFileName(id, size, i))
						if err := writePNG(path, fs.Frame(i)); err != nil {
							return err
						}
						n++
					}
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", n, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "splatters", "output directory")
	return cmd
}

func frameFileName(id splatter.EffectID, size splatter.Size, frame int) string {
	return fmt.Sprintf("splatter_%d_%v_%d.png", id, size, frame)
}

func writePNG(path string, bmp *splatter.Bitmap) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, bmp.NRGBA()); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, &buf); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
