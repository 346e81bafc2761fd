package main

import (
	"fmt"

	"github.com/milk9111/splatter/splatter"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *options) *cobra.Command {
	var (
		ff   frameFlags
		x, y float64
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the frame and top-left anchor for a splatter draw",
		Args:  cobra.NoArgs,
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

			id := splatter.EffectID(ff.effect)
			bmp, at := r.Resolve(id, ff.frame, size, x, y)
			fmt.Fprintf(cmd.OutOrStdout(), "effect=%d frame=%d size=%v bitmap=%dx%d anchor=%d,%d\n",
				r.Splatter(id).ID, splatter.ClampFrame(ff.frame), size, bmp.Width(), bmp.Height(), at.X, at.Y)
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().Float64Var(&x, "x", 0, "target center x")
	cmd.Flags().Float64Var(&y, "y", 0, "target center y")
	return cmd
}
