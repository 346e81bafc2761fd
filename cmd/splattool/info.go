package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/milk9111/splatter/splatter"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Decode every splatter and print frame dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.registry()
			if err != nil {
				return err
			}
			start := time.Now()
			if err := warm(r); err != nil {
				return err
			}
			elapsed := time.Since(start)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EFFECT\tSIZE\tFRAMES\tDIMENSIONS\tANCHOR OFFSET")
			for id := splatter.EffectID(0); id < splatter.EffectCount; id++ {
				s := r.Splatter(id)
				for _, size := range []splatter.Size{splatter.Regular, splatter.Large} {
					fs := s.Frames(size)
					first := fs.Frame(0)
					fmt.Fprintf(w, "%d\t%v\t%d\t%dx%d\t-%d\n", id, size, fs.Len(), first.Width(), first.Height(), size.HalfExtent())
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "decoded %d frames in %s\n", r.Cache().Decodes(), elapsed.Round(time.Millisecond))
			return nil
		},
	}
}

// warm decodes everything, turning a decode panic from a bad table into an
// error for the command line.
func warm(r *splatter.Registry) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
		}
	}()
	r.WarmAll()
	return nil
}
