package main

import (
	"github.com/milk9111/splatter/assets"
	"github.com/milk9111/splatter/splatter"
	"github.com/spf13/cobra"
)

type options struct {
	table string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "splattool",
		Short:         "Inspect, export and preview splatter assets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.table, "table", "", "splatter table yaml (default: embedded table)")

	root.AddCommand(
		newInfoCmd(opts),
		newResolveCmd(opts),
		newExportCmd(opts),
		newPreviewCmd(opts),
	)
	return root
}

// registry builds a private registry over the selected table so decode
// failures in a custom table surface here, not in the shared one.
func (o *options) registry() (*splatter.Registry, error) {
	if o.table == "" {
		return splatter.NewRegistry(splatter.NewCache(assets.Splatters())), nil
	}
	tbl, err := assets.LoadTable(o.table)
	if err != nil {
		return nil, err
	}
	return splatter.NewRegistry(splatter.NewCache(tbl)), nil
}

// frameFlags are shared by the commands that address a single frame.
type frameFlags struct {
	effect int
	frame  int
	size   string
}

func (f *frameFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.effect, "effect", "e", 0, "effect id")
	cmd.Flags().IntVarP(&f.frame, "frame", "f", 0, "frame index (past the end holds the last frame)")
	cmd.Flags().StringVarP(&f.size, "size", "s", "regular", "size variant: regular or large")
}
