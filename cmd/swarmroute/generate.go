package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/swarmroute/export"
)

func (a *app) generateCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a city and write it as an unsolved snapshot",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			g, _, err := a.loadMap("")
			if err != nil {
				return err
			}
			s := export.New(g, nil, nil)
			s.Status = export.StatusPending
			if output == "" {
				output = a.cfg.Output
			}
			if err := s.WriteFile(output); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "city %dx%d written to %s (run %s)\n", g.Width, g.Height, output, s.RunID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "snapshot file (default from config)")
	return cmd
}
