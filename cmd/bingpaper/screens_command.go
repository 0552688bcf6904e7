package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newScreensCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List addressable screens and their current wallpaper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			outputs, err := comp.service.Outputs(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(outputs))
			for i, output := range outputs {
				current, err := comp.backend.Current(cmd.Context(), output)
				if err != nil {
					current = "unknown (" + err.Error() + ")"
				}
				rows = append(rows, []string{strconv.Itoa(i), string(output), current})
			}

			if !shouldColorize(out) {
				for _, row := range rows {
					fmt.Fprintf(out, "screen%s: %s %s\n", row[0], row[1], row[2])
				}
				return nil
			}
			if len(rows) == 0 {
				fmt.Fprintf(out, "No screens reported by the %s backend\n", comp.backend.Name())
				return nil
			}
			fmt.Fprintln(out, renderTable([]string{"Screen", "Output", "Current"}, rows, []columnAlignment{alignRight}))
			return nil
		},
	}
}
