package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bingpaper/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check directories, feed reachability and the wallpaper backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := ctx.components(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			failed := 0

			printSection(out, "Environment")
			checks := preflight.RunAll(cmd.Context(), comp.cfg)
			checks = append(checks, preflight.CheckDisplay(cmd.Context(), comp.backend))
			for _, check := range checks {
				kind := statusOK
				if !check.Passed {
					kind = statusError
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(check.Name, kind, check.Detail, colorize))
			}

			statuses := preflight.CheckBackendDeps(comp.backend)
			if len(statuses) > 0 {
				fmt.Fprintln(out)
				printSection(out, "Dependencies")
			}
			for _, status := range statuses {
				kind := statusOK
				detail := status.Command
				if !status.Available {
					detail = status.Detail
					if status.Optional {
						kind = statusWarn
					} else {
						kind = statusError
						failed++
					}
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, detail, colorize))
			}

			if failed > 0 {
				return fmt.Errorf("doctor: %d check(s) failed", failed)
			}
			return nil
		},
	}
}
