package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bingpaper/internal/assign"
	"bingpaper/internal/logging"
	"bingpaper/internal/runlock"
)

type rootOptions struct {
	fetchNew bool
	global   bool
	list     bool
	index    int
	screen   int
}

func newRootCommand() *cobra.Command {
	return newRootCommandWithContext(newCommandContext())
}

func newRootCommandWithContext(ctx *commandContext) *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:   "bingpaper",
		Short: "Set the desktop wallpaper from the Bing daily picture",
		Long: `Fetch the Bing daily picture into the picture directory and set it as the
wallpaper of one monitor. Without flags a random cached picture is used.

The picture directory comes from BING_PAPER_HOME or paths.picture_dir.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list && !opts.fetchNew && !opts.global {
				return runList(cmd, ctx)
			}
			return runApply(cmd, ctx, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&opts.fetchNew, "new", "n", false, "Download the newest picture (day offset from --index) and apply it")
	flags.BoolVarP(&opts.global, "global", "g", false, "Like --new but from the international feed")
	flags.BoolVarP(&opts.list, "list", "l", false, "List cached pictures")
	flags.IntVarP(&opts.index, "index", "i", 0, "Picture number from --list, or day offset with --new/--global")
	flags.IntVarP(&opts.screen, "screen", "s", 0, "Target screen index")
	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newScreensCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runApply(cmd *cobra.Command, ctx *commandContext, opts rootOptions) error {
	comp, err := ctx.components(cmd)
	if err != nil {
		return err
	}

	lock, err := runlock.Acquire(comp.cfg.LockPath())
	if err != nil {
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			comp.logger.Warn("release run lock", logging.Error(err))
		}
	}()

	var result assign.Result
	switch {
	case opts.fetchNew || opts.global:
		if err := comp.store.EnsureDir(); err != nil {
			return err
		}
		if opts.fetchNew {
			result, err = comp.service.ApplyNewest(cmd.Context(), opts.index, opts.screen)
		} else {
			result, err = comp.service.ApplyNewestGlobal(cmd.Context(), opts.index, opts.screen)
		}
	case opts.index != 0:
		result, err = comp.service.ApplyBySelection(cmd.Context(), opts.index, opts.screen)
	default:
		result, err = comp.service.ApplyRandom(cmd.Context(), opts.screen)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "screen%d: %s\n", result.ScreenIndex, result.Picture.Path)
	return nil
}

func runList(cmd *cobra.Command, ctx *commandContext) error {
	comp, err := ctx.components(cmd)
	if err != nil {
		return err
	}
	pictures, err := comp.store.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !shouldColorize(out) {
		for i, p := range pictures {
			fmt.Fprintf(out, "%d: %s\n", i+1, p.Path)
		}
		return nil
	}

	if len(pictures) == 0 {
		fmt.Fprintf(out, "No pictures in %s\n", comp.store.Dir())
		return nil
	}
	rows := make([][]string, 0, len(pictures))
	for i, p := range pictures {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), p.Name})
	}
	fmt.Fprintln(out, renderTable([]string{"#", "Picture"}, rows, []columnAlignment{alignRight, alignLeft}))
	fmt.Fprintf(out, "%d picture(s) in %s\n", len(pictures), comp.store.Dir())
	return nil
}
