package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tauqeerkhan/portfolio/internal/config"
	"github.com/tauqeerkhan/portfolio/internal/content"
)

func newStepsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "steps [variant]",
		Short: "List the guided tour steps and their reading times",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(app.ConfigPath)
			if err != nil {
				return err
			}
			variant := cfg.Site.Variant
			if len(args) == 1 {
				variant = args[0]
			}
			return printSteps(cmd.OutOrStdout(), variant, cfg.Tour)
		},
	}
}

func printSteps(out io.Writer, variant string, overrides config.TourConfig) error {
	t, err := tourResolver(variant, overrides)("")
	if err != nil {
		return err
	}
	v, err := content.Lookup(variant)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s tour, %d steps", v.Owner, t.Catalog.Len())))
	for i, st := range t.Catalog.Steps() {
		// ReadTime is the shown estimate; narration without voice waits ReadingTime.
		timed := t.Timing.ReadingTime(st.Narration)
		fmt.Fprintf(out, "%2d. %-14s %-14s %s\n", i+1, st.ID, "#"+st.Section,
			mutedStyle.Render(fmt.Sprintf("estimate %s, narrated %s", st.ReadTime, timed)))
		fmt.Fprintf(out, "    %s\n", st.Title)
	}
	return nil
}
