// Package cli wires the portfolio server and its maintenance commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// App holds flags shared by every command.
type App struct {
	ConfigPath string
}

func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Portfolio site with a server-driven guided tour",
		Long: `Serves the portfolio pages, the contact form, the chatbot and the
guided tour websocket.

Configuration comes from the environment (and .env), or from a YAML file
passed with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(
		newServeCommand(app),
		newCheckTourCommand(app),
		newStepsCommand(app),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(&App{})
	if err := root.ExecuteContext(ctx); err != nil {
		if code, ok := IsExitError(err); ok {
			return code
		}
		fmt.Fprintln(os.Stderr, failStyle.Render("error:"), err)
		return 1
	}
	return 0
}
