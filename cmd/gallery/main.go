package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/gallery/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "gallery: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command tree. Flags bind to a fresh Options per
// tree so tests can build as many as they like.
func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "gallery",
		Short: "Browse, preview and save code snippets",
		Long: `gallery is a terminal snippet gallery.

Run without a subcommand to open the interactive browser. The subcommands
work on the same catalog without a terminal UI.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.Setup(opts)
			if err != nil {
				return err
			}
			defer env.Close()
			if env.LogErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "gallery: logging disabled: %v\n", env.LogErr)
			}
			return app.RunUI(cmd.Context(), env)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/gallery/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/gallery/prefs.toml)")
	flags.StringVar(&opts.CatalogPath, "catalog", "", "catalog file (.toml, .yaml or .yml); built-in samples when empty")
	flags.StringVar(&opts.DownloadDir, "downloads", "", "directory saved programs are written to")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newListCmd(&opts),
		newLangsCmd(&opts),
		newShowCmd(&opts),
		newSaveCmd(&opts),
		newExportCmd(&opts),
		newLogCmd(&opts),
	)
	return root
}
