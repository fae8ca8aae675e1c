package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/gallery/internal/app"
	"github.com/five82/gallery/internal/filter"
	"github.com/five82/gallery/internal/htmlview"
	"github.com/five82/gallery/internal/logtail"
	"github.com/five82/gallery/internal/view"
)

// withEnv runs fn over a wired Env and closes it afterwards.
func withEnv(opts *app.Options, fn func(env *app.Env) error) error {
	env, err := app.Setup(*opts)
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(env)
}

func newListCmd(opts *app.Options) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List programs matching a search query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return withEnv(opts, func(env *app.Env) error {
				list := filter.Apply(env.Catalog.All(), query, lang)
				out := cmd.OutOrStdout()
				if len(list) == 0 {
					fmt.Fprintf(out, "%s. %s\n", view.EmptyTitle, view.EmptyHint)
					return nil
				}
				rows := make([][]string, 0, len(list))
				for _, card := range view.Cards(list).Cards {
					rows = append(rows, []string{card.ID, card.Lang, card.Title, card.Description})
				}
				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers("ID", "LANG", "TITLE", "DESCRIPTION").
					Rows(rows...)
				fmt.Fprintln(out, t.String())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&lang, "lang", filter.AllLanguages, "only list programs in this language")
	return cmd
}

func newLangsCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List the languages in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(opts, func(env *app.Env) error {
				for _, lang := range env.Controller.Languages() {
					fmt.Fprintln(cmd.OutOrStdout(), view.Sanitize(lang))
				}
				return nil
			})
		},
	}
}

func newShowCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a program's code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(opts, func(env *app.Env) error {
				p, ok := env.Catalog.Lookup(args[0])
				if !ok {
					return fmt.Errorf("unknown program %q", args[0])
				}
				_, err := io.WriteString(cmd.OutOrStdout(), p.Code+"\n")
				return err
			})
		},
	}
}

func newSaveCmd(opts *app.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "save <id>",
		Short: "Save a program's code to <title>.txt in the download dir",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(opts, func(env *app.Env) error {
				if _, ok := env.Catalog.Lookup(args[0]); !ok {
					return fmt.Errorf("unknown program %q", args[0])
				}
				notice, err := env.Controller.Download(args[0])
				if err != nil {
					return fmt.Errorf("save %s: %w", args[0], err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", notice.Message, notice.Path)
				return nil
			})
		},
	}
}

func newExportCmd(opts *app.Options) *cobra.Command {
	var outPath, query, lang string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the card list as an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(opts, func(env *app.Env) error {
				list := filter.Apply(env.Catalog.All(), query, lang)
				pageOpts := htmlview.Options{Theme: string(env.Controller.State().Theme)}

				if outPath == "" || outPath == "-" {
					return htmlview.RenderCards(cmd.OutOrStdout(), list, pageOpts)
				}
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				if err := htmlview.RenderCards(f, list, pageOpts); err != nil {
					_ = f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close %s: %w", outPath, err)
				}
				env.Logger.Info("exported cards", zap.String("path", outPath), zap.Int("cards", len(list)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, stdout when empty or -")
	cmd.Flags().StringVar(&query, "query", "", "search query applied before export")
	cmd.Flags().StringVar(&lang, "lang", filter.AllLanguages, "language applied before export")
	return cmd
}

func newLogCmd(opts *app.Options) *cobra.Command {
	var lines int
	var plain bool
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the last entries of the gallery log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(opts, func(env *app.Env) error {
				raw, err := logtail.Read(env.Config.LogPath, lines)
				if err != nil {
					return err
				}
				for _, line := range logtail.FormatLines(raw, !plain) {
					fmt.Fprintln(cmd.OutOrStdout(), line)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of entries to show, 0 for all")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}
