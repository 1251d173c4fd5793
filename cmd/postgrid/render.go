package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eringen/postgrid"
	"github.com/eringen/postgrid/grid"
	"github.com/eringen/postgrid/views"
)

var renderFragment string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the card grid and pager for one fragment",
	Example: `  postgrid render --fragment '#t=go&p=2'
  postgrid render --config site.yml --fragment '#p=3'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := zap.NewNop()
		if verbose {
			if logger, err = zap.NewDevelopment(); err != nil {
				return err
			}
		}

		app, err := postgrid.New(cfg, postgrid.WithLogger(logger))
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		posts, err := app.Index.Posts(ctx)
		if err != nil {
			if errors.Is(err, postgrid.ErrIndexUnavailable) {
				fmt.Fprintln(out, "<p>"+views.LoadErrorMessage+"</p>")
			}
			return err
		}
		tags, err := app.Index.Tags(ctx)
		if err != nil {
			return err
		}

		state := grid.Reduce(grid.DefaultState(), grid.Init(renderFragment))
		resp, err := postgrid.RenderGrid(ctx, posts, tags, state, cfg.PageSize, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "<!-- %s page %d/%d -->\n", resp.Fragment, resp.Page, resp.TotalPages)
		fmt.Fprintf(out, "<nav id=\"pagination\">%s</nav>\n", resp.Pager)
		fmt.Fprintf(out, "<div id=\"post-grid\">%s</div>\n", resp.Grid)
		fmt.Fprintf(out, "<nav id=\"pagination-bottom\">%s</nav>\n", resp.Pager)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderFragment, "fragment", "#", "URL fragment, e.g. '#t=go&p=2'")
	rootCmd.AddCommand(renderCmd)
}
