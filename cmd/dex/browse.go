package main

import (
	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/tui"
)

const browseLong = `Opens the interactive browser. Logs go to .dex/dex.log unless --log-file or log.file is set.

The default endpoint on raw.githubusercontent.com is served as text/plain, while
only application/json is accepted by default. Add text/plain to
catalog.content_types (or set DEX_CATALOG_CONTENT_TYPES=application/json,text/plain)
when reading the catalog straight from the repository; otherwise the first load fails.`

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long:  browseLong,
		Args:  cobra.NoArgs,
		RunE:  runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	bridge := tui.NewStateBridge()

	opts := depsOptions{
		interactive: true,
		controller:  []handlers.ControllerOption{handlers.WithObserver(bridge.Observe)},
	}

	return withDeps(ctx, opts, func(d *Deps) error {
		return tui.Run(ctx, d.Controller, bridge)
	})
}
