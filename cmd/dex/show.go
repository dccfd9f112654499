package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/tui"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one record",
		Long:  "Fetches the catalog once and prints one record with its evolution chain.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseRecordID(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	return withDeps(ctx, depsOptions{}, func(d *Deps) error {
		records, err := fetchOnce(ctx, d)
		if err != nil {
			return err
		}

		catalog := entities.NewCatalog(records)
		record, ok := catalog.ByID(id)
		if !ok {
			return fmt.Errorf("record %d not found", id)
		}

		fmt.Fprint(cmd.OutOrStdout(), tui.RenderDetail(record, catalog, 0))
		return nil
	})
}

// parseRecordID accepts "25", "025" and "#025".
func parseRecordID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", s)
	}
	return id, nil
}
