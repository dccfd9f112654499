package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/dex/internal/domain/entities"
)

// Valid list output formats.
var validFormats = []string{"text", "json", "yaml"}

type listFlags struct {
	format string
	output string
}

func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog",
		Long:  "Fetches the catalog once and prints it as a table, JSON or YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runList(cmd *cobra.Command, flags listFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	ctx := cmd.Context()

	return withDeps(ctx, depsOptions{}, func(d *Deps) error {
		records, err := fetchOnce(ctx, d)
		if err != nil {
			return err
		}

		return writeRecords(cmd.OutOrStdout(), flags, records)
	})
}

func writeRecords(stdout io.Writer, flags listFlags, records []entities.Record) (err error) {
	w := stdout
	if flags.output != "" {
		f, ferr := os.OpenFile(flags.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if ferr != nil {
			return fmt.Errorf("creating file: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := formatRecords(w, flags.format, records); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if flags.output != "" {
		fmt.Fprintf(stdout, "Wrote %d records to %s\n", len(records), flags.output)
	}
	return nil
}

func formatRecords(w io.Writer, format string, records []entities.Record) error {
	switch format {
	case "text":
		return formatText(w, records)
	case "json":
		return formatJSON(w, records)
	case "yaml":
		return formatYAML(w, records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func formatText(w io.Writer, records []entities.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No records found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tEVOLVES FROM\tEVOLVES TO")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.DisplayID(),
			r.Name,
			strings.Join(r.Categories, ", "),
			formatIDs(r.Evolutions.Before),
			formatIDs(r.Evolutions.After),
		)
	}
	return tw.Flush()
}

func formatIDs(ids []int) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("#%03d", id))
	}
	return strings.Join(parts, " ")
}

func formatJSON(w io.Writer, records []entities.Record) error {
	if records == nil {
		records = []entities.Record{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func formatYAML(w io.Writer, records []entities.Record) error {
	if records == nil {
		records = []entities.Record{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return err
	}
	return encoder.Close()
}
