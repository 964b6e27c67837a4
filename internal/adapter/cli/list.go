package cli

import (
	"encoding/json"
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"gestion_tramites/internal/adapter/http/dto/response"
)

type listOptions struct {
	asJSON bool
	kind   string
}

func (a *App) newListCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List soft-deleted rows, newest first",
		Long: `List every soft-deleted row with the days left in its retention window.

Rows marked URGENT are close to the end of the window; rows marked EXPIRED
are past it and may be purged. Nothing is purged automatically.

Examples:
  recyclectl list
  recyclectl list --kind procedure
  recyclectl list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the listing as JSON")
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "", "Only show one kind (client, case, procedure, quote)")
	return cmd
}

func (a *App) list(cmd *cobra.Command, opts *listOptions) error {
	uc, err := a.useCases(cmd)
	if err != nil {
		return err
	}

	bin, err := uc.RecycleBin.List(cmd.Context())
	if err != nil {
		return err
	}
	out := response.FromRecycleBin(bin)

	if opts.kind != "" {
		kind, _, err := parseTarget([]string{opts.kind, ""})
		if err != nil {
			return err
		}
		filtered := out.Entries[:0]
		for _, e := range out.Entries {
			if e.Kind == string(kind) {
				filtered = append(filtered, e)
			}
		}
		out.Entries = filtered
	}

	if opts.asJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if !out.QuotesAvailable {
		_, _ = fmt.Fprintln(a.stderr, "warning: quote subsystem unavailable, quotes not listed")
	}
	if len(out.Entries) == 0 {
		_, _ = fmt.Fprintln(a.stdout, "Recycle bin is empty.")
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.RightAlign(4)
	table.AddRow("KIND", "ID", "LABEL", "DELETED", "DAYS LEFT", "")
	for _, e := range out.Entries {
		flag := ""
		switch {
		case e.PurgeEligible:
			flag = "EXPIRED"
		case e.Urgent:
			flag = "URGENT"
		}
		table.AddRow(e.Kind, e.ID, e.Label, e.DeletedAt.Format("2006-01-02"), e.RemainingDays, flag)
	}
	_, err = fmt.Fprintln(a.stdout, table)
	return err
}
