package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gestion_tramites/internal/usecase"
)

func (a *App) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <kind> <id>",
		Short: "Send a client, case or procedure to the recycle bin",
		Long: `Soft-delete a row and everything it owns. Deleting a client also deletes
its cases and procedures; deleting a case deletes its procedures. Rows
already in the bin keep their original deletion date.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseTarget(args)
			if err != nil {
				return err
			}
			uc, err := a.useCases(cmd)
			if err != nil {
				return err
			}
			res, err := uc.SoftDelete.SoftDelete(cmd.Context(), kind, id)
			a.reportCascade("deleted", res, err)
			return err
		},
	}
}

func (a *App) newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <kind> <id>",
		Short: "Restore a row from the recycle bin",
		Long: `Restore a row. For clients and cases everything they own is restored too;
quotes are restored by the quote subsystem. Re-running a restore that left
dependents behind retries them.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseTarget(args)
			if err != nil {
				return err
			}
			uc, err := a.useCases(cmd)
			if err != nil {
				return err
			}
			if err := uc.RecycleBin.Restore(cmd.Context(), kind, id); err != nil {
				if errors.Is(err, usecase.ErrPartialCascade) {
					_, _ = fmt.Fprintf(a.stderr, "restored %s %s with failures, run the command again: %v\n", kind, id, err)
				}
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "restored %s %s\n", kind, id)
			return nil
		},
	}
}

type purgeOptions struct {
	yes bool
}

func (a *App) newPurgeCmd() *cobra.Command {
	opts := &purgeOptions{}

	cmd := &cobra.Command{
		Use:   "purge <kind> <id>",
		Short: "Permanently delete a single row",
		Long: `Permanently delete one row. Dependents are not touched. This cannot be
undone, so --yes is required.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id, err := parseTarget(args)
			if err != nil {
				return err
			}
			if !opts.yes {
				return fmt.Errorf("refusing to purge %s %s without --yes", kind, id)
			}
			uc, err := a.useCases(cmd)
			if err != nil {
				return err
			}
			if err := uc.RecycleBin.Purge(cmd.Context(), kind, id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(a.stdout, "purged %s %s\n", kind, id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Confirm the permanent deletion")
	return cmd
}

func (a *App) reportCascade(verb string, res usecase.CascadeResult, err error) {
	switch {
	case err == nil && !res.Changed:
		_, _ = fmt.Fprintf(a.stdout, "%s %s was already %s, %d dependent(s) updated\n", res.Kind, res.ID, verb, res.Affected)
	case err == nil:
		_, _ = fmt.Fprintf(a.stdout, "%s %s %s, %d dependent(s) updated\n", verb, res.Kind, res.ID, res.Affected)
	case errors.Is(err, usecase.ErrPartialCascade):
		_, _ = fmt.Fprintf(a.stderr, "%s %s %s with failures, run the command again: %v\n", verb, res.Kind, res.ID, err)
	}
}
