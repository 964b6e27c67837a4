// Package cli implements recyclectl, the operator tool for the recycle bin.
// Purge is only ever performed here or through the API, never on a timer.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gestion_tramites/internal/adapter/http/dto/request"
	"gestion_tramites/internal/app"
	"gestion_tramites/internal/domain/entities"
)

// Builder opens the use cases a command needs. It runs once per command.
type Builder func(ctx context.Context) (app.UseCases, error)

type App struct {
	root   *cobra.Command
	build  Builder
	stdout io.Writer
	stderr io.Writer
}

func New(build Builder) *App {
	a := &App{
		build:  build,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	a.root = &cobra.Command{
		Use:   "recyclectl",
		Short: "Inspect and manage the recycle bin",
		Long: `recyclectl lists soft-deleted clients, cases, procedures and quotes, and
sends rows to the bin, restores them or purges them for good.

Soft-delete and restore cascade over what the row owns. Purge removes a
single row and cannot be undone.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.root.AddCommand(
		a.newListCmd(),
		a.newDeleteCmd(),
		a.newRestoreCmd(),
		a.newPurgeCmd(),
	)
	return a
}

func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments.
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) useCases(cmd *cobra.Command) (app.UseCases, error) {
	uc, err := a.build(cmd.Context())
	if err != nil {
		return app.UseCases{}, fmt.Errorf("failed to open stores: %w", err)
	}
	return uc, nil
}

func parseTarget(args []string) (entities.EntityKind, string, error) {
	kind, err := request.ParseKind(args[0])
	if err != nil {
		return "", "", fmt.Errorf("%w: %q (want client, case, procedure or quote)", err, args[0])
	}
	return kind, args[1], nil
}
