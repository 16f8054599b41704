package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"teamsynchub/internal/domain/repository"
	"teamsynchub/internal/usecase"
)

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "seed",
		Short:        "Write the demo dataset if the store has no users",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()
			return runSeed(cmd.Context(), store.Repositories.Seeder, cmd.OutOrStdout())
		},
	}
}

func runSeed(ctx context.Context, seeder repository.Seeder, w io.Writer) error {
	wrote, err := seeder.SeedIfEmpty(ctx, usecase.SeedDataset(time.Now()))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if wrote {
		fmt.Fprintln(w, "Seeded empty store with demo data")
	} else {
		fmt.Fprintln(w, "Store already has users, nothing written")
	}
	return nil
}
