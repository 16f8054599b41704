package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"teamsynchub/internal/bootstrap"
	"teamsynchub/pkg/config"
)

// RootOptions holds flags shared by every admin command.
type RootOptions struct {
	Driver string
}

var validDrivers = []string{config.StoreDriverFirestore, config.StoreDriverMemory}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "teamsync-admin",
		Short: "Maintenance commands for the team workspace store",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Driver == "" {
				return nil
			}
			for _, d := range validDrivers {
				if d == opts.Driver {
					return nil
				}
			}
			return fmt.Errorf("invalid driver %q: must be one of %v", opts.Driver, validDrivers)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "store driver (firestore|memory), defaults to STORE_DRIVER")

	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))

	return cmd
}

// openStore loads the environment config with the --driver override applied.
func openStore(ctx context.Context, opts *RootOptions) (*bootstrap.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.Driver != "" {
		cfg.StoreDriver = opts.Driver
	}
	return bootstrap.OpenStore(ctx, cfg)
}
