package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"teamsynchub/internal/domain/listview"
	"teamsynchub/internal/usecase"
)

func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	var sortShipments bool

	cmd := &cobra.Command{
		Use:          "dump",
		Short:        "Print every collection as JSON in display order",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()
			return runDump(cmd.Context(), usecase.NewStoreClient(store.Repositories), sortShipments, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&sortShipments, "table-order", true, "order shipments like the default shipment table")

	return cmd
}

func runDump(ctx context.Context, client *usecase.StoreClient, tableOrder bool, w io.Writer) error {
	ds, err := client.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	if tableOrder {
		ds.Shipments = listview.SortShipments(ds.Shipments, listview.DefaultShipmentSort())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ds)
}
