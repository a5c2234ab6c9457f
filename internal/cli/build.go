package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"auroraledger/internal/network"
	"auroraledger/internal/payload"
	"auroraledger/internal/store"
)

func (a *app) buildCmd() *cobra.Command {
	var params payload.Params
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build one payload record and save it to the record store",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The catalog file is only required when a profile is requested.
			var catalog *network.Catalog
			if params.Network != "" {
				var err error
				catalog, err = network.Load(a.cfg.NetworksFile)
				if err != nil {
					return err
				}
			}

			rec, err := payload.NewBuilder(catalog, a.log).Build(params)
			if err != nil {
				return err
			}
			path, err := store.New(a.cfg.RecordsDir, a.log).Save(rec)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Payload %s recorded at %s\n", rec.ID, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&params.Op, "op", "", "operation type: mint, swap, or stake")
	cmd.Flags().StringVar(&params.Target, "target", "", "target account or contract")
	cmd.Flags().StringVar(&params.Amount, "amount", "0", "amount for the operation")
	cmd.Flags().StringVar(&params.Note, "note", "", "optional narrative")
	cmd.Flags().StringVar(&params.Network, "network", "", "named RPC profile to stamp on the record")
	cmd.Flags().StringVar(&params.Plan, "plan", "", "plan text embedded in the record")
	_ = cmd.MarkFlagRequired("op")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
