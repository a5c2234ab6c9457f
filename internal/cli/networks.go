package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"auroraledger/internal/network"
	"auroraledger/internal/payload"
)

func (a *app) networksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the configured RPC profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := network.Load(a.cfg.NetworksFile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			profiles := catalog.Profiles()
			if len(profiles) == 0 {
				fmt.Fprintln(out, "No network profiles found.")
				return nil
			}
			fmt.Fprintln(out, "Available profiles:")
			for _, profile := range profiles {
				fmt.Fprintf(out, "- %s: %s (%s)\n", profile.Name, profile.Description, profile.RPC)
			}
			return nil
		},
	}
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Describe the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			rpc := "(no rpc profile)"
			if catalog, err := network.Load(a.cfg.NetworksFile); err == nil {
				if profile, err := catalog.Lookup(a.cfg.Network); err == nil {
					rpc = profile.RPC
				}
			}
			ops := make([]string, len(payload.Ops))
			for i, op := range payload.Ops {
				ops[i] = string(op)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "AuroraLedger on %s using %s tracking ops %s.\n",
				a.cfg.Network, rpc, strings.Join(ops, ", "))
			return nil
		},
	}
}
