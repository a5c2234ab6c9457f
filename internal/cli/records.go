package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"auroraledger/internal/store"
)

func (a *app) recordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "List recorded payload files",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := store.New(a.cfg.RecordsDir, a.log).Files()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(out, "No payloads recorded yet.")
				return nil
			}
			fmt.Fprintln(out, "Saved payloads:")
			for _, name := range names {
				fmt.Fprintln(out, "-", name)
			}
			return nil
		},
	}
}

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show per-operation counts and the total recorded amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum := store.New(a.cfg.RecordsDir, a.log).Summarize()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Payload summary: %d entries, %s total amount.\n", sum.Count, sum.Total.String())
			for _, op := range sum.OpNames() {
				fmt.Fprintf(out, "  %s: %d\n", op, sum.Ops[op])
			}
			return nil
		},
	}
}
