package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"auroraledger/internal/plan"
)

func (a *app) planCmd() *cobra.Command {
	var urgency string
	var tags []string
	cmd := &cobra.Command{
		Use:   "plan TEXT",
		Short: "Append a free-text planning note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := plan.ValidUrgency(urgency); err != nil {
				return err
			}
			entry, path, err := plan.NewBook(a.cfg.PlansDir, a.log).Append(args[0], urgency, tags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan %s logged at %s\n", entry.ID, path)
			return nil
		},
	}
	cmd.Flags().StringVar(&urgency, "urgency", plan.UrgencyLow, "triage level: low, medium, or high")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "tags to attach to the note")
	return cmd
}
