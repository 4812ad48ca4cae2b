package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSpinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spin <code>",
		Short: "Spin the bottle (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SpinResult

			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/spin", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
