package cli

import (
	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Identity commands",
	}

	cmd.AddCommand(newUserSetCmd())

	return cmd
}

func newUserSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name>",
		Short: "Register a display name with the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"username": args[0]}

			var result struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}

			if err := client.Post("/api/v1/user", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(result.Message)
			return nil
		},
	}
}
