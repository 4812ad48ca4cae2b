package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// settingsBody mirrors the API's imposter settings shape
type settingsBody struct {
	CountMode           string   `json:"countMode,omitempty"`
	ImposterCount       int      `json:"imposterCount,omitempty"`
	MaxPercent          int      `json:"maxPercent,omitempty"`
	Timer               int      `json:"timer,omitempty"`
	UseSameImposterWord bool     `json:"useSameImposterWord"`
	Categories          []string `json:"categories,omitempty"`
}

func newImposterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imposter",
		Short: "Imposter game commands",
	}

	cmd.AddCommand(newImposterSettingsCmd())
	cmd.AddCommand(newImposterStartCmd())
	cmd.AddCommand(newImposterVoteCmd())

	return cmd
}

func settingsFlags(cmd *cobra.Command, s *settingsBody) {
	cmd.Flags().StringVar(&s.CountMode, "count-mode", "fixed", "Imposter count mode: fixed, percent")
	cmd.Flags().IntVar(&s.ImposterCount, "imposters", 1, "Imposter count (fixed mode)")
	cmd.Flags().IntVar(&s.MaxPercent, "max-percent", 0, "Max imposter percentage (percent mode)")
	cmd.Flags().IntVar(&s.Timer, "timer", 60, "Discussion timer in seconds")
	cmd.Flags().BoolVar(&s.UseSameImposterWord, "same-word", true, "All imposters share one word")
	cmd.Flags().StringSliceVar(&s.Categories, "categories", nil, "Word categories to draw from (default: all)")
}

func newImposterSettingsCmd() *cobra.Command {
	var settings settingsBody

	cmd := &cobra.Command{
		Use:   "settings <code>",
		Short: "Apply imposter settings (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"settings": settings}

			var result struct {
				Success bool `json:"success"`
			}

			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/imposter/settings", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Settings applied")
			return nil
		},
	}

	settingsFlags(cmd, &settings)

	return cmd
}

func newImposterStartCmd() *cobra.Command {
	var settings settingsBody

	cmd := &cobra.Command{
		Use:   "start <code>",
		Short: "Start an imposter round (host only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"settings": settings}

			var result struct {
				Success bool `json:"success"`
			}

			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/imposter/start", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Round started")
			return nil
		},
	}

	settingsFlags(cmd, &settings)

	return cmd
}

func newImposterVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <code> <target>",
		Short: "Vote for a suspected imposter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"target": args[1]}

			var result struct {
				Success bool `json:"success"`
			}

			if err := client.Post(fmt.Sprintf("/api/v1/lobbies/%s/imposter/vote", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Vote cast")
			return nil
		},
	}
}
