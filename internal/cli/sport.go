package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newSportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sport",
		Short: "Sport catalogue commands",
	}

	cmd.AddCommand(newSportListCmd())
	cmd.AddCommand(newSportAddCmd())
	cmd.AddCommand(newSportRemoveCmd())

	return cmd
}

func newSportListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available sports",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SportsResult

			if err := client.Get("/api/v1/sports", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSportAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a sport to the catalogue (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": args[0]}
			var result SportsResult

			if err := client.Post("/api/v1/sports", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSportRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a sport with no registered players (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/sports/" + url.PathEscape(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Sport removed")
			return nil
		},
	}
}
