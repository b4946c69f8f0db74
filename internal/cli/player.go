package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player registration commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerAttendanceCmd())
	cmd.AddCommand(newPlayerSummaryCmd())
	cmd.AddCommand(newPlayerRosterCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var name, gender, contact, sport, level string
	var age int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a player for a sport",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":    name,
				"age":     age,
				"gender":  gender,
				"contact": contact,
				"sport":   sport,
				"level":   level,
			}
			var result Player

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&age, "age", 0, "Player age (required)")
	cmd.Flags().StringVar(&gender, "gender", "", "Player gender")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact details")
	cmd.Flags().StringVar(&sport, "sport", "", "Sport to register for (required)")
	cmd.Flags().StringVar(&level, "level", "", "Skill level (Beginner, Intermediate, Advanced, Professional)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("age")
	_ = cmd.MarkFlagRequired("sport")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var sport string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered players",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players"
			if sport != "" {
				path += "?sport=" + url.QueryEscape(sport)
			}

			var result PlayersResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sport, "sport", "", "Filter by sport")

	return cmd
}

func newPlayerAttendanceCmd() *cobra.Command {
	var present, absent bool

	cmd := &cobra.Command{
		Use:   "attendance <player-id>",
		Short: "Mark a player present or absent (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if present == absent {
				return fmt.Errorf("exactly one of --present or --absent is required")
			}

			req := map[string]any{"present": present}
			var result Player

			path := fmt.Sprintf("/api/v1/players/%s/attendance", args[0])
			if err := client.Patch(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&present, "present", false, "Mark the player present")
	cmd.Flags().BoolVar(&absent, "absent", false, "Mark the player absent")

	return cmd
}

func newPlayerRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster <sport>",
		Short: "Show a sport's attendance partition (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AttendanceResult

			path := "/api/v1/attendance/" + url.PathEscape(args[0])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show registration counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SummaryResult

			if err := client.Get("/api/v1/summary", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
