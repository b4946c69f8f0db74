package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "PDF report downloads (admin only)",
	}

	cmd.AddCommand(newExportPlayersCmd())
	cmd.AddCommand(newExportAttendanceCmd())

	return cmd
}

func newExportPlayersCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "players <sport>",
		Short: "Download a sport's player list as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := output
			if dest == "" {
				dest = exportFilename(args[0], "players")
			}

			path := "/api/v1/export/players/" + url.PathEscape(args[0])
			if err := client.Download(path, dest); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Saved %s", dest))
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "file", "", "Destination file (default <sport>_players.pdf)")

	return cmd
}

func newExportAttendanceCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "attendance <sport>",
		Short: "Download a sport's attendance report as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := output
			if dest == "" {
				dest = exportFilename(args[0], "attendance")
			}

			path := "/api/v1/export/attendance/" + url.PathEscape(args[0])
			if err := client.Download(path, dest); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Saved %s", dest))
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "file", "", "Destination file (default <sport>_attendance.pdf)")

	return cmd
}

func exportFilename(sport, kind string) string {
	slug := strings.ToLower(strings.ReplaceAll(sport, " ", "_"))
	return fmt.Sprintf("%s_%s.pdf", slug, kind)
}
