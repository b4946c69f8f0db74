package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Account and session commands",
	}

	cmd.AddCommand(newAuthRegisterCmd())
	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthVerifyCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthWhoamiCmd())

	return cmd
}

func newAuthRegisterCmd() *cobra.Command {
	var user, pass, email, phone, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" && phone == "" {
				return fmt.Errorf("--email or --phone is required")
			}

			req := map[string]string{
				"username": user,
				"password": pass,
				"email":    email,
				"phone":    phone,
				"role":     role,
			}
			var result AuthResult

			if err := client.Post("/api/v1/auth/register", req, &result); err != nil {
				return err
			}

			if err := cfg.SaveToken(result.SessionToken); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&role, "role", "", "Account role (user or admin)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login with username and password",
		Long: `Login begins a two-step flow: valid credentials produce a
verification challenge, and the code is read from stdin to complete it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username": user,
				"password": pass,
			}
			var challenge ChallengeResult

			if err := client.Post("/api/v1/auth/login", req, &challenge); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(challenge)

			fmt.Print("Enter verification code: ")
			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read code: %w", err)
			}

			return completeVerify(challenge.ChallengeID, strings.TrimSpace(code))
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAuthVerifyCmd() *cobra.Command {
	var challengeID, code string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Complete a login challenge",
		RunE: func(cmd *cobra.Command, args []string) error {
			return completeVerify(challengeID, code)
		},
	}

	cmd.Flags().StringVar(&challengeID, "challenge", "", "Challenge ID (required)")
	cmd.Flags().StringVar(&code, "code", "", "Verification code (required)")
	_ = cmd.MarkFlagRequired("challenge")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func completeVerify(challengeID, code string) error {
	req := map[string]string{
		"challenge_id": challengeID,
		"code":         code,
	}
	var result AuthResult

	if err := client.Post("/api/v1/auth/verify", req, &result); err != nil {
		return err
	}

	if err := cfg.SaveToken(result.SessionToken); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	out := NewOutput(cfg.Output)
	out.Print(result)
	return nil
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/auth/logout", nil, nil); err != nil {
				return err
			}

			if err := cfg.ClearToken(); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Logged out")
			return nil
		},
	}
}

func newAuthWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show current account info",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result User

			if err := client.Get("/api/v1/auth/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
