package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tejaswik02/campusplace/internal/api"
	"github.com/tejaswik02/campusplace/internal/store"
)

// sessionKeyForRole maps a portal role to the durable-store key its
// credential lives under. The TPO keeps a separate session.
func sessionKeyForRole(role string) string {
	if role == "tpo" {
		return store.TPOTokenKey
	}
	return store.TokenKey
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the placement portal",
	Example: `  campusplace login --email asha@jntugv.edu.in
  campusplace login --email tpo@jntugv.edu.in --role tpo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		if email == "" {
			return fmt.Errorf("--email is required")
		}
		if role != "student" && role != "tpo" && role != "recruiter" {
			return fmt.Errorf("role must be student, tpo or recruiter")
		}

		if password == "" {
			fmt.Print(labelStyle.Render("Password: "))
			reader := bufio.NewReader(os.Stdin)
			raw, _ := reader.ReadString('\n')
			password = strings.TrimSpace(raw)
		}

		result, err := a.API.Login(cmd.Context(), email, password, role)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if result.User.Role != "" {
			role = result.User.Role
		}
		if err := a.Store.SetSessionToken(sessionKeyForRole(role), result.Token); err != nil {
			return fmt.Errorf("failed to store session: %w", err)
		}

		name := result.User.Name
		if name == "" {
			name = email
		}
		fmt.Printf("✓ Logged in as %s (%s)\n", name, role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		role, _ := cmd.Flags().GetString("role")
		if err := a.Store.ClearSessionToken(sessionKeyForRole(role)); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		fmt.Println("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		shown := false
		for _, key := range []string{store.TokenKey, store.TPOTokenKey} {
			token, ok := a.Store.SessionToken(key)
			if !ok {
				continue
			}
			shown = true

			claims, err := api.ParseToken(token)
			if err != nil {
				fmt.Printf("%s: opaque token (not a JWT)\n", key)
				continue
			}

			who := claims.Email
			if who == "" {
				who = claims.Subject
			}
			line := fmt.Sprintf("%s: %s", key, who)
			if claims.Role != "" {
				line += " (" + claims.Role + ")"
			}
			if !claims.ExpiresAt.IsZero() {
				if api.TokenExpired(token) {
					line += warnStyle.Render(" [expired]")
				} else {
					line += " expires " + claims.ExpiresAt.Format("Jan 2, 2006 15:04")
				}
			}
			fmt.Println(line)
		}

		if !shown {
			fmt.Println("Not logged in. Run 'campusplace login'.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().String("email", "", "Account email (required)")
	loginCmd.Flags().String("password", "", "Password (prompted if omitted)")
	loginCmd.Flags().String("role", "student", "Account role: student, tpo or recruiter")

	logoutCmd.Flags().String("role", "student", "Session to clear: student or tpo")
}
