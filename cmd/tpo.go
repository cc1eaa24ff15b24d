package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tejaswik02/campusplace/internal/store"
)

var tpoCmd = &cobra.Command{
	Use:   "tpo",
	Short: "Training & Placement Office operations",
	Long:  "Review and verify student accounts (requires a TPO session)",
}

var tpoStudentsCmd = &cobra.Command{
	Use:   "students",
	Short: "List student accounts awaiting verification",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		if _, err := a.RequireSession(store.TPOTokenKey); err != nil {
			return fmt.Errorf("log in first with 'campusplace login --role tpo': %w", err)
		}

		students, err := a.API.ListStudents(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load students: %w", err)
		}

		if len(students) == 0 {
			fmt.Println("No students found.")
			return nil
		}

		pendingOnly, _ := cmd.Flags().GetBool("pending")

		fmt.Println(titleStyle.Render("Student Accounts"))
		for _, s := range students {
			if pendingOnly && s.Verified {
				continue
			}
			status := "pending"
			if s.Verified {
				status = "verified"
			}
			fmt.Printf("%s %s\n", labelStyle.Render(s.Name), valueStyle.Render("<"+s.Email+">"))
			fmt.Printf("  %s %s   %s %s\n", labelStyle.Render("ID:"), s.ID, labelStyle.Render("Status:"), status)
		}
		return nil
	},
}

var tpoVerifyCmd = &cobra.Command{
	Use:   "verify <student-id>",
	Short: "Mark a student account as verified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		if _, err := a.RequireSession(store.TPOTokenKey); err != nil {
			return fmt.Errorf("log in first with 'campusplace login --role tpo': %w", err)
		}

		if err := a.API.VerifyStudent(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to verify student: %w", err)
		}

		fmt.Printf("✓ Student %s verified\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tpoCmd)
	tpoCmd.AddCommand(tpoStudentsCmd)
	tpoCmd.AddCommand(tpoVerifyCmd)

	tpoStudentsCmd.Flags().Bool("pending", false, "Show only unverified accounts")
}
