package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tejaswik02/campusplace/internal/app"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage your projects",
	Long:  "Add, list, edit, and remove project entries on your profile",
}

var addProjectCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	Example: `  campusplace project add --title "Portfolio Site" --description "Personal site" --link https://github.com/me/site`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		link, _ := cmd.Flags().GetString("link")

		if title == "" {
			return fmt.Errorf("--title is required")
		}

		form := loadDraftForm(a)
		writer := attachAutosave(a, form)
		defer writer.Flush()

		id := form.AddProject(title, description, link)
		fmt.Printf("✓ Added project: %s (ID: %s)\n", title, shortID(id))
		return nil
	},
}

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List your projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := loadDraftForm(a)
		fmt.Println(titleStyle.Render("Your Projects"))
		for i, p := range form.Projects {
			title := p.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Printf("\n%d. %s\n", i+1, title)
			fmt.Printf("   %s %s\n", labelStyle.Render("ID:"), shortID(p.ID))
			if p.Description != "" {
				fmt.Printf("   %s\n", p.Description)
			}
			if p.Link != "" {
				fmt.Printf("   %s %s\n", labelStyle.Render("Link:"), p.Link)
			}
		}
		return nil
	},
}

var setProjectCmd = &cobra.Command{
	Use:   "set <project-id>",
	Short: "Update a project field",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := loadDraftForm(a)
		writer := attachAutosave(a, form)
		defer writer.Flush()

		id, err := resolveID(args[0], projectIDs(form))
		if err != nil {
			return err
		}

		updated := false
		for _, field := range []string{"title", "description", "link"} {
			value, _ := cmd.Flags().GetString(field)
			if value == "" {
				continue
			}
			if err := form.UpdateProject(id, field, value); err != nil {
				return err
			}
			updated = true
		}

		if !updated {
			fmt.Println("No fields to update. Use --title, --description or --link.")
			return nil
		}
		fmt.Println("✓ Project updated")
		return nil
	},
}

var removeProjectCmd = &cobra.Command{
	Use:   "remove <project-id>",
	Short: "Remove a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := loadDraftForm(a)
		writer := attachAutosave(a, form)
		defer writer.Flush()

		id, err := resolveID(args[0], projectIDs(form))
		if err != nil {
			return err
		}

		if err := form.RemoveProject(id); err != nil {
			if errors.Is(err, app.ErrLastEntry) {
				fmt.Println("Cannot remove the only project entry; edit it instead.")
				return nil
			}
			return err
		}

		fmt.Println("✓ Project removed")
		return nil
	},
}

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Manage your certifications",
	Long:  "Add, list, and remove certification entries on your profile",
}

var addCertCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a certification",
	Example: `  campusplace cert add --name "AWS Certified" --issuer Amazon --date 2025-11-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		issuer, _ := cmd.Flags().GetString("issuer")
		date, _ := cmd.Flags().GetString("date")

		if name == "" {
			return fmt.Errorf("--name is required")
		}

		form := loadDraftForm(a)
		writer := attachAutosave(a, form)
		defer writer.Flush()

		id := form.AddCertification(name, issuer, date)
		fmt.Printf("✓ Added certification: %s (ID: %s)\n", name, shortID(id))
		return nil
	},
}

var listCertsCmd = &cobra.Command{
	Use:   "list",
	Short: "List your certifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := loadDraftForm(a)
		fmt.Println(titleStyle.Render("Your Certifications"))
		for i, c := range form.Certifications {
			name := c.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Printf("%d. %s", i+1, name)
			if c.Issuer != "" {
				fmt.Printf(" - %s", c.Issuer)
			}
			if c.Date != "" {
				fmt.Printf(" (%s)", c.Date)
			}
			fmt.Printf("  [%s]\n", shortID(c.ID))
		}
		return nil
	},
}

var removeCertCmd = &cobra.Command{
	Use:   "remove <cert-id>",
	Short: "Remove a certification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := loadDraftForm(a)
		writer := attachAutosave(a, form)
		defer writer.Flush()

		id, err := resolveID(args[0], certIDs(form))
		if err != nil {
			return err
		}

		if err := form.RemoveCertification(id); err != nil {
			if errors.Is(err, app.ErrLastEntry) {
				fmt.Println("Cannot remove the only certification entry; edit it instead.")
				return nil
			}
			return err
		}

		fmt.Println("✓ Certification removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(certCmd)

	projectCmd.AddCommand(addProjectCmd)
	projectCmd.AddCommand(listProjectsCmd)
	projectCmd.AddCommand(setProjectCmd)
	projectCmd.AddCommand(removeProjectCmd)

	certCmd.AddCommand(addCertCmd)
	certCmd.AddCommand(listCertsCmd)
	certCmd.AddCommand(removeCertCmd)

	addProjectCmd.Flags().String("title", "", "Project title (required)")
	addProjectCmd.Flags().String("description", "", "Project description")
	addProjectCmd.Flags().String("link", "", "Project URL")

	setProjectCmd.Flags().String("title", "", "Update title")
	setProjectCmd.Flags().String("description", "", "Update description")
	setProjectCmd.Flags().String("link", "", "Update URL")

	addCertCmd.Flags().String("name", "", "Certification name (required)")
	addCertCmd.Flags().String("issuer", "", "Issuing organization")
	addCertCmd.Flags().String("date", "", "Date earned (YYYY-MM-DD)")
}
