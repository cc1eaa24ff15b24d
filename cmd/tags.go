package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tejaswik02/campusplace/internal/app"
	"github.com/tejaswik02/campusplace/internal/profile"
)

// newTagCommands builds the add/list/remove command set shared by skills,
// preferred roles and preferred locations.
func newTagCommands(use, singular string, list profile.TagList) *cobra.Command {
	parent := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Manage your %s", list),
	}

	addCmd := &cobra.Command{
		Use:     "add <" + singular + ">",
		Short:   "Add a " + singular,
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("  campusplace %s add \"Go\"", use),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFromCmd(cmd)
			if err != nil {
				return err
			}

			form := loadDraftForm(a)
			writer := attachAutosave(a, form)
			defer writer.Flush()

			if err := form.AddTag(list, args[0]); err != nil {
				if errors.Is(err, app.ErrDuplicateTag) {
					fmt.Printf("%q is already in your %s\n", args[0], list)
					return nil
				}
				if errors.Is(err, app.ErrTagLimit) {
					fmt.Printf("Cannot add more than %d %s\n", list.Cap(), list)
					return nil
				}
				return err
			}

			fmt.Printf("✓ Added %s: %s\n", singular, args[0])
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List your %s", list),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFromCmd(cmd)
			if err != nil {
				return err
			}

			form := loadDraftForm(a)
			tags := form.Tags(list)
			if len(tags) == 0 {
				fmt.Printf("No %s yet. Add one with 'campusplace %s add'\n", list, use)
				return nil
			}

			fmt.Println(titleStyle.Render("Your " + capitalize(list.String())))
			for i, tag := range tags {
				fmt.Printf("%d. %s\n", i+1, tag)
			}
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove [" + singular + "]",
		Short: "Remove a " + singular + " (or the most recent with --last)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFromCmd(cmd)
			if err != nil {
				return err
			}

			form := loadDraftForm(a)
			writer := attachAutosave(a, form)
			defer writer.Flush()

			last, _ := cmd.Flags().GetBool("last")
			switch {
			case last:
				// Removing the last tag of an empty list is a no-op.
				if form.RemoveLastTag(list) {
					fmt.Printf("✓ Removed most recent %s\n", singular)
				}
				return nil
			case len(args) == 1:
				if !form.RemoveTag(list, args[0]) {
					fmt.Printf("%q is not in your %s\n", args[0], list)
					return nil
				}
				fmt.Printf("✓ Removed %s: %s\n", singular, args[0])
				return nil
			default:
				return fmt.Errorf("provide a %s to remove, or --last", singular)
			}
		},
	}
	removeCmd.Flags().Bool("last", false, "Remove the most recently added entry")

	parent.AddCommand(addCmd)
	parent.AddCommand(listCmd)
	parent.AddCommand(removeCmd)
	return parent
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func init() {
	rootCmd.AddCommand(newTagCommands("skill", "skill", profile.TagSkills))
	rootCmd.AddCommand(newTagCommands("role", "role", profile.TagRoles))
	rootCmd.AddCommand(newTagCommands("location", "location", profile.TagLocations))
}
