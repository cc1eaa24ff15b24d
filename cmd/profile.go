package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tejaswik02/campusplace/internal/app"
	"github.com/tejaswik02/campusplace/internal/profile"
	"github.com/tejaswik02/campusplace/internal/store"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long:  "Build, preview and submit the profile recruiters see",
}

// loadDraftForm builds a form from the stored draft only; commands that
// just mutate the draft do not need the backend.
func loadDraftForm(a *app.App) *profile.Form {
	form := profile.NewForm()
	if snap, ok := a.Store.LoadDraft(); ok {
		form.Restore(snap)
	}
	return form
}

// attachAutosave wires the form's change hook to a debounced draft writer
// and returns it; callers flush on clean exit.
func attachAutosave(a *app.App, form *profile.Form) *store.DebouncedWriter {
	w := store.NewDebouncedWriter(a.Store, a.DebounceInterval())
	form.OnChange(w.Trigger)
	return w
}

var showProfileCmd = &cobra.Command{
	Use:   "show",
	Short: "Display your profile information",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := profile.Hydrate(cmd.Context(), a.Store, a.API)

		fmt.Println(titleStyle.Render("Your Profile"))
		printField := func(label, value string) {
			if value != "" {
				fmt.Printf("%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
			}
		}
		printField("Name", form.Data.FullName)
		printField("Email", form.Data.Email)
		printField("Phone", form.Data.Phone)
		printField("Department", form.Data.Department)
		printField("Roll Number", form.Data.RollNumber)
		printField("Semester", form.Data.Semester)
		printField("CGPA", form.Data.GPA)
		printField("10th %", form.Data.TenthPercent)
		printField("12th %", form.Data.TwelfthPercent)
		printField("Active Backlogs", form.Data.ActiveBacklogs)

		if link := form.Data.Resume.Link(); link != "" {
			printField("Resume", link)
		} else if form.Data.Resume.Pending() {
			printField("Resume", form.Data.Resume.FileName+" (pending upload)")
		}

		printTags := func(label string, tags []string) {
			if len(tags) > 0 {
				fmt.Println(labelStyle.Render("\n" + label + ":"))
				for _, tag := range tags {
					fmt.Printf("  • %s\n", tag)
				}
			}
		}
		printTags("Skills", form.Data.Skills)
		printTags("Preferred Roles", form.Data.PreferredRoles)
		printTags("Preferred Locations", form.Data.PreferredLocations)

		return nil
	},
}

var previewProfileCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview your profile the way a recruiter sees it",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := profile.Hydrate(cmd.Context(), a.Store, a.API)
		fmt.Println(titleStyle.Render("Profile Preview"))
		fmt.Print(profile.RenderPreview(form))
		return nil
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactively edit your profile",
	Long:  "Walks through every profile field. Changes autosave to a local draft; run 'campusplace profile save' to submit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := profile.Hydrate(cmd.Context(), a.Store, a.API)
		writer := attachAutosave(a, form)
		defer writer.Flush()

		fmt.Println(titleStyle.Render("Edit Profile"))
		fmt.Println("Press Enter to keep current value, or type a new value")

		reader := bufio.NewReader(os.Stdin)

		prompt := func(label string, field profile.Field, current string) {
			fmt.Printf("%s [%s]: ", labelStyle.Render(label), current)
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)
			if input != "" {
				form.SetScalar(field, input)
			}
		}

		prompt("Full Name", profile.FieldFullName, form.Data.FullName)
		prompt("Email", profile.FieldEmail, form.Data.Email)
		prompt("Phone", profile.FieldPhone, form.Data.Phone)
		prompt("Roll Number", profile.FieldRollNumber, form.Data.RollNumber)
		prompt("Department (CSE/ECE/EEE/MECH/CIVIL)", profile.FieldDepartment, form.Data.Department)
		prompt("Semester (1-8)", profile.FieldSemester, form.Data.Semester)
		prompt("Current CGPA", profile.FieldGPA, form.Data.GPA)
		prompt("10th Percentage", profile.FieldTenthPercent, form.Data.TenthPercent)
		prompt("12th Percentage", profile.FieldTwelfthPercent, form.Data.TwelfthPercent)
		prompt("Active Backlogs", profile.FieldActiveBacklogs, form.Data.ActiveBacklogs)

		fmt.Printf("%s [%s]: ", labelStyle.Render("Resume Link"), form.Data.Resume.Link())
		link, _ := reader.ReadString('\n')
		link = strings.TrimSpace(link)
		if link != "" {
			form.SetResumeLink(link)
		}

		fmt.Println("\n✓ Draft saved. Run 'campusplace profile save' to submit.")
		return nil
	},
}

var setProfileCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a profile field",
	Example: `  campusplace profile set --name "Asha Rao"
  campusplace profile set --department CSE --semester 6
  campusplace profile set --gpa 8.7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := loadDraftForm(a)
		writer := attachAutosave(a, form)
		defer writer.Flush()

		fields := map[profile.Field]string{
			profile.FieldFullName:       "name",
			profile.FieldEmail:          "email",
			profile.FieldPhone:          "phone",
			profile.FieldDepartment:     "department",
			profile.FieldRollNumber:     "roll",
			profile.FieldSemester:       "semester",
			profile.FieldGPA:            "gpa",
			profile.FieldTenthPercent:   "tenth",
			profile.FieldTwelfthPercent: "twelfth",
			profile.FieldActiveBacklogs: "backlogs",
		}

		updated := false
		for field, flag := range fields {
			value, _ := cmd.Flags().GetString(flag)
			if value != "" {
				form.SetScalar(field, value)
				updated = true
			}
		}

		if !updated {
			fmt.Println("No fields to update. Use flags like --name, --email, etc.")
			return nil
		}

		fmt.Println("✓ Draft updated")
		return nil
	},
}

var resumeProfileCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage your resume reference",
	Example: `  campusplace profile resume --link https://drive.example/x
  campusplace profile resume --file ./resume.pdf
  campusplace profile resume --remove`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := loadDraftForm(a)
		writer := attachAutosave(a, form)
		defer writer.Flush()

		file, _ := cmd.Flags().GetString("file")
		link, _ := cmd.Flags().GetString("link")
		remove, _ := cmd.Flags().GetBool("remove")

		switch {
		case remove:
			form.RemoveResume()
			fmt.Println("✓ Resume reference removed")
		case file != "":
			if err := form.AttachResumeFile(file); err != nil {
				return err
			}
			fmt.Printf("✓ %s will be uploaded on the next profile save\n", form.Data.Resume.FileName)
		case link != "":
			form.SetResumeLink(link)
			fmt.Println("✓ Resume link set")
		default:
			fmt.Println("Use --file, --link or --remove")
		}
		return nil
	},
}

var saveProfileCmd = &cobra.Command{
	Use:   "save",
	Short: "Submit your profile to the placement portal",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		if _, err := a.RequireSession(store.TokenKey); err != nil {
			return fmt.Errorf("log in first with 'campusplace login': %w", err)
		}

		form := profile.Hydrate(cmd.Context(), a.Store, a.API)
		submitter := profile.NewSubmitter(form, a.API, a.Store)

		result, err := submitter.Submit(cmd.Context())
		if err != nil {
			if errors.Is(err, app.ErrBusy) {
				return err
			}
			return fmt.Errorf("save failed, your draft is untouched: %w", err)
		}

		if result.ResumeWarning != "" {
			fmt.Println(warnStyle.Render("⚠ " + result.ResumeWarning))
		}
		fmt.Println(titleStyle.Render("✓ Profile saved"))
		if result.ResumeLink != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Resume:"), result.ResumeLink)
		}
		return nil
	},
}

var checkProfileCmd = &cobra.Command{
	Use:   "check",
	Short: "Report missing or suspect profile fields",
	Long:  "Lists completeness problems without blocking a save; the backend has the final say.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := appFromCmd(cmd)
		if err != nil {
			return err
		}

		form := loadDraftForm(a)
		warnings := profile.Check(form)
		if len(warnings) == 0 {
			fmt.Println("✓ Profile looks complete")
			return nil
		}

		fmt.Println(titleStyle.Render("Profile Check"))
		for _, w := range warnings {
			fmt.Println(warnStyle.Render("  ⚠ " + w))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(previewProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(setProfileCmd)
	profileCmd.AddCommand(resumeProfileCmd)
	profileCmd.AddCommand(saveProfileCmd)
	profileCmd.AddCommand(checkProfileCmd)

	// Flags for set command
	setProfileCmd.Flags().String("name", "", "Update full name")
	setProfileCmd.Flags().String("email", "", "Update email")
	setProfileCmd.Flags().String("phone", "", "Update phone")
	setProfileCmd.Flags().String("department", "", "Update department (CSE/ECE/EEE/MECH/CIVIL)")
	setProfileCmd.Flags().String("roll", "", "Update roll number")
	setProfileCmd.Flags().String("semester", "", "Update current semester (1-8)")
	setProfileCmd.Flags().String("gpa", "", "Update current CGPA")
	setProfileCmd.Flags().String("tenth", "", "Update 10th percentage")
	setProfileCmd.Flags().String("twelfth", "", "Update 12th percentage")
	setProfileCmd.Flags().String("backlogs", "", "Update active backlog count")

	resumeProfileCmd.Flags().String("file", "", "Local resume file to upload on next save")
	resumeProfileCmd.Flags().String("link", "", "Resume URL already hosted somewhere")
	resumeProfileCmd.Flags().Bool("remove", false, "Remove the resume reference")
}
