package profile

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

var (
	previewNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12"))

	previewHeadingStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("10"))

	previewMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8"))

	previewBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("14"))
)

// Initials returns the uppercased first letter of each whitespace-separated
// token in name, concatenated.
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		for _, r := range token {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// RenderPreview is a read-only projection of the form into the summary a
// recruiter would see. Pure: no side effects, no network, and identical
// output for identical form state. Sections whose backing collection is
// empty are omitted rather than rendered as an empty heading.
func RenderPreview(f *Form) string {
	var b strings.Builder

	if initials := Initials(f.Data.FullName); initials != "" {
		b.WriteString(previewBadgeStyle.Render("["+initials+"]") + " ")
	}
	b.WriteString(previewNameStyle.Render(f.Data.FullName) + "\n")
	if f.Data.Department != "" {
		b.WriteString(previewMutedStyle.Render(f.Data.Department) + "\n")
	}
	contact := strings.TrimSpace(f.Data.Email + " • " + f.Data.Phone)
	contact = strings.Trim(contact, " •")
	if contact != "" {
		b.WriteString(previewMutedStyle.Render(contact) + "\n")
	}

	b.WriteString("\n" + previewHeadingStyle.Render("Academic Information") + "\n")
	fmt.Fprintf(&b, "  CGPA: %s    Semester: %s\n", orNA(f.Data.GPA), orNA(f.Data.Semester))
	fmt.Fprintf(&b, "  10th %%: %s    12th %%: %s\n", orNA(f.Data.TenthPercent), orNA(f.Data.TwelfthPercent))
	if f.Data.ActiveBacklogs != "" {
		fmt.Fprintf(&b, "  Active Backlogs: %s\n", f.Data.ActiveBacklogs)
	}

	if len(f.Data.Skills) > 0 {
		b.WriteString("\n" + previewHeadingStyle.Render("Skills") + "\n")
		b.WriteString("  " + strings.Join(f.Data.Skills, ", ") + "\n")
	}

	var titled []int
	for i, p := range f.Projects {
		if strings.TrimSpace(p.Title) != "" {
			titled = append(titled, i)
		}
	}
	if len(titled) > 0 {
		b.WriteString("\n" + previewHeadingStyle.Render("Projects") + "\n")
		for _, i := range titled {
			p := f.Projects[i]
			b.WriteString("  • " + p.Title + "\n")
			if p.Description != "" {
				b.WriteString("    " + p.Description + "\n")
			}
			if p.Link != "" {
				b.WriteString("    " + previewMutedStyle.Render(p.Link) + "\n")
			}
		}
	}

	var named []int
	for i, c := range f.Certifications {
		if strings.TrimSpace(c.Name) != "" {
			named = append(named, i)
		}
	}
	if len(named) > 0 {
		b.WriteString("\n" + previewHeadingStyle.Render("Certifications") + "\n")
		for _, i := range named {
			c := f.Certifications[i]
			line := "  • " + c.Name
			if c.Issuer != "" {
				line += " - " + c.Issuer
			}
			if c.Date != "" {
				line += " (" + c.Date + ")"
			}
			b.WriteString(line + "\n")
		}
	}

	if link := f.Data.Resume.Link(); link != "" {
		b.WriteString("\n" + previewHeadingStyle.Render("Resume") + "\n")
		b.WriteString("  " + link + "\n")
	} else if f.Data.Resume.Pending() {
		b.WriteString("\n" + previewHeadingStyle.Render("Resume") + "\n")
		b.WriteString("  " + f.Data.Resume.FileName + previewMutedStyle.Render(" (pending upload)") + "\n")
	}

	return b.String()
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
