package cmd

import (
	"fmt"
	"strings"

	"github.com/tejaswik02/campusplace/internal/profile"
)

// shortID truncates a generated ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID matches user input against known IDs, accepting the shortened
// display form as long as it is unambiguous.
func resolveID(input string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no entry with ID %q", input)
	default:
		return "", fmt.Errorf("ID %q is ambiguous, use more characters", input)
	}
}

func projectIDs(form *profile.Form) []string {
	ids := make([]string, len(form.Projects))
	for i, p := range form.Projects {
		ids[i] = p.ID
	}
	return ids
}

func certIDs(form *profile.Form) []string {
	ids := make([]string, len(form.Certifications))
	for i, c := range form.Certifications {
		ids[i] = c.ID
	}
	return ids
}
