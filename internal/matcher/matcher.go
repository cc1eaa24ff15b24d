package matcher

import (
	"strings"

	"github.com/tejaswik02/campusplace/pkg/models"
)

// Score calculates how well an opportunity matches the student's draft.
// Returns a score between 0.0 and 1.0.
func Score(opp *models.Opportunity, draft *models.ProfileDraft) float64 {
	score := 0.0

	// Factor 1: skills found in the description (40% weight)
	score += matchSkills(opp, draft.Skills) * 0.4

	// Factor 2: preferred roles against the position (35% weight)
	score += matchRole(opp, draft.PreferredRoles) * 0.35

	// Factor 3: preferred locations (25% weight)
	score += matchLocation(opp, draft.PreferredLocations) * 0.25

	return score
}

// matchSkills checks how many of the student's skills appear in the
// posting's description.
func matchSkills(opp *models.Opportunity, skills []string) float64 {
	if opp.Description == "" || len(skills) == 0 {
		return 0.5 // Neutral when either side is missing
	}

	descLower := strings.ToLower(opp.Description)
	matched := 0
	for _, skill := range skills {
		if strings.Contains(descLower, strings.ToLower(skill)) {
			matched++
		}
	}

	return float64(matched) / float64(len(skills))
}

// matchRole checks the posting's position against the preferred roles.
func matchRole(opp *models.Opportunity, roles []string) float64 {
	position := strings.ToLower(opp.PositionName())
	if position == "" || len(roles) == 0 {
		return 0.5
	}

	for _, role := range roles {
		roleLower := strings.ToLower(role)
		if strings.Contains(position, roleLower) || strings.Contains(roleLower, position) {
			return 1.0
		}
	}

	// Partial credit on shared keywords
	for _, role := range roles {
		for _, keyword := range extractKeywords(strings.ToLower(role)) {
			if strings.Contains(position, keyword) {
				return 0.6
			}
		}
	}

	return 0.2
}

// matchLocation checks the posting's location against the preferred
// locations.
func matchLocation(opp *models.Opportunity, locations []string) float64 {
	if opp.Location == "" || len(locations) == 0 {
		return 0.5
	}

	oppLocLower := strings.ToLower(opp.Location)

	for _, loc := range locations {
		locLower := strings.ToLower(loc)
		if strings.Contains(oppLocLower, locLower) || strings.Contains(locLower, oppLocLower) {
			return 1.0
		}
	}

	if strings.Contains(oppLocLower, "remote") {
		return 0.8
	}

	// Partial match (same city/state token)
	oppParts := strings.Fields(oppLocLower)
	for _, loc := range locations {
		for _, locPart := range strings.Fields(strings.ToLower(loc)) {
			for _, oppPart := range oppParts {
				if len(oppPart) > 3 && len(locPart) > 3 && oppPart == locPart {
					return 0.6
				}
			}
		}
	}

	return 0.3
}

// extractKeywords extracts meaningful keywords from a role or title
func extractKeywords(title string) []string {
	// Common stop words to ignore
	stopWords := map[string]bool{
		"the": true, "a": true, "an": true, "and": true, "or": true,
		"but": true, "in": true, "on": true, "at": true, "to": true,
		"for": true, "of": true, "with": true, "by": true,
	}

	words := strings.Fields(title)
	keywords := []string{}

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:")
		if len(word) > 3 && !stopWords[word] {
			keywords = append(keywords, word)
		}
	}

	return keywords
}
