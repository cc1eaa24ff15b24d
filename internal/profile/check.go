package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// requiredFields mirrors the fields the form marks as required. Numeric
// fields stay strings here; ranges are checked separately so an empty field
// reads as "missing" rather than "out of range".
type requiredFields struct {
	FullName       string `validate:"required"`
	Email          string `validate:"required,email"`
	Phone          string `validate:"required"`
	Department     string `validate:"required,oneof=CSE ECE EEE MECH CIVIL"`
	RollNumber     string `validate:"required"`
	Semester       string `validate:"required"`
	GPA            string `validate:"required"`
	TenthPercent   string `validate:"required"`
	TwelfthPercent string `validate:"required"`
}

// Check reports completeness problems with the profile as warnings. It
// never blocks a save: the backend is the final authority on acceptance.
func Check(f *Form) []string {
	var warnings []string

	fields := requiredFields{
		FullName:       strings.TrimSpace(f.Data.FullName),
		Email:          strings.TrimSpace(f.Data.Email),
		Phone:          strings.TrimSpace(f.Data.Phone),
		Department:     strings.TrimSpace(f.Data.Department),
		RollNumber:     strings.TrimSpace(f.Data.RollNumber),
		Semester:       strings.TrimSpace(f.Data.Semester),
		GPA:            strings.TrimSpace(f.Data.GPA),
		TenthPercent:   strings.TrimSpace(f.Data.TenthPercent),
		TwelfthPercent: strings.TrimSpace(f.Data.TwelfthPercent),
	}

	if err := validate.Struct(fields); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				warnings = append(warnings, fieldWarning(fe))
			}
		}
	}

	warnings = append(warnings, rangeWarnings(&fields)...)

	if !f.Data.Resume.Pending() && f.Data.Resume.Link() == "" {
		warnings = append(warnings, "no resume attached: set a link or attach a file")
	}

	titled := false
	for _, p := range f.Projects {
		if strings.TrimSpace(p.Title) != "" {
			titled = true
			break
		}
	}
	if !titled {
		warnings = append(warnings, "no project has a title yet")
	}

	return warnings
}

func fieldWarning(fe validator.FieldError) string {
	switch {
	case fe.Tag() == "required":
		return fmt.Sprintf("%s is required", fieldLabel(fe.Field()))
	case fe.Field() == "Email":
		return "email does not look like a valid address"
	case fe.Field() == "Department":
		return "department must be one of CSE, ECE, EEE, MECH, CIVIL"
	default:
		return fmt.Sprintf("%s is invalid", fieldLabel(fe.Field()))
	}
}

// rangeWarnings checks numeric fields that were filled in at all.
func rangeWarnings(fields *requiredFields) []string {
	var warnings []string

	checkRange := func(label, raw string, min, max float64) {
		if raw == "" {
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s must be a number", label))
			return
		}
		if v < min || v > max {
			warnings = append(warnings, fmt.Sprintf("%s must be between %g and %g", label, min, max))
		}
	}

	checkRange("semester", fields.Semester, 1, 8)
	checkRange("CGPA", fields.GPA, 0, 10)
	checkRange("10th percentage", fields.TenthPercent, 0, 100)
	checkRange("12th percentage", fields.TwelfthPercent, 0, 100)

	return warnings
}

func fieldLabel(name string) string {
	switch name {
	case "FullName":
		return "full name"
	case "RollNumber":
		return "roll number"
	case "TenthPercent":
		return "10th percentage"
	case "TwelfthPercent":
		return "12th percentage"
	case "GPA":
		return "CGPA"
	default:
		return strings.ToLower(name)
	}
}
