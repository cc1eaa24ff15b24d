package profile

import (
	"strings"
	"testing"

	"github.com/tejaswik02/campusplace/pkg/models"
)

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func completeForm() *Form {
	f := NewForm()
	f.SetScalar(FieldFullName, "Asha Rao")
	f.SetScalar(FieldEmail, "asha@jntugv.edu.in")
	f.SetScalar(FieldPhone, "9999999999")
	f.SetScalar(FieldDepartment, "CSE")
	f.SetScalar(FieldRollNumber, "21CSE042")
	f.SetScalar(FieldSemester, "6")
	f.SetScalar(FieldGPA, "8.7")
	f.SetScalar(FieldTenthPercent, "92")
	f.SetScalar(FieldTwelfthPercent, "88")
	f.UpdateProject(f.Projects[0].ID, "title", "Portfolio Site")
	f.SetResumeLink("https://drive.example/x")
	return f
}

func TestCheckCompleteProfile(t *testing.T) {
	warnings := Check(completeForm())
	if len(warnings) != 0 {
		t.Errorf("complete profile produced warnings: %v", warnings)
	}
}

func TestCheckEmptyProfile(t *testing.T) {
	warnings := Check(NewForm())

	for _, want := range []string{"full name is required", "email is required", "no resume attached", "no project has a title"} {
		if !hasWarning(warnings, want) {
			t.Errorf("missing warning containing %q in %v", want, warnings)
		}
	}
}

func TestCheckFieldFormats(t *testing.T) {
	f := completeForm()
	f.SetScalar(FieldEmail, "not-an-address")
	f.SetScalar(FieldDepartment, "MBA")

	warnings := Check(f)
	if !hasWarning(warnings, "valid address") {
		t.Errorf("bad email not flagged: %v", warnings)
	}
	if !hasWarning(warnings, "department must be one of") {
		t.Errorf("unknown department not flagged: %v", warnings)
	}
}

func TestCheckRanges(t *testing.T) {
	tests := []struct {
		field Field
		value string
		want  string
	}{
		{FieldSemester, "9", "semester must be between 1 and 8"},
		{FieldGPA, "11", "CGPA must be between 0 and 10"},
		{FieldGPA, "eight", "CGPA must be a number"},
		{FieldTenthPercent, "120", "10th percentage must be between 0 and 100"},
		{FieldTwelfthPercent, "-4", "12th percentage must be between 0 and 100"},
	}

	for _, tt := range tests {
		f := completeForm()
		f.SetScalar(tt.field, tt.value)
		if warnings := Check(f); !hasWarning(warnings, tt.want) {
			t.Errorf("%s=%q: missing %q in %v", tt.field, tt.value, tt.want, warnings)
		}
	}
}

func TestCheckPendingResumeCountsAsAttached(t *testing.T) {
	f := completeForm()
	f.Data.Resume = models.PendingUpload("/tmp/resume.pdf", "resume.pdf")
	if hasWarning(Check(f), "no resume attached") {
		t.Error("pending upload flagged as missing resume")
	}

	f.RemoveResume()
	if !hasWarning(Check(f), "no resume attached") {
		t.Error("removed resume not flagged")
	}
}
