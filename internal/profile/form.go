package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tejaswik02/campusplace/internal/app"
	"github.com/tejaswik02/campusplace/pkg/models"
)

// Tag list caps. Skills are uncapped.
const (
	MaxPreferredRoles     = 10
	MaxPreferredLocations = 10
)

// TagList identifies one of the three tag collections on the form.
type TagList int

const (
	TagSkills TagList = iota
	TagRoles
	TagLocations
)

func (l TagList) String() string {
	switch l {
	case TagSkills:
		return "skills"
	case TagRoles:
		return "preferred roles"
	case TagLocations:
		return "preferred locations"
	}
	return "tags"
}

// Field names the scalar fields a command can set.
type Field string

const (
	FieldFullName       Field = "fullName"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldDepartment     Field = "department"
	FieldRollNumber     Field = "rollNumber"
	FieldSemester       Field = "semester"
	FieldGPA            Field = "gpa"
	FieldTenthPercent   Field = "tenthPercent"
	FieldTwelfthPercent Field = "twelfthPercent"
	FieldActiveBacklogs Field = "activeBacklogs"
)

// Form is the mutable in-memory profile for one edit session. It is owned
// by a single workflow; it is not shared across sessions. Every mutation
// notifies the change hook, which feeds the debounced draft writer.
type Form struct {
	Data           models.ProfileDraft
	Projects       []models.Project
	Certifications []models.Certification

	onChange func(*models.DraftSnapshot)
}

// NewForm returns a form with default values: empty scalars and one blank
// project and certification entry each, the way a fresh profile starts.
func NewForm() *Form {
	return &Form{
		Data: models.ProfileDraft{
			Skills:             []string{},
			PreferredRoles:     []string{},
			PreferredLocations: []string{},
			Resume:             models.NoResume(),
		},
		Projects:       []models.Project{{ID: uuid.NewString()}},
		Certifications: []models.Certification{{ID: uuid.NewString()}},
	}
}

// OnChange registers the hook called with a snapshot after every mutation.
func (f *Form) OnChange(fn func(*models.DraftSnapshot)) {
	f.onChange = fn
}

func (f *Form) notify() {
	if f.onChange != nil {
		f.onChange(f.Snapshot())
	}
}

// Snapshot returns a deep copy of the current form state.
func (f *Form) Snapshot() *models.DraftSnapshot {
	snap := &models.DraftSnapshot{
		FormData:       f.Data,
		Projects:       append([]models.Project(nil), f.Projects...),
		Certifications: append([]models.Certification(nil), f.Certifications...),
	}
	snap.FormData.Skills = append([]string(nil), f.Data.Skills...)
	snap.FormData.PreferredRoles = append([]string(nil), f.Data.PreferredRoles...)
	snap.FormData.PreferredLocations = append([]string(nil), f.Data.PreferredLocations...)
	return snap
}

// Restore replaces the form state from a snapshot without firing the change
// hook; hydration must not retrigger an autosave of what was just loaded.
func (f *Form) Restore(snap *models.DraftSnapshot) {
	f.Data = snap.FormData
	if f.Data.Skills == nil {
		f.Data.Skills = []string{}
	}
	if f.Data.PreferredRoles == nil {
		f.Data.PreferredRoles = []string{}
	}
	if f.Data.PreferredLocations == nil {
		f.Data.PreferredLocations = []string{}
	}
	if f.Data.Resume.Kind == "" {
		f.Data.Resume = models.NoResume()
	}
	if len(snap.Projects) > 0 {
		f.Projects = append([]models.Project(nil), snap.Projects...)
	}
	if len(snap.Certifications) > 0 {
		f.Certifications = append([]models.Certification(nil), snap.Certifications...)
	}
}

// SetScalar updates one scalar field.
func (f *Form) SetScalar(field Field, value string) error {
	switch field {
	case FieldFullName:
		f.Data.FullName = value
	case FieldEmail:
		f.Data.Email = value
	case FieldPhone:
		f.Data.Phone = value
	case FieldDepartment:
		f.Data.Department = value
	case FieldRollNumber:
		f.Data.RollNumber = value
	case FieldSemester:
		f.Data.Semester = value
	case FieldGPA:
		f.Data.GPA = value
	case FieldTenthPercent:
		f.Data.TenthPercent = value
	case FieldTwelfthPercent:
		f.Data.TwelfthPercent = value
	case FieldActiveBacklogs:
		f.Data.ActiveBacklogs = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	f.notify()
	return nil
}

func (f *Form) tags(list TagList) *[]string {
	switch list {
	case TagRoles:
		return &f.Data.PreferredRoles
	case TagLocations:
		return &f.Data.PreferredLocations
	default:
		return &f.Data.Skills
	}
}

// Cap returns the list's maximum size, or 0 for uncapped.
func (l TagList) Cap() int {
	switch l {
	case TagRoles:
		return MaxPreferredRoles
	case TagLocations:
		return MaxPreferredLocations
	}
	return 0
}

// AddTag appends a tag, preserving insertion order. Duplicates and adds
// beyond the list's cap are rejected.
func (f *Form) AddTag(list TagList, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("empty tag")
	}

	tags := f.tags(list)
	for _, existing := range *tags {
		if existing == tag {
			return app.ErrDuplicateTag
		}
	}
	if max := list.Cap(); max > 0 && len(*tags) >= max {
		return app.ErrTagLimit
	}

	*tags = append(*tags, tag)
	f.notify()
	return nil
}

// RemoveTag removes a tag; removing from an empty list or removing an
// absent tag is a no-op and reports false.
func (f *Form) RemoveTag(list TagList, tag string) bool {
	tags := f.tags(list)
	for i, existing := range *tags {
		if existing == tag {
			*tags = append((*tags)[:i], (*tags)[i+1:]...)
			f.notify()
			return true
		}
	}
	return false
}

// RemoveLastTag drops the most recent tag, the remove-last gesture on the
// tag input. A no-op on an empty list.
func (f *Form) RemoveLastTag(list TagList) bool {
	tags := f.tags(list)
	if len(*tags) == 0 {
		return false
	}
	*tags = (*tags)[:len(*tags)-1]
	f.notify()
	return true
}

// Tags returns a copy of the named tag list.
func (f *Form) Tags(list TagList) []string {
	return append([]string(nil), *f.tags(list)...)
}

// AddProject appends a project entry and returns its generated ID.
func (f *Form) AddProject(title, description, link string) string {
	p := models.Project{ID: uuid.NewString(), Title: title, Description: description, Link: link}
	f.Projects = append(f.Projects, p)
	f.notify()
	return p.ID
}

// UpdateProject sets one field on the project with the given ID.
func (f *Form) UpdateProject(id, field, value string) error {
	for i := range f.Projects {
		if f.Projects[i].ID != id {
			continue
		}
		switch field {
		case "title":
			f.Projects[i].Title = value
		case "description":
			f.Projects[i].Description = value
		case "link":
			f.Projects[i].Link = value
		default:
			return fmt.Errorf("unknown project field %q", field)
		}
		f.notify()
		return nil
	}
	return app.ErrNotFound
}

// RemoveProject removes the project with the given ID. The last remaining
// entry cannot be removed.
func (f *Form) RemoveProject(id string) error {
	if len(f.Projects) <= 1 {
		return app.ErrLastEntry
	}
	for i := range f.Projects {
		if f.Projects[i].ID == id {
			f.Projects = append(f.Projects[:i], f.Projects[i+1:]...)
			f.notify()
			return nil
		}
	}
	return app.ErrNotFound
}

// AddCertification appends a certification entry and returns its ID.
func (f *Form) AddCertification(name, issuer, date string) string {
	c := models.Certification{ID: uuid.NewString(), Name: name, Issuer: issuer, Date: date}
	f.Certifications = append(f.Certifications, c)
	f.notify()
	return c.ID
}

// RemoveCertification removes the certification with the given ID. The last
// remaining entry cannot be removed.
func (f *Form) RemoveCertification(id string) error {
	if len(f.Certifications) <= 1 {
		return app.ErrLastEntry
	}
	for i := range f.Certifications {
		if f.Certifications[i].ID == id {
			f.Certifications = append(f.Certifications[:i], f.Certifications[i+1:]...)
			f.notify()
			return nil
		}
	}
	return app.ErrNotFound
}

// AttachResumeFile marks a local file as the pending resume upload. Any
// stored link is retained as the fallback the save uses if the upload fails.
func (f *Form) AttachResumeFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot read resume file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("resume must be a file, not a directory")
	}

	f.Data.Resume = models.ResumeRef{
		Kind:     models.ResumePending,
		FilePath: path,
		FileName: filepath.Base(path),
		URL:      f.Data.Resume.URL, // fallback link, if any
	}
	f.notify()
	return nil
}

// SetResumeLink replaces the resume reference with a stored link, dropping
// any pending upload.
func (f *Form) SetResumeLink(url string) {
	f.Data.Resume = models.StoredLink(url)
	f.notify()
}

// RemoveResume clears the resume reference entirely.
func (f *Form) RemoveResume() {
	f.Data.Resume = models.NoResume()
	f.notify()
}
