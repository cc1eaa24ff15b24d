package models

import (
	"encoding/json"
	"strings"
)

// Departments offered by the college, as the backend expects them.
var Departments = []string{"CSE", "ECE", "EEE", "MECH", "CIVIL"}

// ResumeKind discriminates the resume reference variants.
type ResumeKind string

const (
	ResumeNone    ResumeKind = "none"
	ResumePending ResumeKind = "pending" // local file waiting for upload
	ResumeLink    ResumeKind = "link"    // URL already known to the backend
)

// ResumeRef is the resume reference attached to a profile. Kind says which
// variant is active: a pending local file takes precedence over a stored
// link, and a successful upload replaces the link with the returned URL.
// On a pending reference, URL carries the previously stored link so a
// failed upload can fall back to it unchanged.
type ResumeRef struct {
	Kind     ResumeKind `json:"kind"`
	FilePath string     `json:"filePath,omitempty"`
	FileName string     `json:"fileName,omitempty"`
	URL      string     `json:"url,omitempty"`
}

// PendingUpload returns a resume reference for a local file not yet uploaded.
func PendingUpload(path, displayName string) ResumeRef {
	return ResumeRef{Kind: ResumePending, FilePath: path, FileName: displayName}
}

// StoredLink returns a resume reference for a URL the backend already has.
func StoredLink(url string) ResumeRef {
	return ResumeRef{Kind: ResumeLink, URL: url}
}

// NoResume returns the empty resume reference.
func NoResume() ResumeRef {
	return ResumeRef{Kind: ResumeNone}
}

// Pending reports whether a local file is waiting to be uploaded.
func (r ResumeRef) Pending() bool { return r.Kind == ResumePending }

// Link returns the stored URL, or "" if the reference is not a link.
func (r ResumeRef) Link() string {
	if r.Kind == ResumeLink {
		return r.URL
	}
	return ""
}

// FallbackLink returns the link a save should use when the pending upload
// fails: the URL retained from before the file was attached.
func (r ResumeRef) FallbackLink() string { return r.URL }

// ProfileDraft is the working, possibly incomplete profile a student edits
// locally. Numeric-looking fields stay strings: they are form inputs and the
// backend is the authority on their interpretation.
type ProfileDraft struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	RollNumber string `json:"rollNumber"`
	Semester   string `json:"semester"`

	GPA            string `json:"gpa"`
	TenthPercent   string `json:"tenthPercent"`
	TwelfthPercent string `json:"twelfthPercent"`
	ActiveBacklogs string `json:"activeBacklogs"`

	Skills             []string `json:"skills"`
	PreferredRoles     []string `json:"preferredRoles"`
	PreferredLocations []string `json:"preferredLocations"`

	Resume ResumeRef `json:"resume"`
}

// Project is a student project entry. The ID is client-generated and stable
// for the session.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Certification is a certification entry. Date is a calendar date kept as a
// string in YYYY-MM-DD form.
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// DraftSnapshot is the unit persisted to and loaded from the durable store.
type DraftSnapshot struct {
	FormData       ProfileDraft    `json:"formData"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
}

// Student is the backend's canonical profile shape. Scalar fields are
// pointers so a merge can tell an omitted field from an empty one.
type Student struct {
	FullName       *string `json:"fullName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Department     *string `json:"department,omitempty"`
	RollNumber     *string `json:"rollNumber,omitempty"`
	Semester       *string `json:"semester,omitempty"`
	GPA            *string `json:"gpa,omitempty"`
	TenthPercent   *string `json:"tenthPercent,omitempty"`
	TwelfthPercent *string `json:"twelfthPercent,omitempty"`
	ActiveBacklogs *string `json:"activeBacklogs,omitempty"`
	ResumeLink     *string `json:"resumeLink,omitempty"`

	Skills             []string `json:"skills,omitempty"`
	PreferredRoles     []string `json:"preferredRoles,omitempty"`
	PreferredLocations []string `json:"preferredLocations,omitempty"`

	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// Company is the posting company on an opportunity. The backend sometimes
// embeds the full document and sometimes just the name string, so both are
// accepted.
type Company struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts either a bare string or an embedded company object.
func (c *Company) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.ID = ""
		c.Name = name
		return nil
	}
	type alias Company
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = Company(a)
	return nil
}

// Opportunity is a job posting created by a recruiter or the TPO. The
// position lives under different field names depending on who created it.
type Opportunity struct {
	ID          string  `json:"_id"`
	Company     Company `json:"company"`
	Position    string  `json:"position"`
	Role        string  `json:"role"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Deadline    string  `json:"deadline"`
}

// PositionName returns the first populated position field.
func (o *Opportunity) PositionName() string {
	for _, s := range []string{o.Role, o.Title, o.Position} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// StudentAccount is a student row in the TPO verification queue.
type StudentAccount struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"isverified"`
}
