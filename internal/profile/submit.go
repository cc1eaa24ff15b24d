package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/tejaswik02/campusplace/internal/api"
	"github.com/tejaswik02/campusplace/internal/app"
	"github.com/tejaswik02/campusplace/internal/logger"
	"github.com/tejaswik02/campusplace/internal/store"
	"github.com/tejaswik02/campusplace/pkg/models"
)

// SaveResult reports a completed profile submission. ResumeWarning is set
// when the optional resume upload failed but the save went through anyway.
type SaveResult struct {
	Student       *models.Student
	ResumeLink    string
	ResumeWarning string
}

// Submitter runs the profile save pipeline against the backend. A single
// submission may be in flight at a time; re-entrant calls are rejected
// rather than queued.
type Submitter struct {
	mu   sync.Mutex
	busy bool

	form   *Form
	client *api.Client
	store  *store.Store
}

// NewSubmitter wires a submitter to a form, the backend client and the
// draft store.
func NewSubmitter(form *Form, client *api.Client, st *store.Store) *Submitter {
	return &Submitter{form: form, client: client, store: st}
}

// Submit validates readiness, resolves the resume asset, saves the profile
// and reconciles the backend's response into the form. On failure the form
// is left untouched so the user can retry without re-entering anything.
func (s *Submitter) Submit(ctx context.Context) (*SaveResult, error) {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, app.ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	// Step 1: resolve the resume asset. Upload failure is non-fatal; the
	// save proceeds with the previous link unchanged.
	resolvedLink, warning := s.resolveResume(ctx)

	// Step 2: build the normalized payload.
	payload := buildPayload(s.form.Snapshot(), resolvedLink)

	// Step 3: authenticated save.
	student, err := s.client.SaveProfile(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	// Step 4: the server is the source of truth post-save.
	s.reconcile(student, resolvedLink)

	if err := s.store.ClearDraft(); err != nil {
		logger.Log.Warn("failed to clear draft after save", "error", err)
	}

	return &SaveResult{Student: student, ResumeLink: resolvedLink, ResumeWarning: warning}, nil
}

// resolveResume reconciles a pending local file against the stored link and
// decides what the save sends. Returns the link to use and a non-fatal
// warning when the upload failed.
func (s *Submitter) resolveResume(ctx context.Context) (string, string) {
	ref := s.form.Data.Resume
	if !ref.Pending() {
		return ref.Link(), ""
	}

	url, err := s.client.UploadResume(ctx, ref.FilePath)
	if err != nil {
		logger.Log.Warn("resume upload failed", "file", ref.FileName, "error", err)
		return ref.FallbackLink(), fmt.Sprintf("resume upload failed (%v); saved with the previous resume link", err)
	}
	return url, ""
}

// buildPayload copies the snapshot verbatim into the backend's flattened
// shape, with the resume field set to the resolved link.
func buildPayload(snap *models.DraftSnapshot, resumeLink string) *api.SavePayload {
	return &api.SavePayload{
		FullName:       snap.FormData.FullName,
		Email:          snap.FormData.Email,
		Phone:          snap.FormData.Phone,
		Department:     snap.FormData.Department,
		RollNumber:     snap.FormData.RollNumber,
		Semester:       snap.FormData.Semester,
		GPA:            snap.FormData.GPA,
		TenthPercent:   snap.FormData.TenthPercent,
		TwelfthPercent: snap.FormData.TwelfthPercent,
		ActiveBacklogs: snap.FormData.ActiveBacklogs,

		Skills:             snap.FormData.Skills,
		PreferredRoles:     snap.FormData.PreferredRoles,
		PreferredLocations: snap.FormData.PreferredLocations,

		Projects:       snap.Projects,
		Certifications: snap.Certifications,

		ResumeLink: resumeLink,
	}
}

// reconcile merges the fields the backend returned back into the form.
func (s *Submitter) reconcile(student *models.Student, resolvedLink string) {
	if student.FullName != nil {
		s.form.Data.FullName = *student.FullName
	}
	if student.Email != nil {
		s.form.Data.Email = *student.Email
	}

	switch {
	case student.ResumeLink != nil && *student.ResumeLink != "":
		s.form.Data.Resume = models.StoredLink(*student.ResumeLink)
	case resolvedLink != "":
		s.form.Data.Resume = models.StoredLink(resolvedLink)
	default:
		s.form.Data.Resume = models.NoResume()
	}

	if student.Projects != nil {
		s.form.Projects = append([]models.Project(nil), student.Projects...)
	}
	if student.Certifications != nil {
		s.form.Certifications = append([]models.Certification(nil), student.Certifications...)
	}
}
