package profile

import (
	"context"

	"github.com/tejaswik02/campusplace/internal/api"
	"github.com/tejaswik02/campusplace/internal/logger"
	"github.com/tejaswik02/campusplace/internal/store"
	"github.com/tejaswik02/campusplace/pkg/models"
)

// MergeRemote applies the backend's canonical profile over a local snapshot.
// Precedence: remote wins field-by-field for every field it included; fields
// the remote omitted keep their local value. Remote project and
// certification lists replace the local lists wholesale when present. A
// remote resume link does not displace a pending local upload, only the
// stored link underneath it.
func MergeRemote(local *models.DraftSnapshot, remote *models.Student) {
	setIf := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setIf(&local.FormData.FullName, remote.FullName)
	setIf(&local.FormData.Email, remote.Email)
	setIf(&local.FormData.Phone, remote.Phone)
	setIf(&local.FormData.Department, remote.Department)
	setIf(&local.FormData.RollNumber, remote.RollNumber)
	setIf(&local.FormData.Semester, remote.Semester)
	setIf(&local.FormData.GPA, remote.GPA)
	setIf(&local.FormData.TenthPercent, remote.TenthPercent)
	setIf(&local.FormData.TwelfthPercent, remote.TwelfthPercent)
	setIf(&local.FormData.ActiveBacklogs, remote.ActiveBacklogs)

	if remote.Skills != nil {
		local.FormData.Skills = append([]string(nil), remote.Skills...)
	}
	if remote.PreferredRoles != nil {
		local.FormData.PreferredRoles = append([]string(nil), remote.PreferredRoles...)
	}
	if remote.PreferredLocations != nil {
		local.FormData.PreferredLocations = append([]string(nil), remote.PreferredLocations...)
	}

	if remote.ResumeLink != nil {
		if local.FormData.Resume.Pending() {
			local.FormData.Resume.URL = *remote.ResumeLink
		} else {
			local.FormData.Resume = models.StoredLink(*remote.ResumeLink)
		}
	}

	if remote.Projects != nil {
		local.Projects = append([]models.Project(nil), remote.Projects...)
	}
	if remote.Certifications != nil {
		local.Certifications = append([]models.Certification(nil), remote.Certifications...)
	}
}

// Hydrate builds the form for an edit session: the stored draft first
// (synchronously), then the backend's canonical profile when a usable
// session token exists, so remote data has final say when both exist.
// Remote failures of any kind leave the form as it was.
func Hydrate(ctx context.Context, st *store.Store, client *api.Client) *Form {
	form := NewForm()
	if snap, ok := st.LoadDraft(); ok {
		form.Restore(snap)
	}

	token, ok := st.SessionToken(store.TokenKey)
	if !ok {
		return form
	}
	if api.TokenExpired(token) {
		logger.Log.Debug("session token expired, skipping profile fetch")
		return form
	}
	client.SetToken(token)

	remote, err := client.FetchProfile(ctx)
	if err != nil {
		logger.Log.Debug("profile fetch failed, keeping local data", "error", err)
		return form
	}

	snap := form.Snapshot()
	MergeRemote(snap, remote)
	form.Restore(snap)
	return form
}
