package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/tejaswik02/campusplace/internal/api"
	"github.com/tejaswik02/campusplace/internal/store"
	"github.com/tejaswik02/campusplace/pkg/models"
)

func str(s string) *string { return &s }

func openTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestMergeRemoteWinsFieldByField(t *testing.T) {
	local := &models.DraftSnapshot{
		FormData: models.ProfileDraft{
			FullName:   "Local Name",
			Email:      "local@example.com",
			Phone:      "1111111111",
			Department: "ECE",
			Skills:     []string{"Go"},
		},
	}
	remote := &models.Student{
		FullName: str("Asha Rao"),
		Email:    str("asha@jntugv.edu.in"),
		// Phone and Department omitted
		Skills: []string{"Go", "React", "SQL"},
	}

	MergeRemote(local, remote)

	if local.FormData.FullName != "Asha Rao" || local.FormData.Email != "asha@jntugv.edu.in" {
		t.Errorf("remote fields did not win: %+v", local.FormData)
	}
	// Omitted remote fields keep the local value
	if local.FormData.Phone != "1111111111" || local.FormData.Department != "ECE" {
		t.Errorf("omitted remote fields clobbered local: %+v", local.FormData)
	}
	if len(local.FormData.Skills) != 3 {
		t.Errorf("remote skill list should replace wholesale: %v", local.FormData.Skills)
	}

	// An explicitly empty remote field still wins
	MergeRemote(local, &models.Student{Phone: str("")})
	if local.FormData.Phone != "" {
		t.Errorf("empty remote phone should overwrite, got %q", local.FormData.Phone)
	}
}

func TestMergeRemoteLists(t *testing.T) {
	local := &models.DraftSnapshot{
		Projects: []models.Project{{ID: "local-1", Title: "Old Project"}},
	}
	remote := &models.Student{
		Projects: []models.Project{
			{ID: "r1", Title: "Portfolio Site"},
			{ID: "r2", Title: "Chat App"},
		},
	}

	MergeRemote(local, remote)
	if len(local.Projects) != 2 || local.Projects[0].Title != "Portfolio Site" {
		t.Errorf("remote projects should replace local: %+v", local.Projects)
	}

	// nil remote list leaves local untouched
	MergeRemote(local, &models.Student{})
	if len(local.Projects) != 2 {
		t.Errorf("merge without remote projects changed the list: %+v", local.Projects)
	}
}

func TestMergeRemoteResume(t *testing.T) {
	// A stored link is replaced by the remote one
	local := &models.DraftSnapshot{
		FormData: models.ProfileDraft{Resume: models.StoredLink("https://old.example/r")},
	}
	MergeRemote(local, &models.Student{ResumeLink: str("https://new.example/r")})
	if local.FormData.Resume.Link() != "https://new.example/r" {
		t.Errorf("remote link did not replace stored link: %+v", local.FormData.Resume)
	}

	// A pending local upload survives; the remote link becomes its fallback
	local = &models.DraftSnapshot{
		FormData: models.ProfileDraft{Resume: models.PendingUpload("/tmp/r.pdf", "r.pdf")},
	}
	MergeRemote(local, &models.Student{ResumeLink: str("https://new.example/r")})
	if !local.FormData.Resume.Pending() {
		t.Fatal("remote link displaced the pending upload")
	}
	if local.FormData.Resume.FallbackLink() != "https://new.example/r" {
		t.Errorf("remote link not kept as fallback: %+v", local.FormData.Resume)
	}
}

func TestHydrateDraftOnly(t *testing.T) {
	st := openTestStore(t)
	st.SaveDraft(&models.DraftSnapshot{
		FormData: models.ProfileDraft{FullName: "Asha Rao", Department: "CSE"},
	})

	// No session token: the remote fetch is skipped entirely
	client := api.New("http://127.0.0.1:1", time.Second)
	f := Hydrate(context.Background(), st, client)

	if f.Data.FullName != "Asha Rao" || f.Data.Department != "CSE" {
		t.Errorf("draft not restored: %+v", f.Data)
	}
}

func TestHydrateRemoteWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/student/profile" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer opaque-token" {
			t.Errorf("missing bearer credential: %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]*models.Student{
			"student": {
				FullName: str("Asha Rao"),
				Email:    str("asha@jntugv.edu.in"),
			},
		})
	}))
	defer srv.Close()

	st := openTestStore(t)
	st.SaveDraft(&models.DraftSnapshot{
		FormData: models.ProfileDraft{FullName: "Draft Name", Phone: "9999999999"},
	})
	st.SetSessionToken(store.TokenKey, "opaque-token")

	f := Hydrate(context.Background(), st, api.New(srv.URL, time.Second))

	if f.Data.FullName != "Asha Rao" {
		t.Errorf("remote fullName should win: %q", f.Data.FullName)
	}
	if f.Data.Phone != "9999999999" {
		t.Errorf("field the remote omitted should keep the draft value: %q", f.Data.Phone)
	}
}

func TestHydrateRemoteFailureKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	st := openTestStore(t)
	st.SaveDraft(&models.DraftSnapshot{
		FormData: models.ProfileDraft{FullName: "Draft Name"},
	})
	st.SetSessionToken(store.TokenKey, "opaque-token")

	f := Hydrate(context.Background(), st, api.New(srv.URL, time.Second))
	if f.Data.FullName != "Draft Name" {
		t.Errorf("fetch failure should leave the draft intact: %q", f.Data.FullName)
	}
}
