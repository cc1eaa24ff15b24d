package store

import (
	"path/filepath"
	"testing"

	"github.com/tejaswik02/campusplace/pkg/models"
)

// openTestStore opens a store in a temp directory
func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetSetDelete(t *testing.T) {
	s := openTestStore(t)

	// Missing key
	_, ok, err := s.Get("missing")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Error("missing key reported present")
	}

	// Set then get
	if err := s.Set("k", "v1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, ok, err := s.Get("k")
	if err != nil || !ok {
		t.Fatalf("get after set: value=%q ok=%v err=%v", value, ok, err)
	}
	if value != "v1" {
		t.Errorf("got %q, want v1", value)
	}

	// Overwrite
	if err := s.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, _, _ = s.Get("k")
	if value != "v2" {
		t.Errorf("got %q after overwrite, want v2", value)
	}

	// Delete, twice (second is a no-op)
	if err := s.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("deleting absent key should not error: %v", err)
	}
	_, ok, _ = s.Get("k")
	if ok {
		t.Error("key still present after delete")
	}
}

func TestDraftRoundTrip(t *testing.T) {
	s := openTestStore(t)

	// Nothing stored yet
	if _, ok := s.LoadDraft(); ok {
		t.Error("empty store reported a draft")
	}

	snap := &models.DraftSnapshot{
		FormData: models.ProfileDraft{
			FullName:   "Asha Rao",
			Department: "CSE",
			GPA:        "8.7",
			Skills:     []string{"Go", "React"},
			Resume:     models.StoredLink("https://drive.example/x"),
		},
		Projects: []models.Project{{ID: "p1", Title: "Portfolio Site"}},
	}
	if err := s.SaveDraft(snap); err != nil {
		t.Fatalf("failed to save draft: %v", err)
	}

	loaded, ok := s.LoadDraft()
	if !ok {
		t.Fatal("draft not found after save")
	}
	if loaded.FormData.FullName != "Asha Rao" || loaded.FormData.GPA != "8.7" {
		t.Errorf("scalars did not round-trip: %+v", loaded.FormData)
	}
	if len(loaded.FormData.Skills) != 2 || loaded.FormData.Skills[0] != "Go" {
		t.Errorf("skills did not round-trip: %v", loaded.FormData.Skills)
	}
	if !loaded.FormData.Resume.Pending() && loaded.FormData.Resume.Link() != "https://drive.example/x" {
		t.Errorf("resume did not round-trip: %+v", loaded.FormData.Resume)
	}
	if len(loaded.Projects) != 1 || loaded.Projects[0].Title != "Portfolio Site" {
		t.Errorf("projects did not round-trip: %v", loaded.Projects)
	}

	if err := s.ClearDraft(); err != nil {
		t.Fatalf("failed to clear draft: %v", err)
	}
	if _, ok := s.LoadDraft(); ok {
		t.Error("draft still present after clear")
	}
}

func TestLoadDraftMalformed(t *testing.T) {
	s := openTestStore(t)

	// A corrupt draft must read as missing, not block the form
	if err := s.Set(DraftKey, "{not valid json"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if snap, ok := s.LoadDraft(); ok {
		t.Errorf("malformed draft should be discarded, got %+v", snap)
	}
}

func TestSessionTokens(t *testing.T) {
	s := openTestStore(t)

	if _, ok := s.SessionToken(TokenKey); ok {
		t.Error("empty store reported a session")
	}

	if err := s.SetSessionToken(TokenKey, "student-token"); err != nil {
		t.Fatalf("failed to store token: %v", err)
	}
	if err := s.SetSessionToken(TPOTokenKey, "tpo-token"); err != nil {
		t.Fatalf("failed to store tpo token: %v", err)
	}

	// The two sessions are independent
	token, ok := s.SessionToken(TokenKey)
	if !ok || token != "student-token" {
		t.Errorf("student token: got %q ok=%v", token, ok)
	}
	token, ok = s.SessionToken(TPOTokenKey)
	if !ok || token != "tpo-token" {
		t.Errorf("tpo token: got %q ok=%v", token, ok)
	}

	if err := s.ClearSessionToken(TokenKey); err != nil {
		t.Fatalf("failed to clear token: %v", err)
	}
	if _, ok := s.SessionToken(TokenKey); ok {
		t.Error("student token still present after clear")
	}
	if _, ok := s.SessionToken(TPOTokenKey); !ok {
		t.Error("clearing the student session dropped the tpo session")
	}

	// An empty stored value reads as absent
	if err := s.SetSessionToken(TokenKey, ""); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, ok := s.SessionToken(TokenKey); ok {
		t.Error("empty token reported present")
	}
}
