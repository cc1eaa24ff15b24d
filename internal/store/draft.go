package store

import (
	"encoding/json"

	"github.com/tejaswik02/campusplace/internal/logger"
	"github.com/tejaswik02/campusplace/pkg/models"
)

// Fixed keys. Only one draft exists at a time per store.
const (
	DraftKey    = "studentProfileDraft"
	TokenKey    = "token"
	TPOTokenKey = "tpoToken"
)

// SaveDraft serializes the snapshot under the fixed draft key.
func (s *Store) SaveDraft(snap *models.DraftSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.Set(DraftKey, string(data))
}

// LoadDraft reads the stored draft. Absent or malformed content yields
// (nil, false): a corrupt draft must never block the form from coming up
// with defaults, so it is logged and treated as missing.
func (s *Store) LoadDraft() (*models.DraftSnapshot, bool) {
	raw, ok, err := s.Get(DraftKey)
	if err != nil {
		logger.Log.Warn("failed to read draft", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	snap := &models.DraftSnapshot{}
	if err := json.Unmarshal([]byte(raw), snap); err != nil {
		logger.Log.Warn("discarding malformed draft", "error", err)
		return nil, false
	}
	return snap, true
}

// ClearDraft removes the stored draft.
func (s *Store) ClearDraft() error {
	return s.Delete(DraftKey)
}

// SessionToken returns the credential stored under key ("token" for
// students, "tpoToken" for the TPO), if any.
func (s *Store) SessionToken(key string) (string, bool) {
	token, ok, err := s.Get(key)
	if err != nil {
		logger.Log.Warn("failed to read session token", "error", err)
		return "", false
	}
	return token, ok && token != ""
}

// SetSessionToken stores a credential under key.
func (s *Store) SetSessionToken(key, token string) error {
	return s.Set(key, token)
}

// ClearSessionToken removes the credential under key.
func (s *Store) ClearSessionToken(key string) error {
	return s.Delete(key)
}
