// Package session stores the most-recently-fetched video statistics in the
// operator's cookie session, keyed by a per-fetch token.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"thirdcoast.systems/adrevenue/internal/feature"
)

const (
	SessionName = "adrevenue_session"
	statsKey    = "fetched_stats"
	tokenKey    = "fetch_token"
)

var (
	// ErrNoFetchedStats means the session holds no fetched statistics.
	ErrNoFetchedStats = errors.New("no fetched statistics in session")
	// ErrStaleToken means the submitted token does not identify the stored
	// statistics; a newer fetch has replaced them.
	ErrStaleToken = errors.New("fetched statistics are stale")
)

type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	if secret == "" {
		secret = generateSecret()
	}
	return &Manager{
		store: sessions.NewCookieStore([]byte(secret)),
	}
}

func generateSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// SaveFetchedStats stores raw under token, replacing whatever fetch came
// before it. One record per operator session; each fetch overwrites the last.
func (m *Manager) SaveFetchedStats(w http.ResponseWriter, r *http.Request, token string, raw feature.RawVideoStats) error {
	payload, err := json.Marshal(raw)
	if err != nil {
		return err
	}

	session, _ := m.store.Get(r, SessionName)
	session.Values[statsKey] = string(payload)
	session.Values[tokenKey] = token

	isHTTPS := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
	session.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600, // fetched stats are short-lived working state
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   isHTTPS,
	}

	return session.Save(r, w)
}

// FetchedStats returns the stored statistics if token matches the stored
// fetch token. A missing record reports ErrNoFetchedStats; a token from an
// earlier fetch reports ErrStaleToken.
func (m *Manager) FetchedStats(r *http.Request, token string) (feature.RawVideoStats, error) {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		return feature.RawVideoStats{}, ErrNoFetchedStats
	}

	storedToken, ok := session.Values[tokenKey].(string)
	if !ok {
		return feature.RawVideoStats{}, ErrNoFetchedStats
	}
	payload, ok := session.Values[statsKey].(string)
	if !ok {
		return feature.RawVideoStats{}, ErrNoFetchedStats
	}

	if token == "" || token != storedToken {
		return feature.RawVideoStats{}, ErrStaleToken
	}

	var raw feature.RawVideoStats
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return feature.RawVideoStats{}, ErrNoFetchedStats
	}

	return raw, nil
}

// ClearFetchedStats drops the stored record. Called after a prediction is
// served; the record does not outlive the prediction call.
func (m *Manager) ClearFetchedStats(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	delete(session.Values, statsKey)
	delete(session.Values, tokenKey)
	return session.Save(r, w)
}
