package client

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/community-aid/helpboard-api/schema"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// UserSummary is the cached identity of the signed-in user, as returned
// by signin. It lives for the session only; the backend remains the
// record of truth.
type UserSummary struct {
	Email    string          `json:"email"`
	UserType schema.UserRole `json:"userType"`
	UserID   int64           `json:"userId"`
}

// User converts the summary into the shape the lifecycle rules take.
func (u *UserSummary) User() *schema.User {
	if u == nil {
		return nil
	}
	return &schema.User{
		ID:    u.UserID,
		Email: u.Email,
		Role:  u.UserType,
	}
}

// Session holds the bearer token and user identity, persisted under two
// files in a state directory so a restart restores the signed-in state.
// Missing or partial files mean "logged out", never an error.
type Session struct {
	dir   string
	token string
	user  *UserSummary
}

func NewSession(dir string) *Session {
	return &Session{dir: dir}
}

// Restore loads the persisted token and user. The session stays
// unauthenticated unless both are present and readable.
func (s *Session) Restore() error {
	s.token = ""
	s.user = nil

	tokenBytes, err := ioutil.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return nil
	}

	userBytes, err := ioutil.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return nil
	}

	var user UserSummary
	if err := json.Unmarshal(userBytes, &user); err != nil {
		return nil
	}

	s.token = string(tokenBytes)
	s.user = &user
	return nil
}

// Establish stores the token and user atomically: either both persist or
// neither does.
func (s *Session) Establish(token string, user UserSummary) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}

	userBytes, err := json.Marshal(user)
	if err != nil {
		return err
	}

	tokenTmp := filepath.Join(s.dir, tokenFile+".tmp")
	userTmp := filepath.Join(s.dir, userFile+".tmp")

	if err := ioutil.WriteFile(tokenTmp, []byte(token), 0600); err != nil {
		return err
	}
	if err := ioutil.WriteFile(userTmp, userBytes, 0600); err != nil {
		os.Remove(tokenTmp)
		return err
	}

	if err := os.Rename(tokenTmp, filepath.Join(s.dir, tokenFile)); err != nil {
		os.Remove(tokenTmp)
		os.Remove(userTmp)
		return err
	}
	if err := os.Rename(userTmp, filepath.Join(s.dir, userFile)); err != nil {
		os.Remove(filepath.Join(s.dir, tokenFile))
		os.Remove(userTmp)
		return err
	}

	s.token = token
	s.user = &user
	return nil
}

// Clear removes the persisted token and user together.
func (s *Session) Clear() {
	os.Remove(filepath.Join(s.dir, tokenFile))
	os.Remove(filepath.Join(s.dir, userFile))
	s.token = ""
	s.user = nil
}

func (s *Session) IsAuthenticated() bool {
	return s.token != "" && s.user != nil
}

// CurrentToken returns the bearer token, or the empty string when logged
// out.
func (s *Session) CurrentToken() string {
	return s.token
}

// CurrentUser returns the cached identity, or nil when logged out.
func (s *Session) CurrentUser() *UserSummary {
	return s.user
}
