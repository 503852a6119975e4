// Package session carries the identity of the person using the app.
//
// There is no login: the identity comes from configuration and is passed
// explicitly to whatever needs it.
package session

import "github.com/handiism/song-review-hub/internal/model"

// Session identifies the active local user.
type Session struct {
	UserID model.ID
}

// New returns a session for userID.
func New(userID model.ID) Session {
	return Session{UserID: userID}
}

// Owns reports whether a resource authored by userID belongs to this session.
// Only owners may edit or delete reviews and comments.
func (s Session) Owns(userID model.ID) bool {
	return s.UserID != 0 && s.UserID == userID
}
