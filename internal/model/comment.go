package model

import "slices"

// UnknownUser is shown in place of a username that cannot be resolved.
const UnknownUser = "Unknown User"

// Comment is a free-text remark on a song.
type Comment struct {
	ID        ID        `json:"id,omitempty"`
	SongID    ID        `json:"songId"`
	UserID    ID        `json:"userId"`
	Body      string    `json:"body"`
	CreatedAt Timestamp `json:"createdAt"`
}

// SortCommentsNewestFirst orders comments by creation time, newest first.
// Ties keep their relative order.
func SortCommentsNewestFirst(comments []Comment) {
	slices.SortStableFunc(comments, func(a, b Comment) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
}

// User is an account that writes reviews and comments.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
}

// FindUser returns the user with the given id.
func FindUser(users []User, id ID) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Username resolves a user id to its username, or UnknownUser.
func Username(users []User, id ID) string {
	if u, ok := FindUser(users, id); ok && u.Username != "" {
		return u.Username
	}
	return UnknownUser
}
