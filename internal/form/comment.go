package form

import (
	"time"

	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/session"
)

// CommentBodyMin is the shortest accepted comment, after trimming.
const CommentBodyMin = 5

var commentMessages = map[string]string{
	"body.notblank": "Comment cannot be empty",
	"body.trimmin":  "Comment must be at least 5 characters long",
}

// Comment holds the song page's comment input.
type Comment struct {
	Body string `json:"body" validate:"notblank,trimmin=5"`

	Errors Errors `json:"-" validate:"-"`
}

// NewComment returns an empty comment form.
func NewComment() *Comment {
	return &Comment{Errors: Errors{}}
}

// Validate checks the body and stores the result in f.Errors.
func (f *Comment) Validate() Errors {
	f.Errors = check(f, commentMessages)
	return f.Errors
}

// Set replaces the body and clears its error.
func (f *Comment) Set(body string) {
	f.Body = body
	if f.Errors != nil {
		delete(f.Errors, FieldBody)
	}
}

// Payload builds a new comment on songID authored by s.
func (f *Comment) Payload(s session.Session, songID model.ID, now time.Time) model.Comment {
	return model.Comment{
		SongID:    songID,
		UserID:    s.UserID,
		Body:      f.Body,
		CreatedAt: model.NewTimestamp(now),
	}
}
