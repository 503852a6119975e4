package form

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/session"
)

// Length bounds for review fields, measured on trimmed text.
const (
	TitleMin      = 5
	TitleMax      = 100
	ReviewBodyMin = 20
	ReviewBodyMax = 1000
)

var reviewMessages = map[string]string{
	"songId":         "Please select a song",
	"title.notblank": "Review title is required",
	"title.trimmin":  "Title must be at least 5 characters long",
	"title.trimmax":  "Title must not exceed 100 characters",
	"body.notblank":  "Review body is required",
	"body.trimmin":   "Review must be at least 20 characters long",
	"body.trimmax":   "Review must not exceed 1000 characters",
	"rating":         "Please select a rating",
	"agreeToTerms":   "You must agree to the terms and conditions",
}

// Review holds the inputs of the add and edit review forms.
//
// Values are kept as entered (strings for the select and radio inputs) so a
// rejected submission can be shown back to the user unchanged. Errors holds
// the result of the last Validate call, minus any field edited since.
//
// Example:
//
//	f := form.NewReview()
//	f.Set(form.FieldSongID, "2")
//	f.Set(form.FieldTitle, "Great Track")
//	if !f.Validate().Valid() {
//	    // show f.Errors
//	}
type Review struct {
	SongID       string `json:"songId" validate:"required,number"`
	Title        string `json:"title" validate:"notblank,trimmin=5,trimmax=100"`
	Body         string `json:"body" validate:"notblank,trimmin=20,trimmax=1000"`
	Rating       string `json:"rating" validate:"required,oneof=1 2 3 4 5 6 7 8 9 10"`
	AgreeToTerms bool   `json:"agreeToTerms" validate:"required"`

	Errors Errors `json:"-" validate:"-"`
}

// NewReview returns an empty review form.
func NewReview() *Review {
	return &Review{Errors: Errors{}}
}

// FromReview prefills a form for editing an existing review. The terms box
// starts checked since the author already agreed when creating it.
func FromReview(r model.Review) *Review {
	return &Review{
		SongID:       r.SongID.String(),
		Title:        r.Title,
		Body:         r.Body,
		Rating:       strconv.Itoa(r.Rating),
		AgreeToTerms: true,
		Errors:       Errors{},
	}
}

// Validate runs every rule on every field and stores the result in f.Errors.
func (f *Review) Validate() Errors {
	f.Errors = check(f, reviewMessages)
	return f.Errors
}

// Set changes one text field and clears its error. Unknown fields are ignored.
func (f *Review) Set(field Field, value string) {
	switch field {
	case FieldSongID:
		f.SongID = value
	case FieldTitle:
		f.Title = value
	case FieldBody:
		f.Body = value
	case FieldRating:
		f.Rating = value
	default:
		return
	}
	f.clear(field)
}

// SetAgree changes the terms checkbox and clears its error.
func (f *Review) SetAgree(agree bool) {
	f.AgreeToTerms = agree
	f.clear(FieldAgreeToTerms)
}

func (f *Review) clear(field Field) {
	if f.Errors != nil {
		delete(f.Errors, field)
	}
}

// TitleCount and BodyCount feed the "N/100" and "N/1000" counters.
func (f *Review) TitleCount() int { return utf8.RuneCountInString(f.Title) }

func (f *Review) BodyCount() int { return utf8.RuneCountInString(f.Body) }

// Payload builds a new review for s. Both timestamps are set to now.
func (f *Review) Payload(s session.Session, now time.Time) (model.Review, error) {
	songID, err := model.ParseID(f.SongID)
	if err != nil {
		return model.Review{}, fmt.Errorf("song: %w", err)
	}
	rating, err := strconv.Atoi(f.Rating)
	if err != nil {
		return model.Review{}, fmt.Errorf("rating: %w", err)
	}

	ts := model.NewTimestamp(now)
	return model.Review{
		SongID:    songID,
		UserID:    s.UserID,
		Title:     f.Title,
		Body:      f.Body,
		Rating:    rating,
		CreatedAt: ts,
		UpdatedAt: ts,
	}, nil
}

// UpdatePayload builds the replacement for original. createdAt is carried
// over unchanged; updatedAt is set to now.
func (f *Review) UpdatePayload(s session.Session, original model.Review, now time.Time) (model.Review, error) {
	r, err := f.Payload(s, now)
	if err != nil {
		return model.Review{}, err
	}
	r.ID = original.ID
	r.CreatedAt = original.CreatedAt
	return r, nil
}
