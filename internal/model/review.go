package model

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 10
)

const (
	filledStar = "★"
	emptyStar  = "☆"
)

// Review is a star-rated review of a song written by a user.
type Review struct {
	ID        ID        `json:"id,omitempty"`
	SongID    ID        `json:"songId"`
	UserID    ID        `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Rating    int       `json:"rating"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// Path returns the review's detail route.
func (r Review) Path() string {
	return fmt.Sprintf("/reviews/%d", r.ID)
}

// EditPath returns the review's edit route.
func (r Review) EditPath() string {
	return r.Path() + "/edit"
}

// Edited reports whether the review was updated after creation.
func (r Review) Edited() bool {
	return !r.UpdatedAt.IsZero() && !r.UpdatedAt.Equal(r.CreatedAt.Time)
}

// Stars renders a rating as filled stars followed by empty stars, ten glyphs
// in total.
//
// Ratings outside [0,10] are clamped.
//
// Example:
//
//	Stars(3) // "★★★☆☆☆☆☆☆☆"
func Stars(rating int) string {
	rating = max(0, min(rating, MaxRating))
	return strings.Repeat(filledStar, rating) + strings.Repeat(emptyStar, MaxRating-rating)
}

// Excerpt returns the first n runes of s, followed by "..." when s was cut.
func Excerpt(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// SortReviewsNewestFirst orders reviews by creation time, newest first.
// Reviews created at the same instant keep their relative order.
func SortReviewsNewestFirst(reviews []Review) {
	slices.SortStableFunc(reviews, func(a, b Review) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
}
