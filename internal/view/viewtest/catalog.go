// Package viewtest provides an in-memory catalog for testing code built on
// the view package.
package viewtest

import (
	"context"
	"sync"
	"time"

	apihttp "github.com/handiism/song-review-hub/internal/http"
	"github.com/handiism/song-review-hub/internal/model"
)

// CreatedReviewID and CreatedCommentID are the ids assigned to created
// records.
const (
	CreatedReviewID  model.ID = 17
	CreatedCommentID model.ID = 99
)

// ErrServer is a 500 response.
var ErrServer = &apihttp.RequestFailedError{Method: "GET", Path: "/", StatusCode: 500}

// NotFound builds a 404 response for path.
func NotFound(path string) error {
	return &apihttp.RequestFailedError{Method: "GET", Path: path, StatusCode: 404}
}

// Catalog serves fixed data and records every call by method name
// ("songs", "song", "createReview", ...). Fail makes a call return an error.
//
// Catalog is safe for concurrent use.
type Catalog struct {
	SongList    []model.Song
	AlbumList   []model.Album
	ReviewList  []model.Review
	CommentList []model.Comment
	UserList    []model.User

	Fail map[string]error

	mu        sync.Mutex
	calls     []string
	Created   []model.Review
	Updated   []model.Review
	Commented []model.Comment
	Deleted   []model.ID
}

// Day returns noon UTC on the given day of January 2024.
func Day(day int) model.Timestamp {
	return model.NewTimestamp(time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC))
}

// New returns a catalog with one album of two songs, a single, three
// reviews, two comments and two users. User 1 wrote review 1 and comment 10.
func New() *Catalog {
	album := model.ID(1)
	return &Catalog{
		SongList: []model.Song{
			{ID: 1, Title: "Come Together", Artist: "The Beatles", Duration: "4:19", TrackNumber: 1, AlbumID: &album},
			{ID: 2, Title: "Something", Artist: "The Beatles", Duration: "3:03", TrackNumber: 2, AlbumID: &album},
			{ID: 3, Title: "Single", Artist: "Solo", Duration: "2:00"},
		},
		AlbumList: []model.Album{{ID: 1, Title: "Abbey Road", Artist: "The Beatles", Genre: "Rock", ReleaseYear: 1969}},
		ReviewList: []model.Review{
			{ID: 1, SongID: 1, UserID: 1, Title: "Old", Body: "old body", Rating: 7, CreatedAt: Day(1)},
			{ID: 2, SongID: 2, UserID: 2, Title: "New", Body: "new body", Rating: 9, CreatedAt: Day(3)},
			{ID: 3, SongID: 1, UserID: 2, Title: "Mid", Body: "mid body", Rating: 5, CreatedAt: Day(2)},
		},
		CommentList: []model.Comment{
			{ID: 10, SongID: 1, UserID: 1, Body: "first!", CreatedAt: Day(1)},
			{ID: 11, SongID: 1, UserID: 5, Body: "ghost writer", CreatedAt: Day(4)},
		},
		UserList: []model.User{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}},
	}
}

func (c *Catalog) record(call string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
	return c.Fail[call]
}

// Calls returns every recorded call in order.
func (c *Catalog) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// Called counts the calls named call.
func (c *Catalog) Called(call string) int {
	n := 0
	for _, got := range c.Calls() {
		if got == call {
			n++
		}
	}
	return n
}

func (c *Catalog) Songs(context.Context) ([]model.Song, error) {
	if err := c.record("songs"); err != nil {
		return nil, err
	}
	return append([]model.Song(nil), c.SongList...), nil
}

func (c *Catalog) Song(_ context.Context, id model.ID) (model.Song, error) {
	if err := c.record("song"); err != nil {
		return model.Song{}, err
	}
	if s, ok := model.FindSong(c.SongList, id); ok {
		return s, nil
	}
	return model.Song{}, NotFound("/songs/" + id.String())
}

func (c *Catalog) Albums(context.Context) ([]model.Album, error) {
	if err := c.record("albums"); err != nil {
		return nil, err
	}
	return append([]model.Album(nil), c.AlbumList...), nil
}

func (c *Catalog) Album(_ context.Context, id model.ID) (model.Album, error) {
	if err := c.record("album"); err != nil {
		return model.Album{}, err
	}
	for _, a := range c.AlbumList {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Album{}, NotFound("/albums/" + id.String())
}

func (c *Catalog) Reviews(context.Context) ([]model.Review, error) {
	if err := c.record("reviews"); err != nil {
		return nil, err
	}
	return append([]model.Review(nil), c.ReviewList...), nil
}

func (c *Catalog) Review(_ context.Context, id model.ID) (model.Review, error) {
	if err := c.record("review"); err != nil {
		return model.Review{}, err
	}
	for _, r := range c.ReviewList {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Review{}, NotFound("/reviews/" + id.String())
}

func (c *Catalog) ReviewsBySong(_ context.Context, songID model.ID) ([]model.Review, error) {
	if err := c.record("reviewsBySong"); err != nil {
		return nil, err
	}
	var out []model.Review
	for _, r := range c.ReviewList {
		if r.SongID == songID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (c *Catalog) CreateReview(_ context.Context, r model.Review) (model.Review, error) {
	if err := c.record("createReview"); err != nil {
		return model.Review{}, err
	}
	c.mu.Lock()
	c.Created = append(c.Created, r)
	c.mu.Unlock()
	r.ID = CreatedReviewID
	return r, nil
}

func (c *Catalog) UpdateReview(_ context.Context, _ model.ID, r model.Review) (model.Review, error) {
	if err := c.record("updateReview"); err != nil {
		return model.Review{}, err
	}
	c.mu.Lock()
	c.Updated = append(c.Updated, r)
	c.mu.Unlock()
	return r, nil
}

func (c *Catalog) DeleteReview(_ context.Context, id model.ID) error {
	if err := c.record("deleteReview"); err != nil {
		return err
	}
	c.mu.Lock()
	c.Deleted = append(c.Deleted, id)
	c.mu.Unlock()
	return nil
}

func (c *Catalog) CommentsBySong(_ context.Context, songID model.ID) ([]model.Comment, error) {
	if err := c.record("commentsBySong"); err != nil {
		return nil, err
	}
	var out []model.Comment
	for _, cm := range c.CommentList {
		if cm.SongID == songID {
			out = append(out, cm)
		}
	}
	return out, nil
}

func (c *Catalog) CreateComment(_ context.Context, cm model.Comment) (model.Comment, error) {
	if err := c.record("createComment"); err != nil {
		return model.Comment{}, err
	}
	c.mu.Lock()
	c.Commented = append(c.Commented, cm)
	c.mu.Unlock()
	cm.ID = CreatedCommentID
	return cm, nil
}

func (c *Catalog) DeleteComment(_ context.Context, id model.ID) error {
	if err := c.record("deleteComment"); err != nil {
		return err
	}
	c.mu.Lock()
	c.Deleted = append(c.Deleted, id)
	c.mu.Unlock()
	return nil
}

func (c *Catalog) Users(context.Context) ([]model.User, error) {
	if err := c.record("users"); err != nil {
		return nil, err
	}
	return append([]model.User(nil), c.UserList...), nil
}

func (c *Catalog) User(_ context.Context, id model.ID) (model.User, error) {
	if err := c.record("user"); err != nil {
		return model.User{}, err
	}
	if u, ok := model.FindUser(c.UserList, id); ok {
		return u, nil
	}
	return model.User{}, NotFound("/users/" + id.String())
}
