package catalog

import (
	"context"
	"fmt"

	"github.com/handiism/song-review-hub/internal/http"
	"github.com/handiism/song-review-hub/internal/model"
)

// API exposes the song review REST endpoints as typed calls.
//
// Every method is a single round trip through the underlying http.Client, so
// every error it returns is an *http.RequestFailedError.
//
// Example usage:
//
//	api := catalog.New(http.NewClient("http://localhost:3001"))
//
//	songs, err := api.Songs(ctx)
//	reviews, err := api.ReviewsBySong(ctx, songs[0].ID)
type API struct {
	client *http.Client
}

// New creates an API over client.
func New(client *http.Client) *API {
	return &API{client: client}
}

// Songs lists every song.
func (a *API) Songs(ctx context.Context) ([]model.Song, error) {
	var songs []model.Song
	if err := a.client.GetJSON(ctx, "/songs", &songs); err != nil {
		return nil, err
	}
	return songs, nil
}

// Song fetches one song.
func (a *API) Song(ctx context.Context, id model.ID) (model.Song, error) {
	var song model.Song
	err := a.client.GetJSON(ctx, fmt.Sprintf("/songs/%d", id), &song)
	return song, err
}

// Albums lists every album.
func (a *API) Albums(ctx context.Context) ([]model.Album, error) {
	var albums []model.Album
	if err := a.client.GetJSON(ctx, "/albums", &albums); err != nil {
		return nil, err
	}
	return albums, nil
}

// Album fetches one album.
func (a *API) Album(ctx context.Context, id model.ID) (model.Album, error) {
	var album model.Album
	err := a.client.GetJSON(ctx, fmt.Sprintf("/albums/%d", id), &album)
	return album, err
}

// Reviews lists every review.
func (a *API) Reviews(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	if err := a.client.GetJSON(ctx, "/reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Review fetches one review.
func (a *API) Review(ctx context.Context, id model.ID) (model.Review, error) {
	var review model.Review
	err := a.client.GetJSON(ctx, fmt.Sprintf("/reviews/%d", id), &review)
	return review, err
}

// ReviewsBySong lists the reviews of one song. The filter runs on the server.
func (a *API) ReviewsBySong(ctx context.Context, songID model.ID) ([]model.Review, error) {
	var reviews []model.Review
	if err := a.client.GetJSON(ctx, fmt.Sprintf("/reviews?songId=%d", songID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview posts a new review and returns it as stored, including its id.
func (a *API) CreateReview(ctx context.Context, review model.Review) (model.Review, error) {
	var created model.Review
	err := a.client.PostJSON(ctx, "/reviews", review, &created)
	return created, err
}

// UpdateReview replaces review id and returns the stored version.
func (a *API) UpdateReview(ctx context.Context, id model.ID, review model.Review) (model.Review, error) {
	var updated model.Review
	err := a.client.PutJSON(ctx, fmt.Sprintf("/reviews/%d", id), review, &updated)
	return updated, err
}

// DeleteReview removes a review.
func (a *API) DeleteReview(ctx context.Context, id model.ID) error {
	return a.client.Delete(ctx, fmt.Sprintf("/reviews/%d", id))
}

// Comments lists every comment.
func (a *API) Comments(ctx context.Context) ([]model.Comment, error) {
	var comments []model.Comment
	if err := a.client.GetJSON(ctx, "/comments", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CommentsBySong lists the comments on one song.
func (a *API) CommentsBySong(ctx context.Context, songID model.ID) ([]model.Comment, error) {
	var comments []model.Comment
	if err := a.client.GetJSON(ctx, fmt.Sprintf("/comments?songId=%d", songID), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment posts a new comment.
func (a *API) CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error) {
	var created model.Comment
	err := a.client.PostJSON(ctx, "/comments", comment, &created)
	return created, err
}

// DeleteComment removes a comment.
func (a *API) DeleteComment(ctx context.Context, id model.ID) error {
	return a.client.Delete(ctx, fmt.Sprintf("/comments/%d", id))
}

// Users lists every user.
func (a *API) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := a.client.GetJSON(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User fetches one user.
func (a *API) User(ctx context.Context, id model.ID) (model.User, error) {
	var user model.User
	err := a.client.GetJSON(ctx, fmt.Sprintf("/users/%d", id), &user)
	return user, err
}

// Cover downloads the raw bytes of an album's cover image.
func (a *API) Cover(ctx context.Context, album model.Album) ([]byte, error) {
	if !album.HasCover() {
		return nil, fmt.Errorf("album %d has no cover image", album.ID)
	}
	return a.client.Get(ctx, album.CoverImage)
}
