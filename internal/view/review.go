package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/song-review-hub/internal/form"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/route"
)

// ReviewDetail is a full review with its song and author.
type ReviewDetail struct {
	Review model.Review
	Song   model.Song
	User   model.User
	// CanEdit is true when the session wrote the review.
	CanEdit bool
}

// ReviewDetail loads review id, then its song and author concurrently. A
// missing song or author is treated as a missing review.
func (m *Manager) ReviewDetail(ctx context.Context, id model.ID) State[ReviewDetail] {
	review, err := m.catalog.Review(ctx, id)
	if err != nil {
		return missing[ReviewDetail](m, "review", err, "Failed to load review details")
	}

	var (
		song model.Song
		user model.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		song, err = m.catalog.Song(gctx, review.SongID)
		return err
	})
	g.Go(func() (err error) {
		user, err = m.catalog.User(gctx, review.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return missing[ReviewDetail](m, "review", err, "Failed to load review details")
	}

	return Ready(ReviewDetail{
		Review:  review,
		Song:    song,
		User:    user,
		CanEdit: m.session.Owns(review.UserID),
	})
}

// DeleteReview removes review id if the session wrote it, then goes home.
func (m *Manager) DeleteReview(ctx context.Context, id model.ID) bool {
	review, err := m.catalog.Review(ctx, id)
	if err != nil {
		m.fail("review.delete", err, "Failed to delete review")
		return false
	}
	if !m.session.Owns(review.UserID) {
		m.notify(LevelError, MsgDeleteReview)
		return false
	}

	if err := m.catalog.DeleteReview(ctx, id); err != nil {
		m.fail("review.delete", err, "Failed to delete review")
		return false
	}
	m.notify(LevelSuccess, MsgReviewDeleted)
	m.logger.Info("review deleted", "review", id)
	m.navigate(route.Home)
	return true
}

// ReviewEditor backs the add and edit review pages.
type ReviewEditor struct {
	// Songs fills the song select.
	Songs []model.Song
	Form  *form.Review
	// Original is the review being edited; nil when adding.
	Original *model.Review
}

// Editing reports whether the editor changes an existing review.
func (e ReviewEditor) Editing() bool {
	return e.Original != nil
}

// Action is the path the form submits to.
func (e ReviewEditor) Action() string {
	if e.Original != nil {
		return e.Original.EditPath()
	}
	return route.AddReview
}

// AddReview loads the song select for a blank review form.
func (m *Manager) AddReview(ctx context.Context) State[ReviewEditor] {
	songs, err := m.catalog.Songs(ctx)
	if err != nil {
		return failed[ReviewEditor](m, "review.add", err, "Failed to load songs")
	}
	return Ready(ReviewEditor{Songs: songs, Form: form.NewReview()})
}

// SubmitReview validates f and creates the review. An invalid form makes no
// request. On success it navigates to the new review.
func (m *Manager) SubmitReview(ctx context.Context, f *form.Review) (model.Review, bool) {
	if !f.Validate().Valid() {
		m.notify(LevelError, MsgFixForm)
		return model.Review{}, false
	}

	payload, err := f.Payload(m.session, m.now())
	if err != nil {
		m.notify(LevelError, MsgFixForm)
		return model.Review{}, false
	}
	created, err := m.catalog.CreateReview(ctx, payload)
	if err != nil {
		m.fail("review.create", err, "Failed to create review")
		return model.Review{}, false
	}

	m.notify(LevelSuccess, MsgReviewCreated)
	m.logger.Info("review created", "review", created.ID, "song", created.SongID)
	m.navigate(created.Path())
	return created, true
}

// EditReview loads review id prefilled into a form. When the session did not
// write the review it notifies, navigates home and returns StatusDenied.
func (m *Manager) EditReview(ctx context.Context, id model.ID) State[ReviewEditor] {
	var (
		review model.Review
		songs  []model.Song
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		review, err = m.catalog.Review(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		songs, err = m.catalog.Songs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return missing[ReviewEditor](m, "review.edit", err, "Failed to load review details")
	}

	if !m.session.Owns(review.UserID) {
		m.notify(LevelError, MsgEditForbidden)
		m.navigate(route.Home)
		return State[ReviewEditor]{Status: StatusDenied}
	}

	return Ready(ReviewEditor{
		Songs:    songs,
		Form:     form.FromReview(review),
		Original: &review,
	})
}

// SubmitEdit validates f and replaces original with it. createdAt is kept
// from original. On success it navigates to the review.
func (m *Manager) SubmitEdit(ctx context.Context, original model.Review, f *form.Review) (model.Review, bool) {
	if !m.session.Owns(original.UserID) {
		m.notify(LevelError, MsgEditForbidden)
		m.navigate(route.Home)
		return model.Review{}, false
	}
	if !f.Validate().Valid() {
		m.notify(LevelError, MsgFixForm)
		return model.Review{}, false
	}

	payload, err := f.UpdatePayload(m.session, original, m.now())
	if err != nil {
		m.notify(LevelError, MsgFixForm)
		return model.Review{}, false
	}
	updated, err := m.catalog.UpdateReview(ctx, original.ID, payload)
	if err != nil {
		m.fail("review.update", err, "Failed to update review")
		return model.Review{}, false
	}

	m.notify(LevelSuccess, MsgReviewUpdated)
	m.logger.Info("review updated", "review", original.ID)
	m.navigate(original.Path())
	return updated, true
}
