package view

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/song-review-hub/internal/form"
	apihttp "github.com/handiism/song-review-hub/internal/http"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/session"
	"github.com/handiism/song-review-hub/internal/view/viewtest"
)

// recorder collects notifications and redirects.
type recorder struct {
	mu            sync.Mutex
	notifications []Notification
	paths         []string
}

func (r *recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recorder) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) messages() []string {
	var out []string
	for _, n := range r.notifications {
		out = append(out, n.Message)
	}
	return out
}

var fixedNow = time.Date(2024, 10, 15, 14, 30, 0, 0, time.UTC)

func newManager(cat *viewtest.Catalog, rec *recorder) *Manager {
	return NewManager(cat, session.New(1),
		WithNotifier(rec),
		WithNavigator(rec),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func validReviewForm() *form.Review {
	f := form.NewReview()
	f.Set(form.FieldSongID, "2")
	f.Set(form.FieldTitle, "Great Track")
	f.Set(form.FieldBody, "This is a review body long enough.")
	f.Set(form.FieldRating, "8")
	f.SetAgree(true)
	return f
}

func TestHome_JoinsAndSortsNewestFirst(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}

	st := newManager(cat, rec).Home(context.Background())

	require.Equal(t, StatusReady, st.Status)
	require.Len(t, st.Data.Reviews, 3)
	assert.Equal(t, []model.ID{2, 3, 1}, []model.ID{st.Data.Reviews[0].Review.ID, st.Data.Reviews[1].Review.ID, st.Data.Reviews[2].Review.ID})

	first := st.Data.Reviews[0]
	require.NotNil(t, first.Song)
	require.NotNil(t, first.User)
	assert.Equal(t, "Something", first.Song.Title)
	assert.Equal(t, "bob", first.User.Username)

	cards := st.Data.Cards()
	require.Len(t, cards, 3)
	assert.Equal(t, "/reviews/2", cards[0].Target)
	assert.Equal(t, 1, cat.Called("reviews"))
	assert.Equal(t, 1, cat.Called("songs"))
	assert.Equal(t, 1, cat.Called("users"))
	assert.Empty(t, rec.notifications)
}

func TestHome_MissingJoinsStayNil(t *testing.T) {
	cat := viewtest.New()
	cat.ReviewList = append(cat.ReviewList, model.Review{ID: 4, SongID: 40, UserID: 40, Rating: 3, CreatedAt: viewtest.Day(9)})

	st := newManager(cat, &recorder{}).Home(context.Background())

	require.True(t, st.OK())
	assert.Nil(t, st.Data.Reviews[0].Song)
	assert.Nil(t, st.Data.Reviews[0].User)
	assert.Empty(t, st.Data.Reviews[0].Card().Badges)
}

func TestHome_Failure(t *testing.T) {
	cat := viewtest.New()
	cat.Fail = map[string]error{"users": viewtest.ErrServer}
	rec := &recorder{}

	st := newManager(cat, rec).Home(context.Background())

	assert.Equal(t, StatusFailed, st.Status)
	assert.ErrorIs(t, st.Err, apihttp.ErrRequestFailed)
	assert.Equal(t, []string{"Failed to load reviews"}, rec.messages())
}

func TestSongsAndAlbums(t *testing.T) {
	cat := viewtest.New()
	m := newManager(cat, &recorder{})

	songs := m.Songs(context.Background())
	require.True(t, songs.OK())
	assert.Len(t, songs.Data, 3)
	cards := SongCards(songs.Data)
	require.NotNil(t, cards[0].FooterBadge)
	assert.Equal(t, "Track #1", cards[0].FooterBadge.Text)
	assert.Nil(t, cards[2].FooterBadge)

	albums := m.Albums(context.Background())
	require.True(t, albums.OK())
	assert.Equal(t, "/albums/1", AlbumCards(albums.Data)[0].Target)
}

func TestSongDetail(t *testing.T) {
	cat := viewtest.New()

	st := newManager(cat, &recorder{}).SongDetail(context.Background(), 1)

	require.True(t, st.OK())
	d := st.Data
	assert.Equal(t, "Come Together", d.Song.Title)
	require.Len(t, d.Reviews, 2)
	assert.Equal(t, model.ID(3), d.Reviews[0].Review.ID)
	assert.Equal(t, model.ID(1), d.Reviews[1].Review.ID)

	require.Len(t, d.Comments, 2)
	assert.Equal(t, model.ID(11), d.Comments[0].Comment.ID)
	assert.Equal(t, model.UnknownUser, d.Comments[0].Username)
	assert.False(t, d.Comments[0].CanDelete)
	assert.Equal(t, "alice", d.Comments[1].Username)
	assert.True(t, d.Comments[1].CanDelete)

	for _, c := range d.ReviewCards() {
		for _, b := range c.Badges {
			assert.NotEqual(t, "Come Together - The Beatles", b.Text)
		}
	}
}

func TestSongDetail_NotFoundAndFailed(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}

	st := newManager(cat, rec).SongDetail(context.Background(), 404)
	assert.Equal(t, StatusNotFound, st.Status)
	assert.True(t, apihttp.IsNotFound(st.Err))
	assert.Empty(t, rec.notifications)

	cat.Fail = map[string]error{"commentsBySong": viewtest.ErrServer}
	st = newManager(cat, rec).SongDetail(context.Background(), 1)
	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, []string{"Failed to load song details"}, rec.messages())
}

func TestAlbumDetail_SongsInTrackOrder(t *testing.T) {
	cat := viewtest.New()
	album := model.ID(1)
	cat.SongList = append([]model.Song{{ID: 7, Title: "Last", TrackNumber: 9, AlbumID: &album}}, cat.SongList...)

	st := newManager(cat, &recorder{}).AlbumDetail(context.Background(), 1)

	require.True(t, st.OK())
	var ids []model.ID
	for _, s := range st.Data.Songs {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []model.ID{1, 2, 7}, ids)

	assert.Equal(t, StatusNotFound, newManager(cat, &recorder{}).AlbumDetail(context.Background(), 8).Status)
}

func TestReviewDetail(t *testing.T) {
	cat := viewtest.New()
	m := newManager(cat, &recorder{})

	own := m.ReviewDetail(context.Background(), 1)
	require.True(t, own.OK())
	assert.True(t, own.Data.CanEdit)
	assert.Equal(t, "Come Together", own.Data.Song.Title)
	assert.Equal(t, "alice", own.Data.User.Username)

	other := m.ReviewDetail(context.Background(), 2)
	require.True(t, other.OK())
	assert.False(t, other.Data.CanEdit)

	assert.Equal(t, StatusNotFound, m.ReviewDetail(context.Background(), 50).Status)
}

func TestReviewDetail_MissingAuthorIsNotFound(t *testing.T) {
	cat := viewtest.New()
	cat.ReviewList = append(cat.ReviewList, model.Review{ID: 8, SongID: 1, UserID: 77, Rating: 4})

	st := newManager(cat, &recorder{}).ReviewDetail(context.Background(), 8)

	assert.Equal(t, StatusNotFound, st.Status)
}

func TestSubmitReview_InvalidMakesNoRequest(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}
	f := form.NewReview()

	_, ok := newManager(cat, rec).SubmitReview(context.Background(), f)

	assert.False(t, ok)
	assert.Len(t, f.Errors, 5)
	assert.Empty(t, cat.Calls())
	assert.Equal(t, []string{MsgFixForm}, rec.messages())
	assert.Empty(t, rec.paths)
}

func TestSubmitReview_CreatesAndNavigates(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}

	created, ok := newManager(cat, rec).SubmitReview(context.Background(), validReviewForm())

	require.True(t, ok)
	assert.Equal(t, model.ID(17), created.ID)
	require.Len(t, cat.Created, 1)
	sent := cat.Created[0]
	assert.Equal(t, model.ID(2), sent.SongID)
	assert.Equal(t, model.ID(1), sent.UserID)
	assert.Equal(t, 8, sent.Rating)
	assert.True(t, sent.CreatedAt.Equal(fixedNow))
	assert.True(t, sent.UpdatedAt.Equal(fixedNow))
	assert.Equal(t, []string{MsgReviewCreated}, rec.messages())
	assert.Equal(t, []string{"/reviews/17"}, rec.paths)
}

func TestSubmitReview_ServerFailure(t *testing.T) {
	cat := viewtest.New()
	cat.Fail = map[string]error{"createReview": viewtest.ErrServer}
	rec := &recorder{}

	_, ok := newManager(cat, rec).SubmitReview(context.Background(), validReviewForm())

	assert.False(t, ok)
	assert.Equal(t, []string{"Failed to create review"}, rec.messages())
	assert.Empty(t, rec.paths)
}

func TestEditReview_DeniedForOtherAuthor(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}

	st := newManager(cat, rec).EditReview(context.Background(), 2)

	assert.Equal(t, StatusDenied, st.Status)
	assert.Equal(t, []string{MsgEditForbidden}, rec.messages())
	assert.Equal(t, []string{"/"}, rec.paths)
}

func TestEditReview_SubmitKeepsCreatedAt(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}
	m := newManager(cat, rec)

	st := m.EditReview(context.Background(), 1)
	require.True(t, st.OK())
	require.True(t, st.Data.Editing())
	assert.Equal(t, "/reviews/1/edit", st.Data.Action())
	assert.Equal(t, "Old", st.Data.Form.Title)
	assert.True(t, st.Data.Form.AgreeToTerms)

	st.Data.Form.Set(form.FieldTitle, "Updated title")
	st.Data.Form.Set(form.FieldBody, "An updated body that is long enough.")
	_, ok := m.SubmitEdit(context.Background(), *st.Data.Original, st.Data.Form)

	require.True(t, ok)
	require.Len(t, cat.Updated, 1)
	assert.Equal(t, model.ID(1), cat.Updated[0].ID)
	assert.True(t, cat.Updated[0].CreatedAt.Equal(viewtest.Day(1).Time))
	assert.True(t, cat.Updated[0].UpdatedAt.Equal(fixedNow))
	assert.Equal(t, []string{MsgReviewUpdated}, rec.messages())
	assert.Equal(t, []string{"/reviews/1"}, rec.paths)
}

func TestSubmitEdit_NotOwner(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}

	_, ok := newManager(cat, rec).SubmitEdit(context.Background(), cat.ReviewList[1], validReviewForm())

	assert.False(t, ok)
	assert.Zero(t, cat.Called("updateReview"))
	assert.Equal(t, []string{"/"}, rec.paths)
}

func TestAddReview(t *testing.T) {
	cat := viewtest.New()

	st := newManager(cat, &recorder{}).AddReview(context.Background())

	require.True(t, st.OK())
	assert.False(t, st.Data.Editing())
	assert.Equal(t, "/add-review", st.Data.Action())
	assert.Len(t, st.Data.Songs, 3)
}

func TestPostComment(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}
	m := newManager(cat, rec)

	f := form.NewComment()
	f.Set("hey")
	_, ok := m.PostComment(context.Background(), 1, f, cat.UserList)
	assert.False(t, ok)
	assert.True(t, f.Errors.Has(form.FieldBody))
	assert.Zero(t, cat.Called("createComment"))

	f.Set("  nice one  ")
	item, ok := m.PostComment(context.Background(), 1, f, cat.UserList)
	require.True(t, ok)
	assert.Equal(t, model.ID(99), item.Comment.ID)
	assert.Equal(t, "alice", item.Username)
	assert.True(t, item.CanDelete)
	assert.Equal(t, "  nice one  ", cat.Commented[0].Body)
	assert.Empty(t, f.Body)
	assert.Equal(t, []string{MsgCommentAdded}, rec.messages())
}

func TestDeleteComment(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}
	m := newManager(cat, rec)

	assert.False(t, m.DeleteComment(context.Background(), 1, 11))
	assert.Zero(t, cat.Called("deleteComment"))

	assert.True(t, m.DeleteComment(context.Background(), 1, 10))
	assert.Equal(t, []model.ID{10}, cat.Deleted)
	assert.Equal(t, []string{MsgDeleteComment, MsgCommentDeleted}, rec.messages())
}

func TestDeleteReview(t *testing.T) {
	cat := viewtest.New()
	rec := &recorder{}
	m := newManager(cat, rec)

	assert.False(t, m.DeleteReview(context.Background(), 2))
	assert.Empty(t, rec.paths)

	assert.True(t, m.DeleteReview(context.Background(), 1))
	assert.Equal(t, []model.ID{1}, cat.Deleted)
	assert.Equal(t, []string{"/"}, rec.paths)
}

func TestCanceledLoadIsSilent(t *testing.T) {
	cat := viewtest.New()
	cat.Fail = map[string]error{"songs": &apihttp.RequestFailedError{Method: "GET", Path: "/songs", Err: context.Canceled}}
	rec := &recorder{}

	st := newManager(cat, rec).Songs(context.Background())

	assert.Equal(t, StatusFailed, st.Status)
	assert.True(t, errors.Is(st.Err, context.Canceled))
	assert.Empty(t, rec.notifications)
}

func TestWith_BindsPerRequestReceivers(t *testing.T) {
	cat := viewtest.New()
	shared := &recorder{}
	m := newManager(cat, shared)

	bound := &recorder{}
	m.With(bound, bound).DeleteReview(context.Background(), 1)

	assert.Empty(t, shared.notifications)
	assert.Equal(t, []string{MsgReviewDeleted}, bound.messages())
	assert.Equal(t, []string{"/"}, bound.paths)
}
