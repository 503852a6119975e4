package view

import (
	"context"
	"errors"
	"time"

	"github.com/hashicorp/go-hclog"

	apihttp "github.com/handiism/song-review-hub/internal/http"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/session"
)

// Catalog is the subset of catalog.API the pages depend on.
type Catalog interface {
	Songs(ctx context.Context) ([]model.Song, error)
	Song(ctx context.Context, id model.ID) (model.Song, error)
	Albums(ctx context.Context) ([]model.Album, error)
	Album(ctx context.Context, id model.ID) (model.Album, error)
	Reviews(ctx context.Context) ([]model.Review, error)
	Review(ctx context.Context, id model.ID) (model.Review, error)
	ReviewsBySong(ctx context.Context, songID model.ID) ([]model.Review, error)
	CreateReview(ctx context.Context, review model.Review) (model.Review, error)
	UpdateReview(ctx context.Context, id model.ID, review model.Review) (model.Review, error)
	DeleteReview(ctx context.Context, id model.ID) error
	CommentsBySong(ctx context.Context, songID model.ID) ([]model.Comment, error)
	CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error)
	DeleteComment(ctx context.Context, id model.ID) error
	Users(ctx context.Context) ([]model.User, error)
	User(ctx context.Context, id model.ID) (model.User, error)
}

// Messages shown to the user.
const (
	MsgFixForm        = "Please fix the errors in the form"
	MsgReviewCreated  = "Review created successfully!"
	MsgReviewUpdated  = "Review updated successfully!"
	MsgReviewDeleted  = "Review deleted successfully!"
	MsgCommentAdded   = "Comment added successfully!"
	MsgCommentDeleted = "Comment deleted successfully!"
	MsgEditForbidden  = "You can only edit your own reviews"
	MsgDeleteReview   = "You can only delete your own reviews"
	MsgDeleteComment  = "You can only delete your own comments"
)

// Manager loads pages and performs the mutations behind their forms and
// buttons. Results flow back as State values; side effects on the user
// (toasts and redirects) go through the Notifier and Navigator.
//
// A Manager holds no per-page state and is safe for concurrent use.
type Manager struct {
	catalog   Catalog
	session   session.Session
	logger    hclog.Logger
	notifier  Notifier
	navigator Navigator
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for load and mutation failures.
func WithLogger(logger hclog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithNotifier sets the receiver of user-facing messages.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		m.notifier = n
	}
}

// WithNavigator sets the receiver of redirects.
func WithNavigator(n Navigator) Option {
	return func(m *Manager) {
		m.navigator = n
	}
}

// WithClock overrides time.Now for timestamps on created records.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager acting as sess.
func NewManager(cat Catalog, sess session.Session, opts ...Option) *Manager {
	m := &Manager{
		catalog:   cat,
		session:   sess,
		logger:    hclog.NewNullLogger(),
		notifier:  discard{},
		navigator: discard{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// With returns a copy of m that reports to notifier and navigator. Shells
// use it to bind a shared Manager to a single request or screen.
func (m *Manager) With(notifier Notifier, navigator Navigator) *Manager {
	c := *m
	if notifier != nil {
		c.notifier = notifier
	}
	if navigator != nil {
		c.navigator = navigator
	}
	return &c
}

// Session returns the identity the Manager acts as.
func (m *Manager) Session() session.Session {
	return m.session
}

func (m *Manager) notify(level Level, msg string) {
	m.notifier.Notify(Notification{Message: msg, Level: level})
}

func (m *Manager) navigate(path string) {
	m.navigator.Navigate(path)
}

// fail logs err and notifies the user with msg. Cancellation is logged only,
// since the user has already moved on.
func (m *Manager) fail(op string, err error, msg string) {
	if errors.Is(err, context.Canceled) {
		m.logger.Debug("request canceled", "op", op)
		return
	}
	m.logger.Error(msg, "op", op, "error", err)
	m.notify(LevelError, msg)
}

// failed turns a list load error into StatusFailed.
func failed[T any](m *Manager, op string, err error, msg string) State[T] {
	m.fail(op, err, msg)
	return State[T]{Status: StatusFailed, Err: err}
}

// missing is failed for pages built around one required resource: a 404
// becomes StatusNotFound without a toast.
func missing[T any](m *Manager, op string, err error, msg string) State[T] {
	if apihttp.IsNotFound(err) {
		m.logger.Debug("resource not found", "op", op, "error", err)
		return State[T]{Status: StatusNotFound, Err: err}
	}
	return failed[T](m, op, err, msg)
}
