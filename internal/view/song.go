package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/song-review-hub/internal/card"
	"github.com/handiism/song-review-hub/internal/form"
	"github.com/handiism/song-review-hub/internal/model"
)

// CommentItem is a comment with its author's name resolved.
type CommentItem struct {
	Comment   model.Comment
	Username  string
	CanDelete bool
}

// SongDetail is a song with its reviews and comments, both newest first.
type SongDetail struct {
	Song     model.Song
	Reviews  []ReviewItem
	Comments []CommentItem
	// Users attributes comments posted from the page.
	Users []model.User
}

// ReviewCards renders the song's reviews. The song badge is left off since
// the page is already about that song.
func (d SongDetail) ReviewCards() []card.Card {
	cards := make([]card.Card, len(d.Reviews))
	for i, item := range d.Reviews {
		cards[i] = card.Review(item.Review, nil, item.User)
	}
	return cards
}

// SongDetail loads song id together with its reviews, comments and the user
// list used to name authors. All four requests run concurrently.
func (m *Manager) SongDetail(ctx context.Context, id model.ID) State[SongDetail] {
	var (
		song     model.Song
		reviews  []model.Review
		comments []model.Comment
		users    []model.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		song, err = m.catalog.Song(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		reviews, err = m.catalog.ReviewsBySong(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		comments, err = m.catalog.CommentsBySong(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		users, err = m.catalog.Users(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return missing[SongDetail](m, "song", err, "Failed to load song details")
	}

	model.SortReviewsNewestFirst(reviews)
	model.SortCommentsNewestFirst(comments)

	d := SongDetail{Song: song, Reviews: joinReviews(reviews, nil, users), Users: users}
	d.Comments = make([]CommentItem, len(comments))
	for i, c := range comments {
		d.Comments[i] = m.commentItem(c, users)
	}
	return Ready(d)
}

func (m *Manager) commentItem(c model.Comment, users []model.User) CommentItem {
	return CommentItem{
		Comment:   c,
		Username:  model.Username(users, c.UserID),
		CanDelete: m.session.Owns(c.UserID),
	}
}

// PostComment validates f and posts it on songID. An invalid form makes no
// request and reports through f.Errors only. On success the form is cleared
// and the stored comment is returned, attributed to users.
func (m *Manager) PostComment(ctx context.Context, songID model.ID, f *form.Comment, users []model.User) (CommentItem, bool) {
	if !f.Validate().Valid() {
		return CommentItem{}, false
	}

	created, err := m.catalog.CreateComment(ctx, f.Payload(m.session, songID, m.now()))
	if err != nil {
		m.fail("comment.create", err, "Failed to add comment")
		return CommentItem{}, false
	}

	f.Set("")
	m.notify(LevelSuccess, MsgCommentAdded)
	m.logger.Info("comment added", "song", songID, "comment", created.ID)
	return m.commentItem(created, users), true
}

// DeleteComment removes comment id from songID after checking that the
// session wrote it. The song's comments are fetched to find the author.
func (m *Manager) DeleteComment(ctx context.Context, songID, id model.ID) bool {
	comments, err := m.catalog.CommentsBySong(ctx, songID)
	if err != nil {
		m.fail("comment.delete", err, "Failed to delete comment")
		return false
	}

	var target *model.Comment
	for i := range comments {
		if comments[i].ID == id {
			target = &comments[i]
			break
		}
	}
	if target == nil {
		m.notify(LevelError, "Comment not found")
		return false
	}
	if !m.session.Owns(target.UserID) {
		m.notify(LevelError, MsgDeleteComment)
		return false
	}

	if err := m.catalog.DeleteComment(ctx, id); err != nil {
		m.fail("comment.delete", err, "Failed to delete comment")
		return false
	}
	m.notify(LevelSuccess, MsgCommentDeleted)
	m.logger.Info("comment deleted", "song", songID, "comment", id)
	return true
}
