package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/handiism/song-review-hub/internal/card"
	"github.com/handiism/song-review-hub/internal/model"
)

// ReviewItem is a review joined with its song and author. Either join may be
// nil when the referenced record is missing.
type ReviewItem struct {
	Review model.Review
	Song   *model.Song
	User   *model.User
}

// Card renders the item.
func (i ReviewItem) Card() card.Card {
	return card.Review(i.Review, i.Song, i.User)
}

// Home is the recent reviews feed.
type Home struct {
	Reviews []ReviewItem
}

// Cards renders the feed.
func (h Home) Cards() []card.Card {
	cards := make([]card.Card, len(h.Reviews))
	for i, item := range h.Reviews {
		cards[i] = item.Card()
	}
	return cards
}

// Home loads every review, newest first, with its song and author. The three
// lists are fetched concurrently.
func (m *Manager) Home(ctx context.Context) State[Home] {
	var (
		reviews []model.Review
		songs   []model.Song
		users   []model.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		reviews, err = m.catalog.Reviews(gctx)
		return err
	})
	g.Go(func() (err error) {
		songs, err = m.catalog.Songs(gctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = m.catalog.Users(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return failed[Home](m, "home", err, "Failed to load reviews")
	}

	model.SortReviewsNewestFirst(reviews)
	return Ready(Home{Reviews: joinReviews(reviews, songs, users)})
}

func joinReviews(reviews []model.Review, songs []model.Song, users []model.User) []ReviewItem {
	items := make([]ReviewItem, len(reviews))
	for i, r := range reviews {
		items[i] = ReviewItem{Review: r}
		if songs != nil {
			if s, ok := model.FindSong(songs, r.SongID); ok {
				items[i].Song = &s
			}
		}
		if users != nil {
			if u, ok := model.FindUser(users, r.UserID); ok {
				items[i].User = &u
			}
		}
	}
	return items
}

// SongCards renders songs with their track badges.
func SongCards(songs []model.Song) []card.Card {
	cards := make([]card.Card, len(songs))
	for i, s := range songs {
		cards[i] = card.Song(s, true)
	}
	return cards
}

// AlbumCards renders albums.
func AlbumCards(albums []model.Album) []card.Card {
	cards := make([]card.Card, len(albums))
	for i, a := range albums {
		cards[i] = card.Album(a)
	}
	return cards
}

// Songs loads the song list in server order.
func (m *Manager) Songs(ctx context.Context) State[[]model.Song] {
	songs, err := m.catalog.Songs(ctx)
	if err != nil {
		return failed[[]model.Song](m, "songs", err, "Failed to load songs")
	}
	return Ready(songs)
}

// Albums loads the album list in server order.
func (m *Manager) Albums(ctx context.Context) State[[]model.Album] {
	albums, err := m.catalog.Albums(ctx)
	if err != nil {
		return failed[[]model.Album](m, "albums", err, "Failed to load albums")
	}
	return Ready(albums)
}

// AlbumDetail is an album with its songs in track order.
type AlbumDetail struct {
	Album model.Album
	Songs []model.Song
}

// AlbumDetail loads album id and the songs on it. The song list is fetched
// in full and filtered here.
func (m *Manager) AlbumDetail(ctx context.Context, id model.ID) State[AlbumDetail] {
	var (
		album model.Album
		songs []model.Song
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		album, err = m.catalog.Album(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		songs, err = m.catalog.Songs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return missing[AlbumDetail](m, "album", err, "Failed to load album details")
	}

	onAlbum := model.SongsOnAlbum(songs, id)
	model.SortSongsByTrack(onAlbum)
	return Ready(AlbumDetail{Album: album, Songs: onAlbum})
}
