package card

import (
	"fmt"
	"strconv"

	"github.com/handiism/song-review-hub/internal/model"
)

// ExcerptLength is how much of a review body a review card shows.
const ExcerptLength = 200

// DateLayout formats the review card footer.
const DateLayout = "Jan 2, 2006"

// Song builds a song card.
//
// The footer shows the duration. When showAlbum is set and the song belongs
// to an album, a "Track #N" badge is added next to it.
func Song(song model.Song, showAlbum bool) Card {
	c := Card{
		Kind:     KindSong,
		Title:    song.Title,
		Subtitle: song.Artist,
		Footer:   "Duration: " + song.Duration,
		Target:   song.Path(),
	}
	if showAlbum && song.AlbumID != nil {
		c.FooterBadge = &Badge{Text: fmt.Sprintf("Track #%d", song.TrackNumber), Variant: VariantSecondary}
	}
	return c
}

// Album builds an album card with its description, genre and release year.
func Album(album model.Album) Card {
	c := Card{
		Kind:     KindAlbum,
		Title:    album.Title,
		Subtitle: album.Artist,
		Text:     album.Description,
		Target:   album.Path(),
	}
	if album.HasCover() {
		c.Image = album.CoverImage
		c.ImageAlt = album.Title + " cover"
	}
	if album.Genre != "" {
		c.Badges = append(c.Badges, Badge{Text: album.Genre, Variant: VariantPrimary})
	}
	if album.ReleaseYear != 0 {
		c.Badges = append(c.Badges, Badge{Text: strconv.Itoa(album.ReleaseYear), Variant: VariantSecondary})
	}
	return c
}

// Review builds a review card. song and user are optional joins; a nil one
// drops its badge.
func Review(review model.Review, song *model.Song, user *model.User) Card {
	c := Card{
		Kind:   KindReview,
		Title:  review.Title,
		Stars:  model.Stars(review.Rating),
		Text:   model.Excerpt(review.Body, ExcerptLength),
		Target: review.Path(),
	}
	if song != nil {
		c.Badges = append(c.Badges, Badge{Text: song.Label(), Variant: VariantInfo})
	}
	if user != nil {
		c.Badges = append(c.Badges, Badge{Text: "by " + user.Username, Variant: VariantSecondary})
	}
	if !review.CreatedAt.IsZero() {
		c.Footer = review.CreatedAt.UTC().Format(DateLayout)
	}
	return c
}
