package model

import (
	"cmp"
	"fmt"
	"slices"
)

// Song is a single track in the catalog.
//
// AlbumID is nil for singles that do not belong to an album.
//
// Example:
//
//	albumID := model.ID(1)
//	song := model.Song{ID: 5, Title: "Something", Artist: "The Beatles", Duration: "3:03", TrackNumber: 2, AlbumID: &albumID}
//	song.Path() // "/songs/5"
type Song struct {
	// ID is the unique song identifier.
	ID ID `json:"id"`

	// Title is the song title.
	Title string `json:"title"`

	// Artist is the performing artist.
	Artist string `json:"artist"`

	// Duration is a display string such as "3:45".
	Duration string `json:"duration"`

	// TrackNumber is the position on the album (1-indexed).
	TrackNumber int `json:"trackNumber"`

	// AlbumID references the parent album, if any.
	AlbumID *ID `json:"albumId,omitempty"`
}

// Path returns the song's detail route.
func (s Song) Path() string {
	return fmt.Sprintf("/songs/%d", s.ID)
}

// Label is the "Title - Artist" form used in badges and select menus.
func (s Song) Label() string {
	return s.Title + " - " + s.Artist
}

// OnAlbum reports whether the song belongs to the given album.
func (s Song) OnAlbum(albumID ID) bool {
	return s.AlbumID != nil && *s.AlbumID == albumID
}

// FindSong returns the song with the given id.
func FindSong(songs []Song, id ID) (Song, bool) {
	for _, s := range songs {
		if s.ID == id {
			return s, true
		}
	}
	return Song{}, false
}

// SongsOnAlbum returns the songs that belong to albumID, in input order.
func SongsOnAlbum(songs []Song, albumID ID) []Song {
	out := make([]Song, 0)
	for _, s := range songs {
		if s.OnAlbum(albumID) {
			out = append(out, s)
		}
	}
	return out
}

// SortSongsByTrack orders songs by track number, keeping ties in input order.
func SortSongsByTrack(songs []Song) {
	slices.SortStableFunc(songs, func(a, b Song) int {
		return cmp.Compare(a.TrackNumber, b.TrackNumber)
	})
}
