package model

import "fmt"

// Album represents a catalog album.
//
// CoverImage is a reference to the cover art: either an absolute URL or a
// path relative to the API base URL. Empty means the album has no cover.
type Album struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"releaseYear"`
	CoverImage  string `json:"coverImage,omitempty"`
}

// Path returns the album's detail route.
func (a Album) Path() string {
	return fmt.Sprintf("/albums/%d", a.ID)
}

// HasCover returns true if the album has cover art.
func (a Album) HasCover() bool {
	return a.CoverImage != ""
}
