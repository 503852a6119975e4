package view

// Page titles, before the site name is appended.
const (
	TitleHome       = "Home - Recent Reviews"
	TitleSongs      = "All Songs"
	TitleAlbums     = "All Albums"
	TitleAddReview  = "Add New Review"
	TitleEditReview = "Edit Review"
	TitleNotFound   = "Page Not Found"
)

// Title is "Song - Artist".
func (d SongDetail) Title() string {
	return d.Song.Label()
}

// Title is "Album - Artist".
func (d AlbumDetail) Title() string {
	return d.Album.Title + " - " + d.Album.Artist
}

// Title is the review's own title.
func (d ReviewDetail) Title() string {
	return d.Review.Title
}
