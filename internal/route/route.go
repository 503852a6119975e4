// Package route is the navigation table shared by the browser and terminal
// shells.
package route

import (
	"strings"

	"github.com/handiism/song-review-hub/internal/model"
)

// AppName is the site title.
const AppName = "Song Review Hub"

// Page identifies a screen.
type Page int

const (
	PageNotFound Page = iota
	PageHome
	PageSongs
	PageSong
	PageAlbums
	PageAlbum
	PageAddReview
	PageReview
	PageEditReview
)

// Paths of the fixed routes.
const (
	Home      = "/"
	Songs     = "/songs"
	Albums    = "/albums"
	AddReview = "/add-review"
)

// Route is a parsed path. ID is set for detail and edit pages.
type Route struct {
	Page Page
	ID   model.ID
	Path string
}

// Parse maps a path onto its page. Unknown paths yield PageNotFound.
//
//	Parse("/songs/3")        // {Page: PageSong, ID: 3}
//	Parse("/reviews/4/edit") // {Page: PageEditReview, ID: 4}
//	Parse("/nope")           // {Page: PageNotFound}
func Parse(path string) Route {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	r := Route{Page: PageNotFound, Path: path}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case path == Home || path == "":
		r.Page = PageHome
		r.Path = Home
	case len(parts) == 1 && parts[0] == "songs":
		r.Page = PageSongs
	case len(parts) == 1 && parts[0] == "albums":
		r.Page = PageAlbums
	case len(parts) == 1 && parts[0] == "add-review":
		r.Page = PageAddReview
	case len(parts) == 2 && parts[0] == "songs":
		r.withID(PageSong, parts[1])
	case len(parts) == 2 && parts[0] == "albums":
		r.withID(PageAlbum, parts[1])
	case len(parts) == 2 && parts[0] == "reviews":
		r.withID(PageReview, parts[1])
	case len(parts) == 3 && parts[0] == "reviews" && parts[2] == "edit":
		r.withID(PageEditReview, parts[1])
	}
	return r
}

func (r *Route) withID(page Page, raw string) {
	id, err := model.ParseID(raw)
	if err != nil {
		return
	}
	r.Page = page
	r.ID = id
}

// NavItem is an entry of the persistent navigation bar.
type NavItem struct {
	Label string
	Path  string
}

// NavItems lists the navigation bar in display order.
var NavItems = []NavItem{
	{Label: "Home", Path: Home},
	{Label: "Songs", Path: Songs},
	{Label: "Albums", Path: Albums},
	{Label: "Add Review", Path: AddReview},
}

// Active reports whether the item should be highlighted for current.
// Home matches only itself; other items also match their sub-routes.
func (n NavItem) Active(current string) bool {
	if n.Path == Home {
		return current == Home || current == ""
	}
	return current == n.Path || strings.HasPrefix(current, n.Path+"/")
}

// Title builds a document title.
func Title(title string) string {
	if title == "" {
		return AppName
	}
	return title + " - " + AppName
}
