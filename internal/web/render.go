package web

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/handiism/song-review-hub/internal/card"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/route"
	"github.com/handiism/song-review-hub/internal/view"
)

var templateFuncs = template.FuncMap{
	"date": func(ts model.Timestamp) string {
		return ts.UTC().Format(card.DateLayout)
	},
	"stars":   model.Stars,
	"ratings": func() []int { return ratingChoices },
	"itoa":    strconv.Itoa,
	"level": func(l view.Level) string {
		if l == view.LevelError {
			return "danger"
		}
		return l.String()
	},
	"paragraphs": func(s string) []string {
		return strings.Split(s, "\n")
	},
}

var ratingChoices = func() []int {
	r := make([]int, 0, model.MaxRating)
	for i := model.MinRating; i <= model.MaxRating; i++ {
		r = append(r, i)
	}
	return r
}()

type navLink struct {
	Label  string
	Path   string
	Active bool
}

// page is the root value of every template.
type page struct {
	Title     string
	AppName   string
	Nav       []navLink
	Flash     []view.Notification
	RequestID string
	Data      any
}

// message is the data of message.html, used for not-found and error pages.
type message struct {
	Heading string
	Text    string
}

func navLinks(current string) []navLink {
	links := make([]navLink, len(route.NavItems))
	for i, item := range route.NavItems {
		links[i] = navLink{Label: item.Label, Path: item.Path, Active: item.Active(current)}
	}
	return links
}

func (s *Server) render(c *gin.Context, status int, name, title string, req *request, data any) {
	c.HTML(status, name, page{
		Title:     route.Title(title),
		AppName:   route.AppName,
		Nav:       navLinks(c.Request.URL.Path),
		Flash:     append(flashFrom(c), req.notes...),
		RequestID: c.GetString(requestIDKey),
		Data:      data,
	})
}

// redirect answers with 303 See Other, carrying notifications along.
func (s *Server) redirect(c *gin.Context, req *request, path string) {
	setFlash(c, req.notes)
	c.Redirect(http.StatusSeeOther, path)
}

// bind returns the shared manager wired to a fresh per-request collector.
func (s *Server) bind() (*view.Manager, *request) {
	req := &request{}
	return s.manager.With(req, req), req
}

// settle renders the fallback page for any state other than ready and
// reports whether it did. what names the page's resource ("Song").
func settle[T any](s *Server, c *gin.Context, req *request, st view.State[T], what string) bool {
	switch st.Status {
	case view.StatusReady:
		return false
	case view.StatusNotFound:
		s.render(c, http.StatusNotFound, "message.html", what+" Not Found", req, message{
			Heading: what + " not found",
		})
	case view.StatusDenied:
		path := req.redirect
		if path == "" {
			path = route.Home
		}
		s.redirect(c, req, path)
	default:
		s.render(c, http.StatusBadGateway, "message.html", "Error", req, message{
			Heading: "Something went wrong",
			Text:    "The review service could not be reached. Please try again later.",
		})
	}
	return true
}

func (s *Server) notFound(c *gin.Context) {
	s.render(c, http.StatusNotFound, "notfound.html", view.TitleNotFound, &request{}, nil)
}

// paramID parses a numeric path parameter. Anything else renders the 404
// page.
func (s *Server) paramID(c *gin.Context, name string) (model.ID, bool) {
	id, err := model.ParseID(c.Param(name))
	if err != nil {
		s.notFound(c)
		return 0, false
	}
	return id, true
}

// albumCards points cover images at the thumbnail endpoint.
func albumCards(albums []model.Album) []card.Card {
	cards := view.AlbumCards(albums)
	for i, a := range albums {
		if a.HasCover() {
			cards[i].Image = coverPath(a.ID)
		}
	}
	return cards
}

func coverPath(id model.ID) string {
	return "/covers/" + id.String()
}
