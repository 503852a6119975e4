package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handiism/song-review-hub/internal/card"
	"github.com/handiism/song-review-hub/internal/form"
	apihttp "github.com/handiism/song-review-hub/internal/http"
	ioutils "github.com/handiism/song-review-hub/internal/io"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/view"
)

type listPage struct {
	Heading string
	Empty   string
	Cards   []card.Card
}

type songPage struct {
	view.SongDetail
	Cards       []card.Card
	CommentForm *form.Comment
}

type albumPage struct {
	view.AlbumDetail
	Cover string
	Cards []card.Card
}

// home handles GET /
func (s *Server) home(c *gin.Context) {
	m, req := s.bind()
	st := m.Home(c.Request.Context())
	if settle(s, c, req, st, "Reviews") {
		return
	}
	s.render(c, http.StatusOK, "list.html", view.TitleHome, req, listPage{
		Heading: "Recent Reviews",
		Empty:   "No reviews yet.",
		Cards:   st.Data.Cards(),
	})
}

// songs handles GET /songs
func (s *Server) songs(c *gin.Context) {
	m, req := s.bind()
	st := m.Songs(c.Request.Context())
	if settle(s, c, req, st, "Songs") {
		return
	}
	s.render(c, http.StatusOK, "list.html", view.TitleSongs, req, listPage{
		Heading: "All Songs",
		Empty:   "No songs found.",
		Cards:   view.SongCards(st.Data),
	})
}

// albums handles GET /albums
func (s *Server) albums(c *gin.Context) {
	m, req := s.bind()
	st := m.Albums(c.Request.Context())
	if settle(s, c, req, st, "Albums") {
		return
	}
	s.render(c, http.StatusOK, "list.html", view.TitleAlbums, req, listPage{
		Heading: "All Albums",
		Empty:   "No albums found.",
		Cards:   albumCards(st.Data),
	})
}

// songDetail handles GET /songs/:id
func (s *Server) songDetail(c *gin.Context) {
	id, ok := s.paramID(c, "id")
	if !ok {
		return
	}
	m, req := s.bind()
	s.renderSong(c, m, req, id, http.StatusOK, form.NewComment())
}

func (s *Server) renderSong(c *gin.Context, m *view.Manager, req *request, id model.ID, status int, f *form.Comment) {
	st := m.SongDetail(c.Request.Context(), id)
	if settle(s, c, req, st, "Song") {
		return
	}
	s.render(c, status, "song.html", st.Data.Title(), req, songPage{
		SongDetail:  st.Data,
		Cards:       st.Data.ReviewCards(),
		CommentForm: f,
	})
}

// postComment handles POST /songs/:id/comments
func (s *Server) postComment(c *gin.Context) {
	id, ok := s.paramID(c, "id")
	if !ok {
		return
	}
	m, req := s.bind()

	f := form.NewComment()
	f.Set(c.PostForm("body"))
	if _, ok := m.PostComment(c.Request.Context(), id, f, nil); ok {
		s.redirect(c, req, songPath(id))
		return
	}

	status := http.StatusOK
	if !f.Errors.Valid() {
		status = http.StatusUnprocessableEntity
	}
	s.renderSong(c, m, req, id, status, f)
}

// deleteComment handles POST /songs/:id/comments/:commentId/delete
func (s *Server) deleteComment(c *gin.Context) {
	id, ok := s.paramID(c, "id")
	if !ok {
		return
	}
	commentID, ok := s.paramID(c, "commentId")
	if !ok {
		return
	}
	m, req := s.bind()
	m.DeleteComment(c.Request.Context(), id, commentID)
	s.redirect(c, req, songPath(id))
}

// albumDetail handles GET /albums/:id
func (s *Server) albumDetail(c *gin.Context) {
	id, ok := s.paramID(c, "id")
	if !ok {
		return
	}
	m, req := s.bind()
	st := m.AlbumDetail(c.Request.Context(), id)
	if settle(s, c, req, st, "Album") {
		return
	}

	p := albumPage{AlbumDetail: st.Data, Cards: view.SongCards(st.Data.Songs)}
	if st.Data.Album.HasCover() {
		p.Cover = coverPath(id)
	}
	s.render(c, http.StatusOK, "album.html", st.Data.Title(), req, p)
}

// reviewDetail handles GET /reviews/:id
func (s *Server) reviewDetail(c *gin.Context) {
	id, ok := s.paramID(c, "id")
	if !ok {
		return
	}
	m, req := s.bind()
	st := m.ReviewDetail(c.Request.Context(), id)
	if settle(s, c, req, st, "Review") {
		return
	}
	s.render(c, http.StatusOK, "review.html", st.Data.Title(), req, st.Data)
}

// deleteReview handles POST /reviews/:id/delete
func (s *Server) deleteReview(c *gin.Context) {
	id, ok := s.paramID(c, "id")
	if !ok {
		return
	}
	m, req := s.bind()
	if !m.DeleteReview(c.Request.Context(), id) {
		s.redirect(c, req, reviewPath(id))
		return
	}
	s.redirect(c, req, req.redirect)
}

// addReview handles GET /add-review. ?songId=N preselects a song.
func (s *Server) addReview(c *gin.Context) {
	m, req := s.bind()
	st := m.AddReview(c.Request.Context())
	if settle(s, c, req, st, "Songs") {
		return
	}
	if songID := c.Query("songId"); songID != "" {
		st.Data.Form.Set(form.FieldSongID, songID)
	}
	s.render(c, http.StatusOK, "editor.html", view.TitleAddReview, req, st.Data)
}

// submitReview handles POST /add-review
func (s *Server) submitReview(c *gin.Context) {
	m, req := s.bind()

	f := form.NewReview()
	readReviewForm(c, f)
	if _, ok := m.SubmitReview(c.Request.Context(), f); ok {
		s.redirect(c, req, req.redirect)
		return
	}

	st := m.AddReview(c.Request.Context())
	if settle(s, c, req, st, "Songs") {
		return
	}
	st.Data.Form = f
	s.render(c, formStatus(f), "editor.html", view.TitleAddReview, req, st.Data)
}

// editReview handles GET /reviews/:id/edit
func (s *Server) editReview(c *gin.Context) {
	id, ok := s.paramID(c, "id")
	if !ok {
		return
	}
	m, req := s.bind()
	st := m.EditReview(c.Request.Context(), id)
	if settle(s, c, req, st, "Review") {
		return
	}
	s.render(c, http.StatusOK, "editor.html", view.TitleEditReview, req, st.Data)
}

// submitEdit handles POST /reviews/:id/edit
func (s *Server) submitEdit(c *gin.Context) {
	id, ok := s.paramID(c, "id")
	if !ok {
		return
	}
	m, req := s.bind()
	st := m.EditReview(c.Request.Context(), id)
	if settle(s, c, req, st, "Review") {
		return
	}

	f := form.NewReview()
	readReviewForm(c, f)
	if _, ok := m.SubmitEdit(c.Request.Context(), *st.Data.Original, f); ok {
		s.redirect(c, req, req.redirect)
		return
	}

	st.Data.Form = f
	s.render(c, formStatus(f), "editor.html", view.TitleEditReview, req, st.Data)
}

// cover handles GET /covers/:id
func (s *Server) cover(c *gin.Context) {
	id, ok := s.paramID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	album, err := s.covers.Album(ctx, id)
	if err != nil {
		s.coverError(c, id, err)
		return
	}
	if !album.HasCover() {
		c.Status(http.StatusNotFound)
		return
	}

	data, err := s.covers.Cover(ctx, album)
	if err != nil {
		s.coverError(c, id, err)
		return
	}
	thumb, err := s.thumbs.Thumbnail(ctx, data, s.coverMaxSize)
	if err != nil {
		s.logger.Warn("cover is not a decodable image", "album", id, "error", err)
		c.Status(http.StatusUnsupportedMediaType)
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("Content-Disposition", `inline; filename="`+ioutils.SanitizeFileName(album.Title)+`.jpg"`)
	c.Data(http.StatusOK, "image/jpeg", thumb)
}

func (s *Server) coverError(c *gin.Context, id model.ID, err error) {
	if apihttp.IsNotFound(err) {
		c.Status(http.StatusNotFound)
		return
	}
	s.logger.Error("failed to fetch cover", "album", id, "error", err)
	c.Status(http.StatusBadGateway)
}

// readReviewForm copies the posted fields into f. An unchecked box is
// simply absent from the post.
func readReviewForm(c *gin.Context, f *form.Review) {
	f.Set(form.FieldSongID, c.PostForm("songId"))
	f.Set(form.FieldTitle, c.PostForm("title"))
	f.Set(form.FieldBody, c.PostForm("body"))
	f.Set(form.FieldRating, c.PostForm("rating"))
	f.SetAgree(c.PostForm("agreeToTerms") != "")
}

func formStatus(f *form.Review) int {
	if !f.Errors.Valid() {
		return http.StatusUnprocessableEntity
	}
	return http.StatusOK
}

func songPath(id model.ID) string {
	return model.Song{ID: id}.Path()
}

func reviewPath(id model.ID) string {
	return model.Review{ID: id}.Path()
}
