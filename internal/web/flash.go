package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/handiism/song-review-hub/internal/view"
)

const (
	flashCookie = "reviewhub_flash"
	flashKey    = "flash"
)

// request collects what a view.Manager call wants to tell the user during a
// single request.
type request struct {
	notes    []view.Notification
	redirect string
}

func (r *request) Notify(n view.Notification) {
	r.notes = append(r.notes, n)
}

func (r *request) Navigate(path string) {
	r.redirect = path
}

// setFlash stores notes in a cookie so they survive a redirect.
func setFlash(c *gin.Context, notes []view.Notification) {
	if len(notes) == 0 {
		return
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(data), 60, "/", "", false, true)
}

// readFlash moves notes left by the previous response into the context and
// clears the cookie.
func readFlash(c *gin.Context) {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		c.Next()
		return
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err == nil {
		var notes []view.Notification
		if json.Unmarshal(data, &notes) == nil {
			c.Set(flashKey, notes)
		}
	}
	c.Next()
}

func flashFrom(c *gin.Context) []view.Notification {
	v, ok := c.Get(flashKey)
	if !ok {
		return nil
	}
	notes, _ := v.([]view.Notification)
	return notes
}
