package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/route"
	"github.com/handiism/song-review-hub/internal/session"
	"github.com/handiism/song-review-hub/internal/view"
	"github.com/handiism/song-review-hub/internal/view/viewtest"
)

func newTestModel(t *testing.T, cat *viewtest.Catalog) Model {
	t.Helper()
	now := func() time.Time { return time.Date(2024, 10, 15, 14, 30, 0, 0, time.UTC) }
	m := NewModel(context.Background(), view.NewManager(cat, session.New(1), view.WithClock(now)))
	t.Cleanup(m.cancel)
	return drain(t, m, m.Init())
}

// run executes cmd, giving up on commands that wait on a timer such as
// cursor blinks.
func run(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

// drain runs cmd and every command it leads to, feeding results back into
// the model. Spinner ticks are dropped so the loop ends.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := run(c).(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case loadedMsg, reviewSavedMsg, commentPostedMsg, commentDeletedMsg, reviewDeletedMsg:
			next, more := m.Update(msg)
			m = next.(Model)
			queue = append(queue, more)
		case spinner.TickMsg, nil:
		}
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return drain(t, next.(Model), cmd)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func goTo(t *testing.T, m Model, path string) Model {
	t.Helper()
	m, cmd := m.navigate(path)
	return drain(t, m, cmd)
}

func lastNote(m Model) string {
	if len(m.notes) == 0 {
		return ""
	}
	return m.notes[len(m.notes)-1].Message
}

func TestInit_LoadsHome(t *testing.T) {
	m := newTestModel(t, viewtest.New())

	assert.Equal(t, view.StatusReady, m.status)
	require.Len(t, m.cards, 3)
	assert.Equal(t, "New", m.cards[0].Title)

	out := m.View()
	assert.Contains(t, out, "Recent Reviews")
	assert.Contains(t, out, "by bob")
}

func TestNumberKeysSwitchPages(t *testing.T) {
	m := newTestModel(t, viewtest.New())

	m = press(t, m, key("2"))
	assert.Equal(t, route.Songs, m.path)
	assert.Len(t, m.cards, 3)
	assert.Contains(t, m.View(), "All Songs")

	m = press(t, m, key("3"))
	assert.Equal(t, route.Albums, m.path)
	require.Len(t, m.cards, 1)
	assert.Equal(t, "Abbey Road", m.cards[0].Title)
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	m := newTestModel(t, viewtest.New())

	next, songs := m.Update(key("2"))
	next, albums := next.(Model).Update(key("3"))
	m = drain(t, next.(Model), albums)
	m = drain(t, m, songs)

	assert.Equal(t, route.Albums, m.path)
	require.Len(t, m.cards, 1)
	assert.Equal(t, "Abbey Road", m.cards[0].Title)
}

func TestEnterOpensSelectedCardAndEscGoesBack(t *testing.T) {
	m := newTestModel(t, viewtest.New())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "/reviews/3", m.path)
	assert.Equal(t, "Mid", m.review.Review.Title)
	assert.Contains(t, m.View(), "by bob")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, route.Home, m.path)
	assert.Equal(t, view.StatusReady, m.status)
}

func TestLoadFailureAndNotFound(t *testing.T) {
	cat := viewtest.New()
	cat.Fail = map[string]error{"songs": viewtest.ErrServer}
	m := newTestModel(t, cat)

	m = press(t, m, key("2"))
	assert.Equal(t, view.StatusFailed, m.status)
	assert.Contains(t, m.View(), "Something went wrong")
	assert.Equal(t, "Failed to load songs", lastNote(m))

	m = goTo(t, m, "/albums/42")
	assert.Equal(t, view.StatusNotFound, m.status)
	assert.Contains(t, m.View(), "Album not found")

	m = goTo(t, m, "/nope")
	assert.Contains(t, m.View(), "404 Page Not Found")
}

func TestEditOthersReviewRedirectsHome(t *testing.T) {
	m := newTestModel(t, viewtest.New())

	m = goTo(t, m, "/reviews/2/edit")

	assert.Equal(t, route.Home, m.path)
	assert.Equal(t, view.StatusReady, m.status)
	assert.Equal(t, view.MsgEditForbidden, lastNote(m))
}

func TestEditor_InvalidSubmitShowsErrors(t *testing.T) {
	cat := viewtest.New()
	m := newTestModel(t, cat)

	m = press(t, m, key("4"))
	require.NotNil(t, m.editor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, route.AddReview, m.path)
	assert.Zero(t, cat.Called("createReview"))
	assert.Equal(t, view.MsgFixForm, lastNote(m))
	out := m.View()
	assert.Contains(t, out, "Please select a song")
	assert.Contains(t, out, "You must agree to the terms and conditions")
}

func TestEditor_SubmitCreatesAndOpensReview(t *testing.T) {
	cat := viewtest.New()
	m := newTestModel(t, cat)
	m = press(t, m, key("4"))
	require.NotNil(t, m.editor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.editor.title.SetValue("Great Track")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m.editor.body.SetValue(strings.Repeat("so good ", 4))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	for range 8 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	require.Len(t, cat.Created, 1)
	got := cat.Created[0]
	assert.Equal(t, model.ID(1), got.SongID)
	assert.Equal(t, model.ID(1), got.UserID)
	assert.Equal(t, 8, got.Rating)
	assert.Equal(t, "Great Track", got.Title)
	assert.Equal(t, "/reviews/17", m.path)
	assert.Contains(t, messages(m), view.MsgReviewCreated)
}

func TestAddFromSongPreselectsIt(t *testing.T) {
	m := newTestModel(t, viewtest.New())
	m = goTo(t, m, "/songs/2")

	m = press(t, m, key("a"))

	require.NotNil(t, m.editor)
	assert.Equal(t, "2", m.editor.data.Form.SongID)
	assert.Contains(t, m.View(), "Something - The Beatles")
}

func TestComment_PostPrependsIt(t *testing.T) {
	cat := viewtest.New()
	m := newTestModel(t, cat)
	m = goTo(t, m, "/songs/1")
	require.Len(t, m.song.Comments, 2)

	m = press(t, m, key("c"))
	require.True(t, m.commenting)

	m.comment.SetValue("hey")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, m.commenting)
	assert.Zero(t, cat.Called("createComment"))
	assert.Contains(t, m.View(), "Comment must be at least 5 characters long")

	m.comment.SetValue("Nice song!")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.False(t, m.commenting)
	require.Len(t, m.song.Comments, 3)
	assert.Equal(t, "Nice song!", m.song.Comments[0].Comment.Body)
	assert.Equal(t, "alice", m.song.Comments[0].Username)
	assert.Equal(t, view.MsgCommentAdded, lastNote(m))
}

func TestComment_DeleteOwn(t *testing.T) {
	cat := viewtest.New()
	m := newTestModel(t, cat)
	m = goTo(t, m, "/songs/1")
	require.Len(t, m.cards, 2)

	// Two review cards, then the ghost's comment, then alice's.
	m = press(t, m, key("d"))
	assert.Zero(t, cat.Called("deleteComment"))

	for range 3 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	c, ok := m.selectedComment()
	require.True(t, ok)
	require.Equal(t, model.ID(10), c.Comment.ID)

	m = press(t, m, key("d"))

	assert.Equal(t, []model.ID{10}, cat.Deleted)
	require.Len(t, m.song.Comments, 1)
	assert.Equal(t, model.ID(11), m.song.Comments[0].Comment.ID)
	assert.Equal(t, view.MsgCommentDeleted, lastNote(m))
}

func TestReview_DeleteAfterConfirm(t *testing.T) {
	cat := viewtest.New()
	m := newTestModel(t, cat)
	m = goTo(t, m, "/reviews/1")
	require.True(t, m.review.CanEdit)

	m = press(t, m, key("x"))
	assert.Contains(t, m.View(), "Are you sure you want to delete this review?")
	m = press(t, m, key("n"))
	assert.Zero(t, cat.Called("deleteReview"))

	m = press(t, m, key("x"))
	m = press(t, m, key("y"))

	assert.Equal(t, []model.ID{1}, cat.Deleted)
	assert.Equal(t, route.Home, m.path)
	assert.Contains(t, messages(m), view.MsgReviewDeleted)
}

func TestReview_OthersHaveNoControls(t *testing.T) {
	m := newTestModel(t, viewtest.New())
	m = goTo(t, m, "/reviews/2")

	m = press(t, m, key("e"))
	assert.Equal(t, "/reviews/2", m.path)
	m = press(t, m, key("x"))
	assert.False(t, m.confirm)
	assert.NotContains(t, m.getHelpText(), "e: edit")
}

func messages(m Model) []string {
	out := make([]string, len(m.notes))
	for i, n := range m.notes {
		out[i] = n.Message
	}
	return out
}
