// Package tui provides a Bubble Tea terminal user interface for the review
// hub.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/song-review-hub/internal/card"
	"github.com/handiism/song-review-hub/internal/form"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/route"
	"github.com/handiism/song-review-hub/internal/view"
)

// maxNotes is how many notifications stay on screen.
const maxNotes = 3

// Model is the Bubble Tea model for the TUI.
//
// Every page load runs as a command tagged with the generation current when
// it was issued. Navigating bumps the generation, so a slow load that
// finishes after the user has moved on is dropped instead of overwriting the
// page.
type Model struct {
	manager *view.Manager
	ctx     context.Context
	cancel  context.CancelFunc

	path    string
	history []string
	gen     int
	status  view.Status

	home   view.Home
	song   view.SongDetail
	album  view.AlbumDetail
	review view.ReviewDetail
	editor *editor

	cards    []card.Card
	selected int

	commenting  bool
	comment     textarea.Model
	commentForm *form.Comment
	confirm     bool
	busy        bool

	// preselect is the song chosen when "a" is pressed on a song page.
	preselect model.ID

	notes   []view.Notification
	spinner spinner.Model

	width  int
	height int
}

// NewModel creates a TUI model that starts on the home page.
func NewModel(ctx context.Context, manager *view.Manager) Model {
	ctx, cancel := context.WithCancel(ctx)

	ta := textarea.New()
	ta.Placeholder = "Share your thoughts..."
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(60)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		manager:     manager,
		ctx:         ctx,
		cancel:      cancel,
		path:        route.Home,
		gen:         1,
		status:      view.StatusLoading,
		comment:     ta,
		commentForm: form.NewComment(),
		spinner:     sp,
	}
}

// Init loads the home page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(m.gen, route.Parse(m.path)), m.spinner.Tick)
}

// Message types
type (
	// outcome is what the view layer asked the shell to do while a command
	// ran.
	outcome struct {
		notes    []view.Notification
		redirect string
	}

	// loadedMsg is sent when a page load finishes.
	loadedMsg struct {
		gen    int
		status view.Status
		data   any
		outcome
	}

	// reviewSavedMsg is sent when the editor's submission finishes.
	reviewSavedMsg struct {
		gen  int
		ok   bool
		form *form.Review
		outcome
	}

	// commentPostedMsg is sent when a comment submission finishes.
	commentPostedMsg struct {
		gen  int
		ok   bool
		item view.CommentItem
		form *form.Comment
		outcome
	}

	// commentDeletedMsg is sent when a comment deletion finishes.
	commentDeletedMsg struct {
		gen int
		ok  bool
		id  model.ID
		outcome
	}

	// reviewDeletedMsg is sent when a review deletion finishes.
	reviewDeletedMsg struct {
		gen int
		ok  bool
		outcome
	}
)

// collector receives the view layer's notifications and redirects for one
// command.
type collector struct {
	outcome
}

func (c *collector) Notify(n view.Notification) { c.notes = append(c.notes, n) }

func (c *collector) Navigate(path string) { c.redirect = path }

func (m Model) bind() (*view.Manager, *collector) {
	c := &collector{}
	return m.manager.With(c, c), c
}

func unpack[T any](st view.State[T]) (view.Status, any) {
	return st.Status, st.Data
}

// load fetches the page for r.
func (m Model) load(gen int, r route.Route) tea.Cmd {
	mgr, out := m.bind()
	ctx := m.ctx

	return func() tea.Msg {
		msg := loadedMsg{gen: gen}
		switch r.Page {
		case route.PageHome:
			msg.status, msg.data = unpack(mgr.Home(ctx))
		case route.PageSongs:
			msg.status, msg.data = unpack(mgr.Songs(ctx))
		case route.PageAlbums:
			msg.status, msg.data = unpack(mgr.Albums(ctx))
		case route.PageSong:
			msg.status, msg.data = unpack(mgr.SongDetail(ctx, r.ID))
		case route.PageAlbum:
			msg.status, msg.data = unpack(mgr.AlbumDetail(ctx, r.ID))
		case route.PageReview:
			msg.status, msg.data = unpack(mgr.ReviewDetail(ctx, r.ID))
		case route.PageAddReview:
			msg.status, msg.data = unpack(mgr.AddReview(ctx))
		case route.PageEditReview:
			msg.status, msg.data = unpack(mgr.EditReview(ctx, r.ID))
		default:
			msg.status = view.StatusNotFound
		}
		msg.outcome = out.outcome
		return msg
	}
}

// navigate opens path and remembers the current page for esc.
func (m Model) navigate(path string) (Model, tea.Cmd) {
	m.history = append(m.history, m.path)
	return m.open(path)
}

// open replaces the current page with path and starts loading it.
func (m Model) open(path string) (Model, tea.Cmd) {
	m.path = path
	m.gen++
	m.status = view.StatusLoading
	m.cards = nil
	m.selected = 0
	m.editor = nil
	m.commenting = false
	m.confirm = false
	m.busy = false
	m.comment.Blur()
	return m, tea.Batch(m.load(m.gen, route.Parse(path)), m.spinner.Tick)
}

func (m Model) back() (Model, tea.Cmd) {
	if len(m.history) == 0 {
		return m, nil
	}
	path := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	return m.open(path)
}

func (m *Model) notify(notes ...view.Notification) {
	m.notes = append(m.notes, notes...)
	if len(m.notes) > maxNotes {
		m.notes = m.notes[len(m.notes)-maxNotes:]
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.comment.SetWidth(min(max(msg.Width-8, 20), 80))
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case spinner.TickMsg:
		if m.status != view.StatusLoading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.applyLoad(msg)

	case reviewSavedMsg:
		m.notify(msg.notes...)
		if msg.gen != m.gen || m.editor == nil {
			return m, nil
		}
		m.busy = false
		m.editor.data.Form = msg.form
		if msg.redirect != "" {
			return m.navigate(msg.redirect)
		}
		return m, nil

	case commentPostedMsg:
		m.notify(msg.notes...)
		if msg.gen != m.gen {
			return m, nil
		}
		m.busy = false
		m.commentForm = msg.form
		if msg.ok {
			m.song.Comments = append([]view.CommentItem{msg.item}, m.song.Comments...)
			m.comment.Reset()
			m.comment.Blur()
			m.commenting = false
		}
		return m, nil

	case commentDeletedMsg:
		m.notify(msg.notes...)
		if msg.gen != m.gen {
			return m, nil
		}
		m.busy = false
		if msg.ok {
			for i, c := range m.song.Comments {
				if c.Comment.ID == msg.id {
					m.song.Comments = append(m.song.Comments[:i:i], m.song.Comments[i+1:]...)
					break
				}
			}
			m.selected = min(m.selected, max(m.items()-1, 0))
		}
		return m, nil

	case reviewDeletedMsg:
		m.notify(msg.notes...)
		if msg.gen != m.gen {
			return m, nil
		}
		m.busy = false
		if msg.redirect != "" {
			return m.navigate(msg.redirect)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) applyLoad(msg loadedMsg) (Model, tea.Cmd) {
	m.status = msg.status
	m.notify(msg.notes...)
	if msg.redirect != "" {
		return m.open(msg.redirect)
	}
	if msg.status != view.StatusReady {
		return m, nil
	}

	switch data := msg.data.(type) {
	case view.Home:
		m.home = data
		m.cards = data.Cards()
	case []model.Song:
		m.cards = view.SongCards(data)
	case []model.Album:
		m.cards = view.AlbumCards(data)
	case view.SongDetail:
		m.song = data
		m.cards = data.ReviewCards()
		m.commentForm = form.NewComment()
	case view.AlbumDetail:
		m.album = data
		m.cards = view.SongCards(data.Songs)
	case view.ReviewDetail:
		m.review = data
	case view.ReviewEditor:
		m.editor = newEditor(data, m.preselect)
		m.preselect = 0
	}
	return m, nil
}

// items is the number of selectable rows: cards, then comments on a song
// page.
func (m Model) items() int {
	n := len(m.cards)
	if m.page() == route.PageSong {
		n += len(m.song.Comments)
	}
	return n
}

func (m Model) page() route.Page {
	return route.Parse(m.path).Page
}

// selectedComment returns the comment under the cursor, if any.
func (m Model) selectedComment() (view.CommentItem, bool) {
	i := m.selected - len(m.cards)
	if m.page() != route.PageSong || i < 0 || i >= len(m.song.Comments) {
		return view.CommentItem{}, false
	}
	return m.song.Comments[i], true
}

func (m Model) ready() bool {
	return m.status == view.StatusReady
}

// target records where a clicked card wants to go.
type target struct {
	path string
}

func (t *target) Navigate(path string) { t.path = path }

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.cancel()
		return m, tea.Quit
	}

	switch {
	case m.editor != nil && m.ready():
		return m.updateEditor(msg)
	case m.commenting:
		return m.updateComment(msg)
	case m.confirm:
		m.confirm = false
		if key == "y" {
			return m.deleteReview()
		}
		return m, nil
	}

	switch key {
	case "q":
		m.cancel()
		return m, tea.Quit

	case "1", "2", "3", "4":
		item := route.NavItems[key[0]-'1']
		return m.navigate(item.Path)

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < m.items()-1 {
			m.selected++
		}

	case "enter":
		if m.selected < len(m.cards) {
			t := &target{}
			if m.cards[m.selected].Click(t) {
				return m.navigate(t.path)
			}
		}

	case "esc", "backspace":
		return m.back()

	case "r":
		return m.open(m.path)

	case "a":
		if m.page() == route.PageSong && m.ready() {
			m.preselect = m.song.Song.ID
		}
		return m.navigate(route.AddReview)

	case "e":
		if m.page() == route.PageReview && m.ready() && m.review.CanEdit {
			return m.navigate(m.review.Review.EditPath())
		}

	case "x":
		if m.page() == route.PageReview && m.ready() && m.review.CanEdit && !m.busy {
			m.confirm = true
		}

	case "c":
		if m.page() == route.PageSong && m.ready() {
			m.commenting = true
			m.comment.Focus()
		}

	case "d":
		if c, ok := m.selectedComment(); ok && c.CanDelete && !m.busy {
			return m.deleteComment(c.Comment.ID)
		}
	}

	return m, nil
}

func (m Model) updateComment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commenting = false
		m.comment.Blur()
		return m, nil
	case "ctrl+s":
		if m.busy {
			return m, nil
		}
		return m.postComment()
	}

	var cmd tea.Cmd
	m.comment, cmd = m.comment.Update(msg)
	m.commentForm.Set(m.comment.Value())
	return m, cmd
}

func (m Model) postComment() (Model, tea.Cmd) {
	mgr, out := m.bind()
	ctx, gen := m.ctx, m.gen
	songID, users := m.song.Song.ID, m.song.Users

	f := *m.commentForm
	f.Set(m.comment.Value())

	m.busy = true
	return m, tea.Batch(func() tea.Msg {
		item, ok := mgr.PostComment(ctx, songID, &f, users)
		return commentPostedMsg{gen: gen, ok: ok, item: item, form: &f, outcome: out.outcome}
	}, m.spinner.Tick)
}

func (m Model) deleteComment(id model.ID) (Model, tea.Cmd) {
	mgr, out := m.bind()
	ctx, gen := m.ctx, m.gen
	songID := m.song.Song.ID

	m.busy = true
	return m, tea.Batch(func() tea.Msg {
		ok := mgr.DeleteComment(ctx, songID, id)
		return commentDeletedMsg{gen: gen, ok: ok, id: id, outcome: out.outcome}
	}, m.spinner.Tick)
}

func (m Model) deleteReview() (Model, tea.Cmd) {
	mgr, out := m.bind()
	ctx, gen := m.ctx, m.gen
	id := m.review.Review.ID

	m.busy = true
	return m, tea.Batch(func() tea.Msg {
		ok := mgr.DeleteReview(ctx, id)
		return reviewDeletedMsg{gen: gen, ok: ok, outcome: out.outcome}
	}, m.spinner.Tick)
}

// Run starts the TUI application.
func Run(ctx context.Context, manager *view.Manager) error {
	p := tea.NewProgram(NewModel(ctx, manager), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
