package tui

import (
	"maps"
	"strconv"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/song-review-hub/internal/form"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/view"
)

// editorField is a focusable input of the review editor.
type editorField int

const (
	fieldSong editorField = iota
	fieldTitle
	fieldBody
	fieldRating
	fieldAgree
	fieldCount
)

// editor is the add/edit review screen. Every change is written through to
// data.Form so its per-field errors clear as the user types.
type editor struct {
	data  view.ReviewEditor
	focus editorField

	// song indexes data.Songs; -1 means nothing chosen.
	song   int
	title  textinput.Model
	body   textarea.Model
	rating int
}

func newEditor(data view.ReviewEditor, preselect model.ID) *editor {
	f := data.Form
	if f == nil {
		f = form.NewReview()
		data.Form = f
	}
	if preselect != 0 && f.SongID == "" {
		f.Set(form.FieldSongID, preselect.String())
	}

	e := &editor{data: data, song: -1}
	for i, s := range data.Songs {
		if s.ID.String() == f.SongID {
			e.song = i
			break
		}
	}
	e.rating, _ = strconv.Atoi(f.Rating)

	e.title = textinput.New()
	e.title.Placeholder = "Enter a descriptive title"
	e.title.CharLimit = form.TitleMax
	e.title.Width = 60
	e.title.SetValue(f.Title)

	e.body = textarea.New()
	e.body.Placeholder = "Share your thoughts about this song..."
	e.body.CharLimit = form.ReviewBodyMax
	e.body.ShowLineNumbers = false
	e.body.SetWidth(60)
	e.body.SetHeight(5)
	e.body.SetValue(f.Body)

	return e
}

// move shifts focus by delta, wrapping around.
func (e *editor) move(delta int) {
	e.focus = editorField((int(e.focus) + delta + int(fieldCount)) % int(fieldCount))

	e.title.Blur()
	e.body.Blur()
	switch e.focus {
	case fieldTitle:
		e.title.Focus()
	case fieldBody:
		e.body.Focus()
	}
}

func (e *editor) update(msg tea.KeyMsg) tea.Cmd {
	f := e.data.Form
	key := msg.String()

	switch e.focus {
	case fieldSong:
		switch key {
		case "left", "h":
			e.song = max(e.song-1, 0)
		case "right", "l":
			e.song = min(e.song+1, len(e.data.Songs)-1)
		default:
			return nil
		}
		if e.song >= 0 {
			f.Set(form.FieldSongID, e.data.Songs[e.song].ID.String())
		}

	case fieldRating:
		switch key {
		case "left", "h":
			e.rating = max(e.rating-1, model.MinRating)
		case "right", "l":
			e.rating = min(e.rating+1, model.MaxRating)
		default:
			return nil
		}
		f.Set(form.FieldRating, strconv.Itoa(e.rating))

	case fieldAgree:
		if key == " " || key == "enter" {
			f.SetAgree(!f.AgreeToTerms)
		}

	case fieldTitle:
		var cmd tea.Cmd
		e.title, cmd = e.title.Update(msg)
		if v := e.title.Value(); v != f.Title {
			f.Set(form.FieldTitle, v)
		}
		return cmd

	case fieldBody:
		var cmd tea.Cmd
		e.body, cmd = e.body.Update(msg)
		if v := e.body.Value(); v != f.Body {
			f.Set(form.FieldBody, v)
		}
		return cmd
	}
	return nil
}

// collect copies the form for a submission running off the UI goroutine.
func (e *editor) collect() *form.Review {
	f := *e.data.Form
	f.Title = e.title.Value()
	f.Body = e.body.Value()
	f.Errors = maps.Clone(f.Errors)
	return &f
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.back()
	case "tab":
		m.editor.move(1)
		return m, nil
	case "shift+tab":
		m.editor.move(-1)
		return m, nil
	case "ctrl+s":
		if m.busy {
			return m, nil
		}
		return m.submitReview()
	}
	return m, m.editor.update(msg)
}

func (m Model) submitReview() (Model, tea.Cmd) {
	mgr, out := m.bind()
	ctx, gen := m.ctx, m.gen
	f := m.editor.collect()
	original := m.editor.data.Original

	m.busy = true
	return m, tea.Batch(func() tea.Msg {
		var ok bool
		if original != nil {
			_, ok = mgr.SubmitEdit(ctx, *original, f)
		} else {
			_, ok = mgr.SubmitReview(ctx, f)
		}
		return reviewSavedMsg{gen: gen, ok: ok, form: f, outcome: out.outcome}
	}, m.spinner.Tick)
}
