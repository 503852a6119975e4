package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/song-review-hub/internal/card"
	"github.com/handiism/song-review-hub/internal/form"
	"github.com/handiism/song-review-hub/internal/model"
	"github.com/handiism/song-review-hub/internal/route"
	"github.com/handiism/song-review-hub/internal/view"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	navStyle = lipgloss.NewStyle().
			Padding(0, 1)

	navActiveStyle = navStyle.
			Bold(true).
			Foreground(lipgloss.Color("#1A1A2E")).
			Background(lipgloss.Color("#4ECDC4"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C757D")).
			Padding(0, 1).
			Width(64)

	selectedBoxStyle = boxStyle.
				BorderForeground(lipgloss.Color("#FF6B6B"))
)

// visibleCards is how many cards a list shows at once.
const visibleCards = 5

// View renders the current page.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ " + route.AppName))
	b.WriteString("\n")
	b.WriteString(m.viewNav())
	b.WriteString("\n\n")

	switch m.status {
	case view.StatusLoading:
		b.WriteString(m.spinner.View() + " Loading...")
	case view.StatusNotFound:
		b.WriteString(errorStyle.Render(notFoundText(m.page())))
	case view.StatusFailed:
		b.WriteString(errorStyle.Render("Something went wrong (r to retry)"))
	case view.StatusDenied:
		b.WriteString(warningStyle.Render("Not allowed"))
	case view.StatusReady:
		b.WriteString(m.viewPage())
	}
	b.WriteString("\n")

	if len(m.notes) > 0 {
		b.WriteString("\n")
		for _, n := range m.notes {
			b.WriteString(noteStyle(n.Level).Render(n.Message))
			b.WriteString("\n")
		}
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewNav() string {
	items := make([]string, len(route.NavItems))
	for i, item := range route.NavItems {
		label := fmt.Sprintf("%d %s", i+1, item.Label)
		if item.Active(m.path) {
			items[i] = navActiveStyle.Render(label)
		} else {
			items[i] = navStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func notFoundText(page route.Page) string {
	switch page {
	case route.PageSong:
		return "Song not found"
	case route.PageAlbum:
		return "Album not found"
	case route.PageReview, route.PageEditReview:
		return "Review not found"
	}
	return "404 Page Not Found"
}

func noteStyle(level view.Level) lipgloss.Style {
	switch level {
	case view.LevelSuccess:
		return successStyle
	case view.LevelWarning:
		return warningStyle
	case view.LevelError:
		return errorStyle
	}
	return infoStyle
}

func (m Model) viewPage() string {
	switch m.page() {
	case route.PageHome:
		return m.viewList("Recent Reviews", "No reviews yet.")
	case route.PageSongs:
		return m.viewList("All Songs", "No songs found.")
	case route.PageAlbums:
		return m.viewList("All Albums", "No albums found.")
	case route.PageSong:
		return m.viewSong()
	case route.PageAlbum:
		return m.viewAlbum()
	case route.PageReview:
		return m.viewReview()
	case route.PageAddReview, route.PageEditReview:
		if m.editor != nil {
			return m.viewEditor()
		}
	}
	return ""
}

func (m Model) viewList(heading, empty string) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render(heading))
	b.WriteString("\n\n")
	if len(m.cards) == 0 {
		b.WriteString(dimStyle.Render(empty))
		return b.String()
	}
	b.WriteString(m.viewCards())
	return b.String()
}

// viewCards renders a window of cards around the selection.
func (m Model) viewCards() string {
	start := 0
	if m.selected >= visibleCards {
		start = max(min(m.selected-visibleCards/2, len(m.cards)-visibleCards), 0)
	}
	end := min(start+visibleCards, len(m.cards))

	var b strings.Builder
	if start > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(renderCard(m.cards[i], i == m.selected))
		b.WriteString("\n")
	}
	if end < len(m.cards) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↓ %d more", len(m.cards)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCard(c card.Card, selected bool) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(c.Title)}
	if c.Subtitle != "" {
		lines = append(lines, dimStyle.Render(c.Subtitle))
	}
	if c.Stars != "" {
		lines = append(lines, starStyle.Render(c.Stars))
	}
	if c.Text != "" {
		lines = append(lines, c.Text)
	}
	if len(c.Badges) > 0 {
		badges := make([]string, len(c.Badges))
		for i, badge := range c.Badges {
			badges[i] = "[" + badge.Text + "]"
		}
		lines = append(lines, infoStyle.Render(strings.Join(badges, " ")))
	}
	footer := c.Footer
	if c.FooterBadge != nil {
		footer += "  [" + c.FooterBadge.Text + "]"
	}
	if footer != "" {
		lines = append(lines, dimStyle.Render(footer))
	}

	style := boxStyle
	if selected {
		style = selectedBoxStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

func date(ts model.Timestamp) string {
	return ts.UTC().Format(card.DateLayout)
}

func (m Model) viewSong() string {
	d := m.song
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(d.Song.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(d.Song.Artist))
	b.WriteString("\n")
	b.WriteString("Duration: " + d.Song.Duration)
	if d.Song.AlbumID != nil {
		b.WriteString(fmt.Sprintf(" · Track #%d", d.Song.TrackNumber))
	}
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Reviews (%d)", len(d.Reviews))))
	b.WriteString("\n")
	if len(m.cards) == 0 {
		b.WriteString(dimStyle.Render("No reviews yet. Press a to be the first to review!"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewCards())
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Comments (%d)", len(d.Comments))))
	b.WriteString("\n")
	if m.commenting {
		b.WriteString(m.comment.View())
		b.WriteString("\n")
		if msg := m.commentForm.Errors.Get(form.FieldBody); msg != "" {
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	if len(d.Comments) == 0 {
		b.WriteString(dimStyle.Render("No comments yet."))
		return b.String()
	}
	for i, c := range d.Comments {
		cursor := "  "
		if m.selected == len(m.cards)+i {
			cursor = "> "
		}
		b.WriteString(cursor + lipgloss.NewStyle().Bold(true).Render(c.Username) + dimStyle.Render("  "+date(c.Comment.CreatedAt)))
		b.WriteString("\n")
		b.WriteString("  " + c.Comment.Body)
		if c.CanDelete {
			b.WriteString(dimStyle.Render("  (d to delete)"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewAlbum() string {
	a := m.album.Album
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(a.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(a.Artist))
	b.WriteString("\n")
	var meta []string
	if a.Genre != "" {
		meta = append(meta, a.Genre)
	}
	if a.ReleaseYear != 0 {
		meta = append(meta, fmt.Sprint(a.ReleaseYear))
	}
	if len(meta) > 0 {
		b.WriteString(infoStyle.Render(strings.Join(meta, " · ")))
		b.WriteString("\n")
	}
	if a.Description != "" {
		b.WriteString(a.Description)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render("Tracks"))
	b.WriteString("\n")
	if len(m.cards) == 0 {
		b.WriteString(dimStyle.Render("No songs on this album."))
		return b.String()
	}
	b.WriteString(m.viewCards())
	return b.String()
}

func (m Model) viewReview() string {
	d := m.review
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(d.Review.Title))
	b.WriteString("\n")
	b.WriteString(starStyle.Render(model.Stars(d.Review.Rating)))
	b.WriteString("\n")

	meta := d.Song.Label() + " · by " + d.User.Username + " · " + date(d.Review.CreatedAt)
	if d.Review.Edited() {
		meta += " (edited " + date(d.Review.UpdatedAt) + ")"
	}
	b.WriteString(dimStyle.Render(meta))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(72).Render(d.Review.Body))
	b.WriteString("\n")

	if m.confirm {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render("Are you sure you want to delete this review? (y/n)"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewEditor() string {
	e := m.editor
	f := e.data.Form
	var b strings.Builder

	heading := view.TitleAddReview
	if e.data.Editing() {
		heading = view.TitleEditReview
	}
	b.WriteString(subtitleStyle.Render(heading))
	b.WriteString("\n\n")

	song := "Select a song..."
	if e.song >= 0 {
		song = e.data.Songs[e.song].Label()
	}
	m.field(&b, fieldSong, "Song", "‹ "+song+" ›", f.Errors.Get(form.FieldSongID))
	m.field(&b, fieldTitle, fmt.Sprintf("Title (%d/%d)", f.TitleCount(), form.TitleMax), e.title.View(), f.Errors.Get(form.FieldTitle))
	m.field(&b, fieldBody, fmt.Sprintf("Review (%d/%d)", f.BodyCount(), form.ReviewBodyMax), e.body.View(), f.Errors.Get(form.FieldBody))

	rating := dimStyle.Render("not rated")
	if e.rating > 0 {
		rating = starStyle.Render(model.Stars(e.rating)) + fmt.Sprintf(" %d/%d", e.rating, model.MaxRating)
	}
	m.field(&b, fieldRating, "Rating", "‹ "+rating+" ›", f.Errors.Get(form.FieldRating))

	check := "[ ]"
	if f.AgreeToTerms {
		check = "[×]"
	}
	m.field(&b, fieldAgree, "Terms", check+" I agree to the terms and conditions", f.Errors.Get(form.FieldAgreeToTerms))

	if m.busy {
		b.WriteString(m.spinner.View() + " Saving...")
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) field(b *strings.Builder, field editorField, label, input, errMsg string) {
	style := dimStyle
	if m.editor.focus == field {
		style = subtitleStyle
	}
	b.WriteString(style.Render(label))
	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n")
	if errMsg != "" {
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m Model) getHelpText() string {
	switch {
	case m.editor != nil && m.ready():
		return "tab: next field • ←/→: choose • space: toggle • ctrl+s: save • esc: back"
	case m.commenting:
		return "ctrl+s: post comment • esc: cancel"
	case m.confirm:
		return "y: delete • any key: cancel"
	}

	help := "1-4: navigate • ↑/↓: select • enter: open • esc: back • r: reload • q: quit"
	switch m.page() {
	case route.PageSong:
		help += " • a: review • c: comment • d: delete comment"
	case route.PageReview:
		if m.review.CanEdit {
			help += " • e: edit • x: delete"
		}
	}
	return help
}
