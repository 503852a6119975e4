package card

// Kind distinguishes the card variants; shells use it as a style hook.
type Kind string

const (
	KindSong   Kind = "song-card"
	KindAlbum  Kind = "album-card"
	KindReview Kind = "review-card"
)

// Variant is a badge color role.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantInfo      Variant = "info"
)

// Badge is a small labelled chip for an auxiliary attribute.
type Badge struct {
	Text    string
	Variant Variant
}

// Navigator moves the user to another route.
type Navigator interface {
	Navigate(path string)
}

// Card is the rendering-agnostic content of one catalog card.
//
// Empty fields are simply not rendered. Target is the route a click leads
// to; a card without a Target is not clickable.
type Card struct {
	Kind     Kind
	Title    string
	Subtitle string

	// Image is a cover image reference shown above the body.
	Image    string
	ImageAlt string

	// Stars holds a rendered rating, shown before Text.
	Stars string
	Text  string

	Badges []Badge
	Footer string

	// FooterBadge is a badge shown alongside the footer text.
	FooterBadge *Badge

	Target string
}

// Clickable reports whether the card has a click handler.
func (c Card) Clickable() bool {
	return c.Target != ""
}

// Cursor is the pointer affordance: "pointer" exactly when clickable.
func (c Card) Cursor() string {
	if c.Clickable() {
		return "pointer"
	}
	return "default"
}

// Click navigates to the card's target once. It reports false and does
// nothing for a card without a target.
func (c Card) Click(nav Navigator) bool {
	if !c.Clickable() || nav == nil {
		return false
	}
	nav.Navigate(c.Target)
	return true
}
