// Package form validates user-authored reviews and comments and turns them
// into API payloads.
//
// Validation is pure and synchronous. Every call re-checks every field from
// scratch and yields at most one message per field:
//
//	f := form.NewReview()
//	errs := f.Validate()
//	errs.Get(form.FieldTitle) // "Review title is required"
//
// Editing a field clears only that field's message:
//
//	f.Set(form.FieldTitle, "Great Track") // errs for body, rating... remain
//
// # Rules
//
//	songId        required
//	title         required, 5..100 characters (trimmed)
//	body          required, 20..1000 characters (trimmed); comments: >= 5
//	rating        required, one of 1..10
//	agreeToTerms  must be checked
package form
