// Package card turns catalog entities into presentational cards.
//
// A Card is plain data: title, subtitle, body, footer, badges and the route
// a click leads to. The browser and terminal shells each draw it their own
// way.
//
//	c := card.Review(review, &song, &user)
//	c.Stars    // "★★★★★★★★☆☆"
//	c.Click(nav) // nav.Navigate("/reviews/4")
package card
