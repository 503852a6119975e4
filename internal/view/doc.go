// Package view holds the page logic shared by the browser and terminal
// shells: what each page fetches, how results are joined and ordered, and
// what happens when a form is submitted.
//
// # Manager
//
// The Manager coordinates every page:
//
//  1. Fetch the records the page needs, concurrently where there are several
//  2. Join reviews with songs and users, resolve comment authors
//  3. Sort reviews and comments newest first, album songs by track
//  4. Validate and submit forms, then notify and navigate
//
// # Basic Usage
//
//	manager := view.NewManager(catalog.New(client), session.New(1),
//	    view.WithLogger(logger),
//	    view.WithNotifier(view.NotifierFunc(func(n view.Notification) {
//	        fmt.Println(n.Message)
//	    })),
//	)
//
//	home := manager.Home(ctx)
//	if home.OK() {
//	    for _, c := range home.Data.Cards() {
//	        fmt.Println(c.Title)
//	    }
//	}
//
// # Page States
//
// Each loader returns a State. A page starts out loading and ends in one of:
//   - StatusReady: Data is filled in
//   - StatusNotFound: the song, album or review does not exist
//   - StatusFailed: a request failed; the user has been notified
//   - StatusDenied: the session may not edit the review; the user was sent home
//
// # Notifications
//
// Successes and failures are reported through a Notifier as Notification
// values carrying a Message and a Level (Info, Success, Warning, Error).
package view
