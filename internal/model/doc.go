// Package model defines the catalog entities shared by every layer of
// song-review-hub: songs, albums, reviews, comments and users.
//
// The entities are transient copies of resources owned by the remote API.
// Nothing in this package talks to the network; it only holds data and the
// small pure helpers the pages need to join and order it.
//
// # Entities
//
//	song := model.Song{ID: 2, Title: "Come Together", Artist: "The Beatles", Duration: "4:20"}
//	fmt.Println(song.Path()) // "/songs/2"
//
// # Joining
//
// Reviews and comments reference songs and users by id. Joins are linear
// scans over the fetched collections:
//
//	song, ok := model.FindSong(songs, review.SongID)
//	name := model.Username(users, comment.UserID) // "Unknown User" when dangling
//
// # Ordering
//
// Reviews and comments are shown newest first:
//
//	model.SortReviewsNewestFirst(reviews)
//	model.SortCommentsNewestFirst(comments)
//
// # Ratings
//
// A rating r in [1,10] renders as r filled stars followed by 10-r empty stars:
//
//	model.Stars(8) // "★★★★★★★★☆☆"
package model
