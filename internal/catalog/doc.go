// Package catalog maps the song review REST surface onto typed calls.
//
// # Endpoints
//
//	/songs      GET list, GET by id
//	/albums     GET list, GET by id
//	/reviews    GET list, GET by id, GET ?songId=, POST, PUT by id, DELETE by id
//	/comments   GET list, GET ?songId=, POST, DELETE by id
//	/users      GET list, GET by id
//
// Filtering ("reviews for song X") is delegated to the server through
// literal query parameters; nothing is filtered client-side here.
package catalog
