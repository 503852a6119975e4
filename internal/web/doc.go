// Package web is the browser shell: a gin server that renders every page on
// the server with html/template.
//
// Navigation triggered by the view layer becomes a 303 See Other redirect,
// and notifications raised before a redirect are carried across it in a
// short-lived cookie. Album covers are proxied through /covers/:id as JPEG
// thumbnails.
package web
