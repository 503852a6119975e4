// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Writing configuration files in place
//   - Filename sanitization for download names
//   - Album cover thumbnails
//
// # File Operations
//
//	// Write a file, creating its directory first
//	err := ioutils.WriteFile("/path/to/config.yaml", data)
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Filename Sanitization
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Cover Thumbnails
//
// The CoverService scales cover art down for the album pages:
//
//	svc := ioutils.NewCoverService()
//
//	// Fit within 600x600, never enlarging, as JPEG
//	thumb, _ := svc.Thumbnail(ctx, coverData, 600)
package ioutils
