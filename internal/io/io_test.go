package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{1200, 800, 600, 600, 400},
		{800, 1200, 600, 400, 600},
		{300, 300, 600, 300, 300},
		{600, 600, 600, 600, 600},
		{5000, 2, 100, 100, 1},
		{1200, 800, 0, 1200, 800},
	}

	for _, tt := range tests {
		gotW, gotH := Fit(tt.w, tt.h, tt.max)
		if gotW != tt.wantW || gotH != tt.wantH {
			t.Errorf("Fit(%d, %d, %d) = %dx%d, want %dx%d", tt.w, tt.h, tt.max, gotW, gotH, tt.wantW, tt.wantH)
		}
	}
}

func TestThumbnail(t *testing.T) {
	svc := NewCoverService()

	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"landscape shrinks", 120, 80, 60, 40},
		{"small is not enlarged", 30, 20, 30, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.Thumbnail(context.Background(), pngBytes(t, tt.w, tt.h), 60)
			if err != nil {
				t.Fatalf("Thumbnail: %v", err)
			}
			img, err := jpeg.Decode(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("output is not JPEG: %v", err)
			}
			if b := img.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestThumbnail_Errors(t *testing.T) {
	svc := NewCoverService()

	if _, err := svc.Thumbnail(context.Background(), []byte("not an image"), 60); err == nil {
		t.Error("expected decode error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Thumbnail(ctx, pngBytes(t, 4, 4), 60); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Song: Part 1/2", "Song_ Part 1_2"},
		{"Help!...", "Help!"},
		{"  Name   with  spaces ", "Name with spaces"},
		{"Abbey Road", "Abbey Road"},
	}

	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	if err := WriteFile(path, []byte("first")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := WriteFile(path, []byte("second")); err != nil {
		t.Fatalf("WriteFile overwrite: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want second", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}
