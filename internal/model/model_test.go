package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestStars(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		got := Stars(r)

		filled := strings.Count(got, filledStar)
		empty := strings.Count(got, emptyStar)
		if filled != r || empty != MaxRating-r {
			t.Errorf("Stars(%d) = %q: %d filled, %d empty", r, got, filled, empty)
		}

		want := strings.Repeat("★", r) + strings.Repeat("☆", 10-r)
		if got != want {
			t.Errorf("Stars(%d) = %q, want %q", r, got, want)
		}
	}
}

func TestStars_Clamped(t *testing.T) {
	tests := []struct {
		rating int
		want   string
	}{
		{-3, strings.Repeat("☆", 10)},
		{0, strings.Repeat("☆", 10)},
		{12, strings.Repeat("★", 10)},
	}

	for _, tt := range tests {
		if got := Stars(tt.rating); got != tt.want {
			t.Errorf("Stars(%d) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is longer than five", 5, "this ..."},
		{"héllo wörld", 5, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Excerpt(tt.input, tt.n); got != tt.want {
				t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestSortReviewsNewestFirst(t *testing.T) {
	base := time.Date(2024, 10, 15, 14, 30, 0, 0, time.UTC)
	reviews := []Review{
		{ID: 1, CreatedAt: NewTimestamp(base)},
		{ID: 2, CreatedAt: NewTimestamp(base.Add(2 * time.Hour))},
		{ID: 3, CreatedAt: NewTimestamp(base.Add(-time.Hour))},
		{ID: 4, CreatedAt: NewTimestamp(base.Add(time.Hour))},
	}

	SortReviewsNewestFirst(reviews)

	want := []ID{2, 4, 1, 3}
	for i, r := range reviews {
		if r.ID != want[i] {
			t.Fatalf("position %d: got review %d, want %d", i, r.ID, want[i])
		}
		if i > 0 && !reviews[i-1].CreatedAt.After(r.CreatedAt.Time) {
			t.Errorf("reviews not strictly descending at %d", i)
		}
	}
}

func TestSortCommentsNewestFirst_StableTies(t *testing.T) {
	at := NewTimestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	comments := []Comment{
		{ID: 1, CreatedAt: at},
		{ID: 2, CreatedAt: NewTimestamp(at.Add(time.Minute))},
		{ID: 3, CreatedAt: at},
	}

	SortCommentsNewestFirst(comments)

	want := []ID{2, 1, 3}
	for i, c := range comments {
		if c.ID != want[i] {
			t.Errorf("position %d: got comment %d, want %d", i, c.ID, want[i])
		}
	}
}

func TestSongsOnAlbum(t *testing.T) {
	one, two := ID(1), ID(2)
	songs := []Song{
		{ID: 10, TrackNumber: 3, AlbumID: &one},
		{ID: 11, TrackNumber: 1, AlbumID: &two},
		{ID: 12, TrackNumber: 1, AlbumID: &one},
		{ID: 13},
	}

	got := SongsOnAlbum(songs, 1)
	SortSongsByTrack(got)

	if len(got) != 2 || got[0].ID != 12 || got[1].ID != 10 {
		t.Errorf("SongsOnAlbum(1) = %+v, want songs 12 then 10", got)
	}
}

func TestUsername(t *testing.T) {
	users := []User{{ID: 1, Username: "musiclover"}}

	if got := Username(users, 1); got != "musiclover" {
		t.Errorf("Username(1) = %q", got)
	}
	if got := Username(users, 99); got != UnknownUser {
		t.Errorf("Username(99) = %q, want %q", got, UnknownUser)
	}
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Song{ID: 1}.Path(), "/songs/1"},
		{Album{ID: 7}.Path(), "/albums/7"},
		{Review{ID: 3}.Path(), "/reviews/3"},
		{Review{ID: 3}.EditPath(), "/reviews/3/edit"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    ID
		wantErr bool
	}{
		{`7`, 7, false},
		{`"12"`, 12, false},
		{`null`, 0, false},
		{`"abc"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if id != tt.want {
				t.Errorf("got %d, want %d", id, tt.want)
			}
		})
	}
}

func TestTimestamp_JSON(t *testing.T) {
	var r Review
	data := `{"id":"4","songId":2,"userId":1,"title":"Great Song!","body":"b","rating":9,"createdAt":"2024-10-15T14:30:00Z","updatedAt":""}`
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if r.ID != 4 {
		t.Errorf("ID = %d, want 4", r.ID)
	}
	want := time.Date(2024, 10, 15, 14, 30, 0, 0, time.UTC)
	if !r.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", r.CreatedAt, want)
	}
	if !r.UpdatedAt.IsZero() {
		t.Errorf("UpdatedAt should be zero, got %v", r.UpdatedAt)
	}
	if r.Edited() {
		t.Error("review with empty updatedAt should not be edited")
	}

	out, err := json.Marshal(NewTimestamp(want))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-10-15T14:30:00.000Z"` {
		t.Errorf("Marshal = %s", out)
	}
}
