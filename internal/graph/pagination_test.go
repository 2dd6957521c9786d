package graph

import (
	"encoding/base64"
	"testing"
)

func TestPaginate(t *testing.T) {
	cursor := func(i int) *string {
		c := offsetCursor(i)
		return &c
	}
	num := func(n int) *int { return &n }

	tests := []struct {
		name      string
		total     int
		first     *int
		after     *string
		wantStart int
		wantEnd   int
	}{
		{"no arguments", 5, nil, nil, 0, 5},
		{"first limits window", 5, num(2), nil, 0, 2},
		{"first larger than total", 5, num(10), nil, 0, 5},
		{"first zero", 5, num(0), nil, 0, 0},
		{"after skips past cursor", 5, nil, cursor(1), 2, 5},
		{"after and first", 5, num(2), cursor(1), 2, 4},
		{"after at last item", 5, nil, cursor(4), 5, 5},
		{"after past end", 5, nil, cursor(9), 5, 5},
		{"empty list", 0, num(2), nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paginate(tt.total, tt.first, tt.after)
			if err != nil {
				t.Fatalf("paginate() error = %v", err)
			}
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("paginate() window = [%d, %d), want [%d, %d)", got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
			if got.Total != tt.total {
				t.Errorf("paginate().Total = %d, want %d", got.Total, tt.total)
			}
		})
	}

	t.Run("negative first", func(t *testing.T) {
		neg := -1
		if _, err := paginate(5, &neg, nil); err == nil {
			t.Error("paginate() with negative first expected error")
		}
	})

	t.Run("malformed cursor", func(t *testing.T) {
		bad := "###"
		if _, err := paginate(5, nil, &bad); err == nil {
			t.Error("paginate() with malformed cursor expected error")
		}
	})

	t.Run("cursor without prefix", func(t *testing.T) {
		bad := base64.StdEncoding.EncodeToString([]byte("7"))
		if _, err := paginate(5, nil, &bad); err == nil {
			t.Error("paginate() with unprefixed cursor expected error")
		}
	})

	t.Run("negative cursor index", func(t *testing.T) {
		bad := base64.StdEncoding.EncodeToString([]byte(cursorPrefix + "-3"))
		if _, err := paginate(5, nil, &bad); err == nil {
			t.Error("paginate() with negative cursor expected error")
		}
	})
}

func TestCursorRoundTrip(t *testing.T) {
	for _, i := range []int{0, 1, 42, 99999} {
		got, err := decodeCursor(offsetCursor(i))
		if err != nil {
			t.Fatalf("decodeCursor(offsetCursor(%d)) error = %v", i, err)
		}
		if got != i {
			t.Errorf("decodeCursor(offsetCursor(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestPageInfo(t *testing.T) {
	t.Run("full window", func(t *testing.T) {
		info := page{Start: 0, End: 5, Total: 5}.info()
		if info.HasNextPage {
			t.Error("HasNextPage = true, want false")
		}
		if info.HasPreviousPage {
			t.Error("HasPreviousPage = true, want false")
		}
		if info.StartCursor == nil || *info.StartCursor != offsetCursor(0) {
			t.Errorf("StartCursor = %v, want cursor 0", info.StartCursor)
		}
		if info.EndCursor == nil || *info.EndCursor != offsetCursor(4) {
			t.Errorf("EndCursor = %v, want cursor 4", info.EndCursor)
		}
	})

	t.Run("middle window", func(t *testing.T) {
		info := page{Start: 2, End: 4, Total: 5}.info()
		if !info.HasNextPage {
			t.Error("HasNextPage = false, want true")
		}
		if !info.HasPreviousPage {
			t.Error("HasPreviousPage = false, want true")
		}
		if info.StartCursor == nil || *info.StartCursor != offsetCursor(2) {
			t.Errorf("StartCursor = %v, want cursor 2", info.StartCursor)
		}
		if info.EndCursor == nil || *info.EndCursor != offsetCursor(3) {
			t.Errorf("EndCursor = %v, want cursor 3", info.EndCursor)
		}
	})

	t.Run("empty window", func(t *testing.T) {
		info := page{Start: 5, End: 5, Total: 5}.info()
		if info.HasNextPage {
			t.Error("HasNextPage = true, want false")
		}
		if !info.HasPreviousPage {
			t.Error("HasPreviousPage = false, want true")
		}
		if info.StartCursor != nil || info.EndCursor != nil {
			t.Errorf("cursors = (%v, %v), want nil for empty window", info.StartCursor, info.EndCursor)
		}
	})
}
