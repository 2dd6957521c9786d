package graph

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"crmd/internal/graph/model"
)

const cursorPrefix = "cursor:"

// page is a half-open [Start, End) window over a list of Total items.
type page struct {
	Start int
	End   int
	Total int
}

// paginate computes the window selected by relay-style first/after
// arguments. An after cursor past the end yields an empty window; a
// malformed cursor or negative first is a request error.
func paginate(total int, first *int, after *string) (page, error) {
	start := 0
	if after != nil {
		idx, err := decodeCursor(*after)
		if err != nil {
			return page{}, err
		}
		start = idx + 1
	}
	if start > total {
		start = total
	}

	end := total
	if first != nil {
		if *first < 0 {
			return page{}, fmt.Errorf("first must not be negative, got %d", *first)
		}
		if start+*first < end {
			end = start + *first
		}
	}

	return page{Start: start, End: end, Total: total}, nil
}

func (p page) info() *model.PageInfo {
	info := &model.PageInfo{
		HasNextPage:     p.End < p.Total,
		HasPreviousPage: p.Start > 0,
	}
	if p.Start < p.End {
		start := offsetCursor(p.Start)
		end := offsetCursor(p.End - 1)
		info.StartCursor = &start
		info.EndCursor = &end
	}
	return info
}

// offsetCursor encodes a list offset as an opaque cursor.
func offsetCursor(i int) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(i)))
}

func decodeCursor(cursor string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor %q", cursor)
	}
	s, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid cursor %q", cursor)
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("invalid cursor %q", cursor)
	}
	return idx, nil
}
