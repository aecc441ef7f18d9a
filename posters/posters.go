// Package posters turns the accepted-poster CSV into the static posters
// page of the conference site.
package posters

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/iscol-meeting/iscol2025/helpers"
)

// Poster is one accepted poster as listed in the session CSV.
type Poster struct {
	Session int    `json:"session"`
	Title   string `json:"title"`
	Authors string `json:"authors"`
}

// Session is one poster session with its scheduled time slot.
type Session struct {
	ID      int      `json:"id"`
	Time    string   `json:"time,omitempty"`
	Posters []Poster `json:"posters,omitempty"`
}

// defaultSessionTimes are the program's poster slots.
var defaultSessionTimes = map[int]string{
	1: "10:15 - 11:15",
	2: "13:45 - 14:45",
	3: "16:40 - 17:40",
}

const (
	colSession = "session"
	colTitle   = "title"
	colAuthors = "authors"
)

func buildColumnMap(header []string) map[int]string {
	columns := make(map[int]string, len(header))
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "poster session id", "session id", "session":
			columns[i] = colSession
		case "title", "poster title":
			columns[i] = colTitle
		case "authors", "author", "presenters":
			columns[i] = colAuthors
		}
	}
	return columns
}

// ReadFile loads posters from a CSV export with Poster Session ID, title,
// and Authors columns.
func ReadFile(path string) ([]Poster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads poster rows from CSV data.
func Parse(r io.Reader) ([]Poster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing posters CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	columns := buildColumnMap(header)

	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}
	for _, col := range []string{colSession, colTitle, colAuthors} {
		if !present[col] {
			return nil, fmt.Errorf("posters CSV missing %q column", col)
		}
	}

	var posters []Poster
	for i, row := range rows[1:] {
		var p Poster
		for j, value := range row {
			if j >= len(header) {
				break
			}
			value = helpers.NormalizeWhitespace(value)
			if value == "" {
				continue
			}
			switch columns[j] {
			case colSession:
				id, err := strconv.Atoi(value)
				if err != nil {
					return nil, fmt.Errorf("row %d: parsing session ID %q: %w", i+2, value, err)
				}
				p.Session = id
			case colTitle:
				p.Title = value
			case colAuthors:
				p.Authors = value
			}
		}
		posters = append(posters, p)
	}
	return posters, nil
}

// Group buckets posters into sessions sorted by session number. Every
// session in times appears even when it holds no posters; sessions the
// program does not know get an empty time label. A nil times map uses the
// default program slots.
func Group(posters []Poster, times map[int]string) []Session {
	if times == nil {
		times = defaultSessionTimes
	}

	byID := make(map[int]*Session, len(times))
	var ids []int
	session := func(id int) *Session {
		if s, ok := byID[id]; ok {
			return s
		}
		s := &Session{ID: id, Time: times[id]}
		byID[id] = s
		ids = append(ids, id)
		return s
	}

	for id := range times {
		session(id)
	}
	for _, p := range posters {
		s := session(p.Session)
		s.Posters = append(s.Posters, p)
	}

	sort.Ints(ids)
	sessions := make([]Session, 0, len(ids))
	for _, id := range ids {
		sessions = append(sessions, *byID[id])
	}
	return sessions
}
