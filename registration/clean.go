package registration

import (
	"strings"
	"time"

	"github.com/iscol-meeting/iscol2025/affiliation"
	"github.com/iscol-meeting/iscol2025/helpers"
)

// CleanStats summarizes what Clean did to a batch of records.
type CleanStats struct {
	Loaded            int `json:"loaded"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	ValidEmails       int `json:"valid_emails"`
	WithAffiliation   int `json:"with_affiliation"`
}

// Unique returns the number of records left after deduplication.
func (s CleanStats) Unique() int {
	return s.Loaded - s.DuplicatesRemoved
}

// Clean runs the standard cleaning pipeline: email normalization, duplicate
// removal, placeholder fills, timestamp parsing, and affiliation
// normalization. The input records are not modified.
func Clean(records []*Record, n *affiliation.Normalizer) ([]*Record, CleanStats) {
	if n == nil {
		n = affiliation.NewNormalizer(nil)
	}

	stats := CleanStats{Loaded: len(records)}

	cleaned := make([]*Record, 0, len(records))
	for _, r := range records {
		c := *r
		c.Email = helpers.CleanEmail(r.Email)
		c.NormalizedAffiliations = n.Normalize(r.Affiliation)
		c.Attending = helpers.Or(r.Attending, affiliation.NotSpecified)
		c.Role = helpers.Or(r.Role, affiliation.NotSpecified)
		c.SubmittedPaper = helpers.Or(r.SubmittedPaper, affiliation.NotSpecified)
		c.Driving = helpers.Or(r.Driving, affiliation.NotSpecified)
		c.RegisteredAt = ParseTimestamp(r.Timestamp)
		cleaned = append(cleaned, &c)
	}

	deduped := DedupeByEmail(cleaned)
	stats.DuplicatesRemoved = len(cleaned) - len(deduped)

	for _, r := range deduped {
		if r.Email != "" {
			stats.ValidEmails++
		}
		if r.HasAffiliation() {
			stats.WithAffiliation++
		}
	}

	return deduped, stats
}

// DedupeByEmail keeps the first record per non-empty email, in file order.
// Records without an email are all kept.
func DedupeByEmail(records []*Record) []*Record {
	seen := make(map[string]bool)
	result := make([]*Record, 0, len(records))
	for _, r := range records {
		if r.Email != "" {
			if seen[r.Email] {
				continue
			}
			seen[r.Email] = true
		}
		result = append(result, r)
	}
	return result
}

// Timestamp layouts seen in Google Forms exports, tried in order. The first
// covers sheet exports like "2025/04/21 8:15:33 PM GMT+3".
var timestampLayouts = []string{
	"2006/01/02 3:04:05 PM MST",
	"2006/01/02 3:04:05 PM",
	"2006/01/02 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

// ParseTimestamp parses a registration timestamp, trying each known layout.
// Returns the zero time when no layout matches.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
