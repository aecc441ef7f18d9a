// Package outliers mines a raw registration export for anomalies worth a
// human look: bad emails, duplicate people, unusual roles, timing patterns,
// and notable comments.
package outliers

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iscol-meeting/iscol2025/classify"
	"github.com/iscol-meeting/iscol2025/helpers"
	"github.com/iscol-meeting/iscol2025/registration"
)

// Report collects every finding over one registration export.
type Report struct {
	Total        int          `json:"total"`
	Emails       Emails       `json:"emails"`
	People       People       `json:"people"`
	Roles        Roles        `json:"roles"`
	Timing       Timing       `json:"timing"`
	Comments     Comments     `json:"comments"`
	Affiliations Affiliations `json:"affiliations"`
	Patterns     Patterns     `json:"patterns"`
}

// Person identifies one registrant in a finding.
type Person struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
	Attending   string `json:"attending,omitempty"`
}

// Emails holds addresses that fail or barely pass the address pattern, and
// affiliations that look like phone numbers.
type Emails struct {
	Invalid      []Person `json:"invalid,omitempty"`
	Unusual      []string `json:"unusual,omitempty"`
	PhoneNumbers []Person `json:"phone_numbers,omitempty"`
}

// People holds findings about who registered: the same address used more
// than once, names that collapse to the same key, and registrants from
// abroad.
type People struct {
	Duplicates     []Duplicate     `json:"duplicates,omitempty"`
	NameVariations []NameVariation `json:"name_variations,omitempty"`
	International  []Person        `json:"international,omitempty"`
}

// Duplicate is one email address with every registration made under it.
type Duplicate struct {
	Email   string  `json:"email"`
	Count   int     `json:"count"`
	Entries []Entry `json:"entries"`
}

// Entry is one registration under a duplicated address, with the raw
// timestamp as submitted.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Attending string `json:"attending"`
}

// NameVariation groups registrations whose names reduce to the same key.
type NameVariation struct {
	Key     string   `json:"key"`
	Entries []Person `json:"entries"`
}

// Roles holds one-of-a-kind role answers. UniqueCount tallies every role
// that appears exactly once; Rare keeps the self-written ones, longest
// first.
type Roles struct {
	UniqueCount int        `json:"unique_count"`
	Rare        []RareRole `json:"rare,omitempty"`
}

// RareRole is a role answer given by exactly one registrant.
type RareRole struct {
	Role        string `json:"role"`
	Name        string `json:"name"`
	Affiliation string `json:"affiliation,omitempty"`
}

// Timed is one registration placed in time.
type Timed struct {
	When        time.Time `json:"when"`
	Name        string    `json:"name"`
	Affiliation string    `json:"affiliation,omitempty"`
}

// Timing holds findings over registrations with a parseable timestamp.
type Timing struct {
	EarlyBirds   []Timed    `json:"early_birds,omitempty"`
	LastMinute   []Timed    `json:"last_minute,omitempty"`
	WeekendCount int        `json:"weekend_count"`
	NightOwls    []Timed    `json:"night_owls,omitempty"`
	Hours        [24]int    `json:"hours"`
	PerDay       []DayCount `json:"per_day,omitempty"`
}

// DayCount is the number of registrations on one date.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Comment is one free-text comment with its author.
type Comment struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Comments buckets the free-text comments: thanks and enthusiasm, concrete
// requests, and long stories that fit neither.
type Comments struct {
	Count        int       `json:"count"`
	Appreciation []Comment `json:"appreciation,omitempty"`
	Requests     []Comment `json:"requests,omitempty"`
	Long         []Comment `json:"long,omitempty"`
	Lengths      []int     `json:"lengths,omitempty"`
}

// Affiliations holds suspiciously short answers and one-off organizations
// nobody else named.
type Affiliations struct {
	Short   []Person `json:"short,omitempty"`
	Unique  []Person `json:"unique,omitempty"`
	Lengths []int    `json:"lengths,omitempty"`
}

// Patterns holds answer combinations that stand out.
type Patterns struct {
	Indecisive        []Person  `json:"indecisive,omitempty"`
	NoRoleAttending   []Person  `json:"no_role_attending,omitempty"`
	PaperNotAttending []Person  `json:"paper_not_attending,omitempty"`
	Decisions         Decisions `json:"decisions"`
}

// Decisions tallies the multiple-choice answers that feed the decision
// pattern chart.
type Decisions struct {
	AttendingYes   int `json:"attending_yes"`
	AttendingMaybe int `json:"attending_maybe"`
	AttendingNo    int `json:"attending_no"`
	DrivingMaybe   int `json:"driving_maybe"`
}

var (
	appreciationWords = []string{"thank", "great", "excited", "looking forward", "מלך"}
	requestWords      = []string{"poster", "session", "flight", "park", "veg"}

	// Generic words that make a one-off affiliation unremarkable.
	genericAffiliationWords = []string{"university", "college", "institute", "research", "lab", "ai", "tech"}
)

// longCommentRunes marks a comment as a story on length alone.
const longCommentRunes = 50

// Find runs every outlier scan over raw records, before any cleaning. A nil
// categories table falls back to the built-in one.
func Find(records []*registration.Record, cats *classify.Categories) *Report {
	if cats == nil {
		cats = classify.Default()
	}

	return &Report{
		Total:        len(records),
		Emails:       findEmails(records),
		People:       findPeople(records, cats),
		Roles:        findRoles(records, cats),
		Timing:       findTiming(records),
		Comments:     findComments(records),
		Affiliations: findAffiliations(records),
		Patterns:     findPatterns(records),
	}
}

func findEmails(records []*registration.Record) Emails {
	var e Emails
	for _, rec := range records {
		email := strings.TrimSpace(rec.Email)
		if email != "" {
			if !helpers.IsEmail(email) {
				e.Invalid = append(e.Invalid, Person{
					Name:        rec.FullName,
					Email:       email,
					Affiliation: rec.Affiliation,
				})
			} else {
				for _, frag := range registration.UnusualEmailFragments {
					if strings.Contains(email, frag) {
						e.Unusual = append(e.Unusual, email)
						break
					}
				}
			}
		}

		if helpers.IsDigits(rec.Affiliation) {
			e.PhoneNumbers = append(e.PhoneNumbers, Person{
				Name:        rec.FullName,
				Affiliation: rec.Affiliation,
			})
		}
	}
	return e
}

func findPeople(records []*registration.Record, cats *classify.Categories) People {
	var p People

	byEmail := make(map[string][]*registration.Record)
	var emailOrder []string
	for _, rec := range records {
		if rec.Email == "" {
			continue
		}
		if _, seen := byEmail[rec.Email]; !seen {
			emailOrder = append(emailOrder, rec.Email)
		}
		byEmail[rec.Email] = append(byEmail[rec.Email], rec)
	}
	for _, email := range emailOrder {
		group := byEmail[email]
		if len(group) < 2 {
			continue
		}
		d := Duplicate{Email: email, Count: len(group)}
		for _, rec := range group {
			d.Entries = append(d.Entries, Entry{
				Timestamp: rec.Timestamp,
				Name:      rec.FullName,
				Attending: rec.Attending,
			})
		}
		p.Duplicates = append(p.Duplicates, d)
	}
	sort.SliceStable(p.Duplicates, func(i, j int) bool {
		if p.Duplicates[i].Count != p.Duplicates[j].Count {
			return p.Duplicates[i].Count > p.Duplicates[j].Count
		}
		return p.Duplicates[i].Email < p.Duplicates[j].Email
	})

	byKey := make(map[string][]Person)
	var keyOrder []string
	for _, rec := range records {
		key := helpers.NameKey(rec.FullName)
		if key == "" {
			continue
		}
		if _, seen := byKey[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		byKey[key] = append(byKey[key], Person{
			Name:        rec.FullName,
			Email:       rec.Email,
			Affiliation: rec.Affiliation,
		})
	}
	for _, key := range keyOrder {
		group := byKey[key]
		if len(group) < 2 {
			continue
		}
		p.NameVariations = append(p.NameVariations, NameVariation{Key: key, Entries: group})
	}

	for _, rec := range records {
		if cats.IsInternational(rec.Affiliation) {
			p.International = append(p.International, Person{
				Name:        rec.FullName,
				Email:       rec.Email,
				Affiliation: rec.Affiliation,
				Attending:   rec.Attending,
			})
		}
	}

	return p
}

func findRoles(records []*registration.Record, cats *classify.Categories) Roles {
	var out Roles

	counts := make(map[string]int)
	first := make(map[string]*registration.Record)
	var order []string
	for _, rec := range records {
		role := rec.Role
		if role == "" {
			continue
		}
		if counts[role] == 0 {
			order = append(order, role)
			first[role] = rec
		}
		counts[role]++
	}

	for _, role := range order {
		if counts[role] != 1 {
			continue
		}
		out.UniqueCount++
		if cats.IsCommonRole(role) {
			continue
		}
		rec := first[role]
		out.Rare = append(out.Rare, RareRole{
			Role:        role,
			Name:        rec.FullName,
			Affiliation: rec.Affiliation,
		})
	}

	// Longest role descriptions first.
	sort.SliceStable(out.Rare, func(i, j int) bool {
		return utf8.RuneCountInString(out.Rare[i].Role) > utf8.RuneCountInString(out.Rare[j].Role)
	})

	return out
}

func findTiming(records []*registration.Record) Timing {
	var t Timing

	var timed []Timed
	perDay := make(map[string]int)
	for _, rec := range records {
		when := rec.RegisteredAt
		if when.IsZero() {
			when = registration.ParseTimestamp(rec.Timestamp)
		}
		if when.IsZero() {
			continue
		}

		timed = append(timed, Timed{When: when, Name: rec.FullName, Affiliation: rec.Affiliation})
		t.Hours[when.Hour()]++
		perDay[when.Format(time.DateOnly)]++

		if wd := when.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.WeekendCount++
		}
		if h := when.Hour(); h >= 22 || h < 6 {
			t.NightOwls = append(t.NightOwls, Timed{When: when, Name: rec.FullName})
		}
	}

	sort.SliceStable(timed, func(i, j int) bool { return timed[i].When.Before(timed[j].When) })
	t.EarlyBirds = timed[:min(5, len(timed))]
	for i := len(timed) - 1; i >= 0 && len(t.LastMinute) < 5; i-- {
		t.LastMinute = append(t.LastMinute, timed[i])
	}

	days := make([]string, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Strings(days)
	for _, d := range days {
		t.PerDay = append(t.PerDay, DayCount{Date: d, Count: perDay[d]})
	}

	return t
}

func findComments(records []*registration.Record) Comments {
	var c Comments
	for _, rec := range records {
		text := rec.Comments
		if text == "" {
			continue
		}
		c.Count++
		c.Lengths = append(c.Lengths, utf8.RuneCountInString(text))

		entry := Comment{Name: rec.FullName, Text: text}
		lower := strings.ToLower(text)
		switch {
		case containsAny(lower, appreciationWords):
			c.Appreciation = append(c.Appreciation, entry)
		case containsAny(lower, requestWords):
			c.Requests = append(c.Requests, entry)
		case utf8.RuneCountInString(text) > longCommentRunes:
			c.Long = append(c.Long, entry)
		}
	}
	return c
}

func findAffiliations(records []*registration.Record) Affiliations {
	var a Affiliations

	counts := make(map[string]int)
	first := make(map[string]*registration.Record)
	var order []string
	for _, rec := range records {
		aff := rec.Affiliation
		if aff == "" {
			continue
		}
		a.Lengths = append(a.Lengths, utf8.RuneCountInString(aff))
		if utf8.RuneCountInString(aff) < 3 {
			a.Short = append(a.Short, Person{
				Name:        rec.FullName,
				Affiliation: aff,
				Attending:   rec.Attending,
			})
		}
		if counts[aff] == 0 {
			order = append(order, aff)
			first[aff] = rec
		}
		counts[aff]++
	}

	for _, aff := range order {
		if counts[aff] != 1 {
			continue
		}
		if utf8.RuneCountInString(aff) <= 3 || containsAny(strings.ToLower(aff), genericAffiliationWords) {
			continue
		}
		rec := first[aff]
		if rec.Attending != registration.AnswerYes {
			continue
		}
		a.Unique = append(a.Unique, Person{Name: rec.FullName, Affiliation: aff})
	}

	return a
}

func findPatterns(records []*registration.Record) Patterns {
	var p Patterns
	for _, rec := range records {
		switch rec.Attending {
		case registration.AnswerYes:
			p.Decisions.AttendingYes++
		case registration.AnswerMaybe:
			p.Decisions.AttendingMaybe++
		case registration.AnswerNo:
			p.Decisions.AttendingNo++
		}
		if rec.Driving == registration.AnswerMaybe {
			p.Decisions.DrivingMaybe++
		}

		if rec.Attending == registration.AnswerMaybe && rec.Driving == registration.AnswerMaybe {
			p.Indecisive = append(p.Indecisive, Person{Name: rec.FullName, Affiliation: rec.Affiliation})
		}
		if rec.Role == "" && rec.Attending == registration.AnswerYes {
			p.NoRoleAttending = append(p.NoRoleAttending, Person{Name: rec.FullName, Affiliation: rec.Affiliation})
		}
		if rec.SubmittedPaper == registration.AnswerYes && rec.Attending == registration.AnswerNo {
			p.PaperNotAttending = append(p.PaperNotAttending, Person{Name: rec.FullName, Affiliation: rec.Affiliation})
		}
	}
	return p
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
