package outliers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iscol-meeting/iscol2025/registration"
)

const bannerWidth = 80

func banner(sb *strings.Builder, title string) {
	rule := strings.Repeat("=", bannerWidth)
	sb.WriteString(rule + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(rule + "\n")
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func attendanceMark(attending string) string {
	switch attending {
	case registration.AnswerYes:
		return "✅"
	case registration.AnswerMaybe:
		return "❓"
	default:
		return "❌"
	}
}

// Render formats the report as sectioned terminal text.
func Render(r *Report) string {
	var sb strings.Builder

	banner(&sb, "🔍 ISCOL 2025 REGISTRATION OUTLIERS & INTERESTING FINDINGS 🔍")
	sb.WriteString("\n")

	banner(&sb, "📧 EMAIL ANOMALIES")
	if len(r.Emails.Invalid) > 0 {
		fmt.Fprintf(&sb, "\n🚨 Found %d INVALID email(s):\n", len(r.Emails.Invalid))
		for _, p := range r.Emails.Invalid {
			fmt.Fprintf(&sb, "  • %s: %s\n", p.Name, p.Email)
			fmt.Fprintf(&sb, "    Affiliation: %s\n", p.Affiliation)
		}
	}
	if len(r.Emails.Unusual) > 0 {
		fmt.Fprintf(&sb, "\n⚠️ %d address(es) with unusual patterns:\n", len(r.Emails.Unusual))
		for _, email := range r.Emails.Unusual {
			fmt.Fprintf(&sb, "  • %s\n", email)
		}
	}
	sb.WriteString("\n📱 PHONE NUMBERS in Affiliation Field:\n")
	for _, p := range r.Emails.PhoneNumbers {
		fmt.Fprintf(&sb, "  • %s: %s\n", p.Name, p.Affiliation)
	}

	sb.WriteString("\n")
	banner(&sb, "👥 DUPLICATE REGISTRATIONS (Same Person, Multiple Times)")
	if len(r.People.Duplicates) > 0 {
		fmt.Fprintf(&sb, "\nFound %d people who registered multiple times:\n", len(r.People.Duplicates))
		for _, d := range head(r.People.Duplicates, 10) {
			fmt.Fprintf(&sb, "\n  📬 %s (%d registrations):\n", d.Email, d.Count)
			for _, e := range d.Entries {
				fmt.Fprintf(&sb, "     • %s - %s\n", e.Timestamp, e.Name)
				fmt.Fprintf(&sb, "       Attending: %s\n", e.Attending)
			}
		}
	}

	sb.WriteString("\n")
	banner(&sb, "🔤 POTENTIAL NAME VARIATIONS")
	if len(r.People.NameVariations) > 0 {
		fmt.Fprintf(&sb, "\nFound %d potential duplicate names:\n", len(r.People.NameVariations))
		for _, v := range head(r.People.NameVariations, 5) {
			sb.WriteString("\n  • Variations:\n")
			for _, p := range v.Entries {
				fmt.Fprintf(&sb, "    - %s (%s)\n", p.Name, p.Email)
			}
		}
	}

	sb.WriteString("\n")
	banner(&sb, "🌍 INTERNATIONAL & REMOTE ATTENDEES")
	if len(r.People.International) > 0 {
		fmt.Fprintf(&sb, "\n🛫 %d International attendees detected:\n", len(r.People.International))
		for _, p := range r.People.International {
			fmt.Fprintf(&sb, "  %s %s\n", attendanceMark(p.Attending), p.Name)
			fmt.Fprintf(&sb, "      From: %s\n", p.Affiliation)
		}
	}

	sb.WriteString("\n")
	banner(&sb, "🎭 UNIQUE & INTERESTING ROLES")
	fmt.Fprintf(&sb, "\n🌟 %d One-of-a-kind roles:\n", r.Roles.UniqueCount)
	for _, item := range head(r.Roles.Rare, 15) {
		fmt.Fprintf(&sb, "  • '%s'\n", item.Role)
		fmt.Fprintf(&sb, "    → %s from %s\n", item.Name, item.Affiliation)
	}

	sb.WriteString("\n")
	banner(&sb, "⏰ REGISTRATION TIMING OUTLIERS")
	if len(r.Timing.EarlyBirds) > 0 {
		sb.WriteString("\n🐦 FIRST 5 EARLY BIRDS:\n")
		for _, t := range r.Timing.EarlyBirds {
			fmt.Fprintf(&sb, "  %s - %s\n", t.When.Format("2006-01-02 15:04"), t.Name)
			fmt.Fprintf(&sb, "    %s\n", t.Affiliation)
		}

		sb.WriteString("\n⏰ LAST 5 LAST-MINUTE REGISTRATIONS:\n")
		for _, t := range r.Timing.LastMinute {
			fmt.Fprintf(&sb, "  %s - %s\n", t.When.Format("2006-01-02 15:04"), t.Name)
			fmt.Fprintf(&sb, "    %s\n", t.Affiliation)
		}

		fmt.Fprintf(&sb, "\n📅 Weekend Warriors: %d registrations on weekends\n", r.Timing.WeekendCount)

		if len(r.Timing.NightOwls) > 0 {
			fmt.Fprintf(&sb, "\n🦉 Night Owls: %d registrations between 10 PM - 6 AM\n", len(r.Timing.NightOwls))
			sb.WriteString("    Most dedicated:\n")
			owls := make([]Timed, len(r.Timing.NightOwls))
			copy(owls, r.Timing.NightOwls)
			sort.SliceStable(owls, func(i, j int) bool { return owls[i].When.Hour() < owls[j].When.Hour() })
			for _, t := range head(owls, 3) {
				fmt.Fprintf(&sb, "    • %s at %s\n", t.Name, t.When.Format("03:04 PM"))
			}
		}
	}

	sb.WriteString("\n")
	banner(&sb, "💬 INTERESTING COMMENTS & REQUESTS")
	fmt.Fprintf(&sb, "\n📝 %d people left comments. Here are some interesting ones:\n", r.Comments.Count)
	if len(r.Comments.Appreciation) > 0 {
		sb.WriteString("\n💖 APPRECIATION & ENTHUSIASM:\n")
		for _, c := range head(r.Comments.Appreciation, 5) {
			fmt.Fprintf(&sb, "  • %s: \"%s\"\n", c.Name, c.Text)
		}
	}
	if len(r.Comments.Requests) > 0 {
		sb.WriteString("\n📋 SPECIAL REQUESTS:\n")
		for _, c := range head(r.Comments.Requests, 5) {
			fmt.Fprintf(&sb, "  • %s: \"%s\"\n", c.Name, c.Text)
		}
	}
	if len(r.Comments.Long) > 0 {
		sb.WriteString("\n📜 LONGER STORIES:\n")
		for _, c := range head(r.Comments.Long, 5) {
			fmt.Fprintf(&sb, "  • %s: \"%s\"\n", c.Name, c.Text)
		}
	}

	sb.WriteString("\n")
	banner(&sb, "🏢 UNUSUAL AFFILIATIONS")
	if len(r.Affiliations.Short) > 0 {
		fmt.Fprintf(&sb, "\n🤔 Suspiciously short affiliations (%d):\n", len(r.Affiliations.Short))
		for _, p := range head(r.Affiliations.Short, 10) {
			fmt.Fprintf(&sb, "  • %s: '%s' (attending: %s)\n", p.Name, p.Affiliation, p.Attending)
		}
	}
	if len(r.Affiliations.Unique) > 0 {
		sb.WriteString("\n🦄 Unique/Interesting companies (attending):\n")
		for _, p := range head(r.Affiliations.Unique, 10) {
			fmt.Fprintf(&sb, "  • %s from '%s'\n", p.Name, p.Affiliation)
		}
	}

	sb.WriteString("\n")
	banner(&sb, "📊 STATISTICAL PATTERNS & ODDITIES")
	if len(r.Patterns.Indecisive) > 0 {
		fmt.Fprintf(&sb, "\n🤷 The Indecisive Club - %d people who selected 'Maybe' for multiple questions:\n", len(r.Patterns.Indecisive))
		for _, p := range head(r.Patterns.Indecisive, 5) {
			fmt.Fprintf(&sb, "  • %s (%s)\n", p.Name, p.Affiliation)
		}
	}
	if len(r.Patterns.NoRoleAttending) > 0 {
		fmt.Fprintf(&sb, "\n🎭 Mystery Guests - %d attendees without specified role:\n", len(r.Patterns.NoRoleAttending))
		for _, p := range r.Patterns.NoRoleAttending {
			fmt.Fprintf(&sb, "  • %s from %s\n", p.Name, p.Affiliation)
		}
	}
	if len(r.Patterns.PaperNotAttending) > 0 {
		fmt.Fprintf(&sb, "\n📄 Paper Submitters Not Attending - %d submitted papers but won't attend:\n", len(r.Patterns.PaperNotAttending))
		for _, p := range r.Patterns.PaperNotAttending {
			fmt.Fprintf(&sb, "  • %s (%s)\n", p.Name, p.Affiliation)
		}
	}

	sb.WriteString("\n")
	banner(&sb, "🎯 OUTLIER SUMMARY")
	fmt.Fprintf(&sb, "• Invalid emails: %d\n", len(r.Emails.Invalid))
	fmt.Fprintf(&sb, "• Duplicate registrations: %d\n", len(r.People.Duplicates))
	fmt.Fprintf(&sb, "• International attendees: %d\n", len(r.People.International))
	fmt.Fprintf(&sb, "• Unique roles: %d\n", r.Roles.UniqueCount)
	fmt.Fprintf(&sb, "• Weekend registrations: %d\n", r.Timing.WeekendCount)
	fmt.Fprintf(&sb, "• Night owl registrations: %d\n", len(r.Timing.NightOwls))
	fmt.Fprintf(&sb, "• People with comments: %d\n", r.Comments.Count)
	fmt.Fprintf(&sb, "• Mystery guests (no role): %d\n", len(r.Patterns.NoRoleAttending))
	sb.WriteString(strings.Repeat("=", bannerWidth) + "\n")

	return sb.String()
}
