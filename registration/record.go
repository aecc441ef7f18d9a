// Package registration reads, cleans, and validates conference registration
// exports from Google Forms.
package registration

import (
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/iscol-meeting/iscol2025/affiliation"
)

// Answers the registration form produces for its yes/no questions.
const (
	AnswerYes   = "Yes"
	AnswerNo    = "No"
	AnswerMaybe = "Maybe, not sure yet"
)

// Record is one registrant row from a registration export.
//
// The typed fields hold cell values as read from the file. Clean fills the
// computed fields and replaces blank answers with placeholders.
type Record struct {
	// SourceRow is the 1-based row number in the source file, header included.
	SourceRow int `json:"source_row"`

	Timestamp      string `json:"timestamp"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Affiliation    string `json:"affiliation"`
	Attending      string `json:"attending"`
	Role           string `json:"role"`
	SubmittedPaper string `json:"submitted_paper"`
	Driving        string `json:"driving"`
	Comments       string `json:"comments"`

	// NormalizedAffiliations holds the canonical affiliation names for this
	// registrant. Empty until Clean runs.
	NormalizedAffiliations []string `json:"normalized_affiliations,omitempty"`

	// RegisteredAt is the parsed Timestamp, zero when the timestamp could
	// not be parsed.
	RegisteredAt time.Time `json:"registered_at,omitzero"`

	// Extra holds columns that do not map to a typed field.
	Extra *structpb.Struct `json:"extra,omitempty"`
}

// IsAttending reports whether the registrant answered "Yes" to attending.
func (r *Record) IsAttending() bool {
	return r.Attending == AnswerYes
}

// HasAffiliation reports whether normalization produced at least one real
// affiliation besides the "Not specified" placeholder.
func (r *Record) HasAffiliation() bool {
	for _, a := range r.NormalizedAffiliations {
		if a != affiliation.NotSpecified {
			return true
		}
	}
	return false
}

// SetExtra sets an extra field value on the record.
func (r *Record) SetExtra(key string, value any) {
	if r.Extra == nil {
		r.Extra = &structpb.Struct{
			Fields: make(map[string]*structpb.Value),
		}
	}
	v, err := structpb.NewValue(value)
	if err == nil {
		r.Extra.Fields[key] = v
	}
}

// GetExtra retrieves an extra field value.
func (r *Record) GetExtra(key string) (any, bool) {
	if r.Extra == nil || r.Extra.Fields == nil {
		return nil, false
	}
	v, ok := r.Extra.Fields[key]
	if !ok {
		return nil, false
	}
	return v.AsInterface(), true
}

// GetExtraString retrieves an extra field as a string.
func (r *Record) GetExtraString(key string) string {
	v, ok := r.GetExtra(key)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// GetExtraFields returns all extra fields as a map.
func (r *Record) GetExtraFields() map[string]any {
	if r.Extra == nil || r.Extra.Fields == nil {
		return nil
	}
	result := make(map[string]any, len(r.Extra.Fields))
	for k, v := range r.Extra.Fields {
		result[k] = v.AsInterface()
	}
	return result
}
