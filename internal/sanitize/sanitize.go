// Package sanitize redacts identifier-, date-, and drug-name-shaped tokens
// from free text before it reaches storage. It is the privacy gate for every
// user-entered narrative field; structured checklist/ISF data does not pass
// through it.
package sanitize

import (
	"fmt"
	"regexp"
)

// Placeholder tokens substituted for redacted spans. None of them contain
// digits or slashes, so sanitizing already-clean output never fires again.
const (
	ParticipantPlaceholder = "[PARTICIPANT_ID]"
	DatePlaceholder        = "[DATE_REMOVED]"
	DrugPlaceholder        = "[STUDY_DRUG]"
)

// participantPattern matches subject/site code shapes: 2-3 letters plus 2-4
// digits with an optional separator (JS-123, AB 1234), or the 3+2 digit form
// (001-02).
var participantPattern = regexp.MustCompile(`\b[A-Za-z]{2,3}[-\s]?\d{2,4}\b|\b\d{3}[-\s]?\d{2}\b`)

// datePattern matches D/D/D date tokens (01/05/1980, 1/5/80). It cannot tell
// a date of birth from any other date in that format; every match is
// redacted. Known limitation, kept deliberately.
var datePattern = regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`)

// DefaultTerms is the built-in proprietary term list used when no terms are
// configured.
var DefaultTerms = []string{"MK-3475", "Keytruda", "Protocol-X"}

// Sanitizer applies the redaction rules with a configured proprietary term
// list. It is immutable after construction and safe for concurrent use.
type Sanitizer struct {
	terms []*regexp.Regexp
}

// New builds a Sanitizer for the given proprietary terms. Terms match as
// whole words, case-insensitively.
func New(terms []string) *Sanitizer {
	s := &Sanitizer{terms: make([]*regexp.Regexp, 0, len(terms))}
	for _, term := range terms {
		if term == "" {
			continue
		}
		s.terms = append(s.terms, regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, regexp.QuoteMeta(term))))
	}
	return s
}

// Sanitize replaces every matching span with its placeholder and reports
// whether any rule fired. Deterministic, side-effect free, and a no-op for
// empty or already-clean input.
//
// Rules run most-specific first: configured terms, then date tokens, then
// participant-id shapes. A drug code like MK-3475 also fits the participant
// pattern, and the leading digits of a date can pair with a preceding word;
// running the narrower rules first keeps each token class under its own
// placeholder.
func (s *Sanitizer) Sanitize(text string) (string, bool) {
	if text == "" {
		return text, false
	}

	clean := text
	triggered := false

	for _, re := range s.terms {
		if re.MatchString(clean) {
			clean = re.ReplaceAllString(clean, DrugPlaceholder)
			triggered = true
		}
	}
	if datePattern.MatchString(clean) {
		clean = datePattern.ReplaceAllString(clean, DatePlaceholder)
		triggered = true
	}
	if participantPattern.MatchString(clean) {
		clean = participantPattern.ReplaceAllString(clean, ParticipantPlaceholder)
		triggered = true
	}

	return clean, triggered
}
