package order

import "regexp"

// A divider is a run of three or more dashes or em-dashes.
var dividerRe = regexp.MustCompile(`[-—]{3,}`)

// HasDivider reports whether the transcript carries an explicit
// attendee / non-attendee divider.
func HasDivider(text string) bool {
	return dividerRe.MatchString(text)
}

// SplitSections divides a transcript on the divider pattern. With no
// divider the whole transcript is one attendee-category section. With
// one or more dividers the first segment is the attendee section, the
// second the non-attendee section; further segments are dropped.
func SplitSections(text string) []Section {
	parts := dividerRe.Split(text, -1)
	if len(parts) == 1 {
		return []Section{{Text: parts[0], Category: CategoryAttendee}}
	}

	return []Section{
		{Text: parts[0], Category: CategoryAttendee},
		{Text: parts[1], Category: CategoryNonAttendee},
	}
}
