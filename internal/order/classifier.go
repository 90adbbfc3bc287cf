package order

// Classifier decides which total a parsed line belongs to.
type Classifier interface {
	Classify(line Line) Category
}

// NameSet is the attendee lookup the set classifier needs.
// Satisfied by attendee.Set.
type NameSet interface {
	Contains(name string) bool
}

type setClassifier struct {
	attendees NameSet
}

// ClassifyBySet classifies a line by whether its orderer appears in the
// attendee set. A nil set classifies everyone as non-attendee.
func ClassifyBySet(attendees NameSet) Classifier {
	return setClassifier{attendees: attendees}
}

func (c setClassifier) Classify(line Line) Category {
	if c.attendees != nil && c.attendees.Contains(line.Name) {
		return CategoryAttendee
	}
	return CategoryNonAttendee
}

type fixedClassifier struct {
	category Category
}

// ClassifyFixed classifies every line into one category, used when the
// section a line came from already fixes its attendance.
func ClassifyFixed(category Category) Classifier {
	return fixedClassifier{category: category}
}

func (c fixedClassifier) Classify(Line) Category {
	return c.category
}
