package order

// Service runs complete tallies over raw transcripts.
// PURE business logic (no transport, no session state).
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// TallySections tallies a transcript using its divider structure. A
// divider-less transcript renders as a single combined total; a divided
// one renders attendee and non-attendee totals separately.
func (s *Service) TallySections(text string) *Ledger {
	sections := SplitSections(text)
	ledger := NewLedger(len(sections) > 1)

	for _, section := range sections {
		classifier := ClassifyFixed(section.Category)
		for line := range Tokenize(section.Text) {
			ledger.Record(line, NormalizeItem(line.Item), classifier.Classify(line))
		}
	}

	return ledger
}

// TallyWithSet tallies a transcript classifying each orderer by
// membership in the attendee set. Always renders split totals; an
// empty or nil set puts every line under the non-attendee total.
func (s *Service) TallyWithSet(text string, attendees NameSet) *Ledger {
	ledger := NewLedger(true)
	classifier := ClassifyBySet(attendees)

	for line := range Tokenize(text) {
		ledger.Record(line, NormalizeItem(line.Item), classifier.Classify(line))
	}

	return ledger
}
