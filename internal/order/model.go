package order

// Category says which running total a line's price belongs to.
type Category string

const (
	CategoryAttendee    Category = "ATTENDEE"
	CategoryNonAttendee Category = "NON_ATTENDEE"
)

// Line is one parsed order line from a transcript.
// Immutable once produced by the tokenizer.
type Line struct {
	Name  string `json:"name"`
	Item  string `json:"item"`
	Price int    `json:"price"`
}

// Section is a transcript segment with a fixed attendance category.
type Section struct {
	Text     string
	Category Category
}
