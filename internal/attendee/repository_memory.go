package attendee

import "context"

// DefaultRoster is the built-in candidate list, used when no database
// is configured.
var DefaultRoster = []string{
	"劉研", "趙副研", "阿錞", "智函", "詠彤", "子玄",
	"冠儒", "卓君", "悅婷", "欣儒", "芸樺", "育瑄",
}

type InMemoryRosterRepository struct {
	names []string
}

func NewInMemoryRosterRepository(names []string) *InMemoryRosterRepository {
	if names == nil {
		names = DefaultRoster
	}
	return &InMemoryRosterRepository{names: names}
}

func (r *InMemoryRosterRepository) Candidates(context.Context) ([]string, error) {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out, nil
}
