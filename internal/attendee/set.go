package attendee

// Set is an ordered, duplicate-free collection of attendee names.
// Not safe for concurrent use; Store owns the locking.
type Set struct {
	names []string
	index map[string]bool
}

func NewSet(names ...string) *Set {
	s := &Set{index: make(map[string]bool)}
	for _, name := range names {
		s.Add(name)
	}
	return s
}

// Add appends a name, reporting whether it was new.
func (s *Set) Add(name string) bool {
	if name == "" || s.index[name] {
		return false
	}
	s.index[name] = true
	s.names = append(s.names, name)
	return true
}

// Remove deletes a name, reporting whether it was present.
func (s *Set) Remove(name string) bool {
	if !s.index[name] {
		return false
	}
	delete(s.index, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
	return true
}

func (s *Set) Clear() {
	s.names = nil
	s.index = make(map[string]bool)
}

func (s *Set) Contains(name string) bool {
	return s.index[name]
}

func (s *Set) Len() int {
	return len(s.names)
}

// List returns the names in insertion order.
func (s *Set) List() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// clone gives snapshot isolation to readers outside the store lock.
func (s *Set) clone() *Set {
	return NewSet(s.names...)
}
