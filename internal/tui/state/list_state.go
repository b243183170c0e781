package state

// ListState is a client-side cache of server records with a cursor. Records
// are matched by the id function; there is no reconciliation beyond
// replacing, inserting or removing single entries, or a full Set.
type ListState[T any] struct {
	items    []T
	selected int
	idOf     func(T) string
}

// NewListState creates an empty list keyed by idOf.
func NewListState[T any](idOf func(T) string) *ListState[T] {
	return &ListState[T]{idOf: idOf}
}

// Items returns the cached records in display order.
func (s *ListState[T]) Items() []T {
	return s.items
}

func (s *ListState[T]) Len() int {
	return len(s.items)
}

// Set replaces every record, keeping the cursor in range.
func (s *ListState[T]) Set(items []T) {
	s.items = items
	s.clamp()
}

// Prepend inserts item at the front and selects it.
func (s *ListState[T]) Prepend(item T) {
	s.items = append([]T{item}, s.items...)
	s.selected = 0
}

// Append adds item at the end and selects it.
func (s *ListState[T]) Append(item T) {
	s.items = append(s.items, item)
	s.selected = len(s.items) - 1
}

// Replace swaps the record with item's id for item. Other records are not
// touched. It reports whether a record was found.
func (s *ListState[T]) Replace(item T) bool {
	id := s.idOf(item)
	for i, existing := range s.items {
		if s.idOf(existing) == id {
			s.items[i] = item
			return true
		}
	}
	return false
}

// Remove drops the record with id, preserving the order of the rest.
func (s *ListState[T]) Remove(id string) bool {
	for i, existing := range s.items {
		if s.idOf(existing) == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			s.clamp()
			return true
		}
	}
	return false
}

// Find returns the record with id.
func (s *ListState[T]) Find(id string) (T, bool) {
	for _, existing := range s.items {
		if s.idOf(existing) == id {
			return existing, true
		}
	}
	var zero T
	return zero, false
}

// Selected returns the record under the cursor.
func (s *ListState[T]) Selected() (T, bool) {
	if s.selected < 0 || s.selected >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[s.selected], true
}

// SelectedIndex returns the cursor position.
func (s *ListState[T]) SelectedIndex() int {
	return s.selected
}

// MoveUp moves the selection up one row if possible.
func (s *ListState[T]) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// MoveDown moves the selection down one row if possible.
func (s *ListState[T]) MoveDown() {
	if s.selected < len(s.items)-1 {
		s.selected++
	}
}

// ResetSelection moves the cursor to the first row.
func (s *ListState[T]) ResetSelection() {
	s.selected = 0
}

func (s *ListState[T]) clamp() {
	if s.selected >= len(s.items) {
		s.selected = len(s.items) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}
