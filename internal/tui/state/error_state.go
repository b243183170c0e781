package state

// ErrorState holds a page-local error message. An empty message means no
// error.
type ErrorState struct {
	message string
}

// NewErrorState creates a new ErrorState with no error.
func NewErrorState() *ErrorState {
	return &ErrorState{}
}

// Set sets the error message to be displayed.
func (s *ErrorState) Set(msg string) {
	s.message = msg
}

// Clear removes any current error message.
func (s *ErrorState) Clear() {
	s.message = ""
}

// HasError returns true if there is currently an error message set.
func (s *ErrorState) HasError() bool {
	return s.message != ""
}

// Get returns the current error message.
func (s *ErrorState) Get() string {
	return s.message
}
