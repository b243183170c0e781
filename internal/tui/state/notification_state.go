package state

import (
	"time"

	"charm.land/lipgloss/v2"
)

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// NotificationTTL is how long a notification stays on screen.
const NotificationTTL = 4 * time.Second

// Notification represents a single notification message with a severity level.
type Notification struct {
	ID      int
	Level   NotificationLevel
	Message string
}

// NotificationState holds the transient notifications shown over every
// page. Each notification is dismissed by id once its timer fires.
type NotificationState struct {
	notifications []Notification
	nextID        int
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add appends a notification and returns its id for Dismiss.
func (s *NotificationState) Add(level NotificationLevel, message string) int {
	s.nextID++
	s.notifications = append(s.notifications, Notification{
		ID:      s.nextID,
		Level:   level,
		Message: message,
	})
	return s.nextID
}

// Dismiss removes the notification with id. Unknown ids are ignored.
func (s *NotificationState) Dismiss(id int) {
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i:i], s.notifications[i+1:]...)
			return
		}
	}
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications, stacked
// from the top-right corner. Notifications that would run off the bottom of
// the screen are not drawn.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	var layers []*lipgloss.Layer
	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, notification := range s.notifications {
		view := renderFunc(notification)
		height := lipgloss.Height(view)
		if row+height >= s.windowHeight {
			break
		}

		col := max(s.windowWidth-lipgloss.Width(view)-1, 0)
		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row))
		row += height + 1
	}

	return layers
}
