package tui

// Route identifies a page.
type Route int

const (
	RouteLogin Route = iota
	RouteRegister
	RouteDashboard
	RouteProject
	RouteEditProject
)

func (r Route) String() string {
	switch r {
	case RouteLogin:
		return "login"
	case RouteRegister:
		return "register"
	case RouteDashboard:
		return "dashboard"
	case RouteProject:
		return "project"
	case RouteEditProject:
		return "edit-project"
	default:
		return "unknown"
	}
}

// Protected reports whether the route needs a session.
func (r Route) Protected() bool {
	return r != RouteLogin && r != RouteRegister
}

// Location is a route plus the project it is about, when it has one.
type Location struct {
	Route     Route
	ProjectID string
}

// guard resolves where a navigation actually lands. It is evaluated on every
// navigation so a session dropped by a 401 takes effect immediately.
func guard(to Location, authenticated bool) Location {
	if to.Route.Protected() && !authenticated {
		return Location{Route: RouteLogin}
	}
	if (to.Route == RouteProject || to.Route == RouteEditProject) && to.ProjectID == "" {
		return Location{Route: RouteDashboard}
	}
	return to
}
