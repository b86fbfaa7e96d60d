package context

import (
	"pixorva/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	// KeySessionID is the key for storing the browser session id in echo.Context.
	KeySessionID ContextKey = "session_id"

	// KeySessionController is the key for storing the session controller in echo.Context.
	KeySessionController ContextKey = "session_controller"

	// KeySessionView is the key for storing the view a guard rendered against.
	KeySessionView ContextKey = "session_view"
)

// SetSession stores the browser session id and its controller.
func SetSession(c echo.Context, sessionID string, controller *session.Controller) {
	c.Set(string(KeySessionID), sessionID)
	c.Set(string(KeySessionController), controller)
}

// GetSessionID returns the browser session id, or empty string when no session is attached.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(string(KeySessionID)).(string); ok {
		return id
	}

	return ""
}

// GetController returns the session controller attached by the session middleware.
func GetController(c echo.Context) (*session.Controller, bool) {
	controller, ok := c.Get(string(KeySessionController)).(*session.Controller)

	return controller, ok && controller != nil
}

// SetView stores the view the guard decided on.
func SetView(c echo.Context, view session.View) {
	c.Set(string(KeySessionView), view)
}

// GetView returns the guarded view when present, otherwise the controller's current view.
func GetView(c echo.Context) session.View {
	if view, ok := c.Get(string(KeySessionView)).(session.View); ok {
		return view
	}
	if controller, ok := GetController(c); ok {
		return controller.View()
	}

	return session.View{}
}
