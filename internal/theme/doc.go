// Package theme maps the current navigation path to one of the product's
// visual themes and publishes the active palette to the rendering layer.
//
// The mapping is a pure function of the request path. Provider is the only
// writer: it resolves the theme once per request and stores it in the request
// context, where layouts and components read it with FromContext or
// MustFromContext.
//
// Example:
//
//	e.Use(theme.Provider())
//	...
//	active := theme.MustFromContext(c.Request().Context())
//	fmt.Println(active.Theme, active.Config.Palette.Primary)
package theme
