// Package loader provides the feature loading system used by the HTTP API.
//
// Each feature implements the Feature interface, which reports whether it is
// enabled and registers its routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry and loads enabled features in registration
// order. The store feature is always on; the journal feature only when a
// database connection is available.
package loader
