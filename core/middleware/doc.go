// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting the API.
//   - rayid: assigns every request a RayID (a UUID), stores it in the Fiber
//     locals for logger.WithRayID and echoes it in the X-Ray-ID header.
package middleware
