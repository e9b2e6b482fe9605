// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: reuses or generates a request id, stores it in the context
//     locals and echoes it in the response headers for tracing.
//   - Auth: checks the X-API-Key header against the configured key.
//
// The serve command registers RayID first, then request logging, then Auth,
// so rejected requests are still logged with their ray id.
package middleware
