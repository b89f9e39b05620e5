// Package middleware groups the Fiber middlewares used by the serve command.
//
//   - rayid: assigns a request ID (RayID) stored in locals and echoed in a header.
//   - auth: rejects requests that do not carry the configured API key.
package middleware
