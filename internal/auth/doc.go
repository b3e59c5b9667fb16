// Package auth provides authentication for the HTTP API.
//
// It fills the "authentication provider" role the lifecycle core treats as a
// collaborator: resolving request credentials (session cookie or Bearer API
// token) to a stable account id. Authentication deliberately keeps working
// for soft-deleted accounts — otherwise a user could never reach the
// recovery endpoint.
//
// # Components
//
//   - Service: credential validation and account/token management
//   - SessionManager: scs-backed cookie sessions stored in SQLite
//   - Middleware: resolves the caller and stores it in the Gin context
//   - CSRFMiddleware: gorilla/csrf protection, skipped for Bearer requests
package auth
