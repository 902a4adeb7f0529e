// Package shared holds the response writers and request-context helpers
// used by both the api handlers and the api middleware.
package shared
