// Package api handles incoming HTTP requests, routing, path parameter parsing,
// and response formatting. Each resource is served by a handler group that
// registers its own routes on a chi.Router, so the application can mount the
// groups side by side under distinct prefixes.
package api
