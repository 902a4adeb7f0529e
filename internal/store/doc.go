// Package store defines interfaces for read access to the catalog datasets.
// These interfaces keep the HTTP layer independent of where the records
// live, so handlers can be exercised against any implementation.
package store
