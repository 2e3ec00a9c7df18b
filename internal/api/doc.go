// Package api provides a read-only HTTP API over the generated provider
// lists. It serves the provider registry as JSON and the canonical list and
// chunk files as plain text, for consumers that prefer pulling over HTTP
// instead of reading the output directory.
package api
