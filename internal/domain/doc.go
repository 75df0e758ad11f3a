// Package domain contains the catalog entities, categories and products,
// together with their field validation and the client-facing validation
// messages. It has no knowledge of HTTP or storage.
package domain
