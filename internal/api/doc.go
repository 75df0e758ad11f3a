// Package api handles incoming HTTP requests for categories and products.
// Handlers check the shape of request bodies and path parameters, delegate
// to the services and translate their errors into status codes and the
// {"error": ...} envelope.
package api
