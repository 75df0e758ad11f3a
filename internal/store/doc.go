// Package store defines the persistence interfaces for categories and
// products, the error vocabulary every implementation returns, and the
// transaction helper shared by callers that need check-then-act sequences.
package store
