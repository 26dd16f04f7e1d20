// Package ports defines the interfaces between the weather core and its adapters.
// Adapters implement them; the mocks in internal/mocks are generated from them.
//
//go:generate mockery
package ports
