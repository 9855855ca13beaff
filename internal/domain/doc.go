// Package domain contains the service's core entities and error types.
// Invoice is the managed resource; APIKey is the possession credential that
// gates mutating access to it. This package holds sentinel errors and the
// ValidationError type shared by all layers.
package domain
