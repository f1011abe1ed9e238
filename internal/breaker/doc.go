// Package breaker guards calls to the remote word and speech services with a
// circuit breaker. After repeated failures the breaker opens and further calls
// fail fast with ErrOpen until the cool-down has passed. Nothing is retried.
package breaker
