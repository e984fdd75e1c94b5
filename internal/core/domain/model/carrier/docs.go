// Package carrier holds the carrier domain model: static Profile
// configuration collected in a Registry, and the PerformanceRecord history
// that the routing engine folds into reliability scoring.
package carrier
