// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the printshop system. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - UsageRecorder: charges a finished order's filament consumption against
//     the inventory materials it used
package services
