// Package services holds domain logic that does not belong to a single aggregate.
//
// The package includes:
//   - ProximityRanker: filters candidate deliveries to those within a radius of a
//     point and orders them by great-circle distance
package services
