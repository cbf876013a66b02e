// Package queries holds the read side: admin projections of users, recipients and
// deliveries, a courier's own deliveries, the nearby-delivery search and the caller
// resolution used by authentication. Handlers read with raw SQL through *gorm.DB and
// never return password hashes.
package queries
