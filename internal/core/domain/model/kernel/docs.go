// Package kernel holds the value objects shared by every aggregate of the delivery
// tracking domain: identifiers, the cpf natural key and geographic positions, plus
// the great-circle distance used by the nearby-delivery search.
//
// All value objects are immutable and reject their zero value in Validate.
package kernel
