// Package access models who is calling a use case: the caller's user id and the
// role they hold right now. Use cases receive a Caller already resolved from the
// session token and only perform role and ownership checks against it.
package access
