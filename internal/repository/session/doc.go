// Package session resolves session tokens issued by the login flow into
// authenticated identities. Sessions live in Redis as hashes keyed by
// "<prefix><token>" with the fields user_id and email.
package session
