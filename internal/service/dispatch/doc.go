// Package dispatch fans a composed alert out to every contact.
//
// Each contact is sent to independently: sends run concurrently up to a
// fan-out limit, each under its own timeout, and a failing or slow recipient
// only produces a failed outcome for that recipient. Dispatch always returns
// exactly one outcome per contact, in contact order.
package dispatch
