// Package status implements the status change flow of the panic button.
//
// One ChangeStatus call authenticates the caller, records the status, resolves
// the contacts, composes the alert and dispatches it. Store failures end the
// call; delivery failures never do, they are reported per contact in the
// result. A status written before a failed contact lookup is kept.
package status
