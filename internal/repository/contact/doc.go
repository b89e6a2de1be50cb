// Package contact stores the emergency contacts of each user.
package contact
