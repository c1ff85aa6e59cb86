// Package notification tracks an outbound notification from request to its
// terminal sent or failed outcome.
package notification
