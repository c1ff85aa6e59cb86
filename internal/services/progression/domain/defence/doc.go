// Package defence tracks which defence organisation represents a defendant.
//
// A defendant is represented by at most one organisation. Associating a new
// organisation first records the disassociation of the previous one.
package defence
