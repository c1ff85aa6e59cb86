// Package groupcase tracks the membership of a civil case group and which
// member currently represents the group as its master case.
//
// The last member of a group can never be removed; the attempt is recorded as a
// rejection fact. When the master itself is removed the earliest-joined
// remaining member is nominated in its place.
package groupcase
