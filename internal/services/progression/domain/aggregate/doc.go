// Package aggregate defines the contract every case progression aggregate
// implements: one fold entry point plus command methods that emit facts.
//
// Command methods never assign state directly. They record events through a
// Recorder, which folds each event into the aggregate before the next step runs,
// so a multi-event command observes its own earlier output exactly as a later
// replay would.
package aggregate
