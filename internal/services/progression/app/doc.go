// Package app wires the progression runtime and runs command batches.
//
// A batch is newline-delimited JSON, one command envelope per line. Commands
// for the same aggregate id run in input order; different aggregates run
// concurrently. One JSON outcome line is written per input line, in input order.
package app
