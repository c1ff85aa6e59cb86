// Package command defines the canonical command envelope and contract used across
// the write path.
//
// Commands express business intent from the request-translation layer. They are
// the stable boundary before aggregate command methods, so that business rules are
// evaluated only against well-formed inputs: anything malformed fails here, before
// an aggregate is hydrated.
package command
