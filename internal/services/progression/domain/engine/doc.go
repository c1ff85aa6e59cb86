// Package engine is the dispatch boundary for progression commands.
//
// It validates a command, replays the target aggregate from the journal,
// decides, appends the emitted events if the stream has not moved, and
// publishes what was committed. A lost append race restarts from replay.
package engine
