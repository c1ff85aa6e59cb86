package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/caseprogression/internal/platform/logging"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/engine"
)

const (
	// DefaultParallelism bounds how many aggregates are dispatched at once.
	DefaultParallelism = 4

	maxLineBytes = 4 << 20
)

// Dispatcher handles one command.
type Dispatcher interface {
	Handle(ctx context.Context, cmd command.Command) (engine.Result, error)
}

// Envelope is the JSON form of one input command.
type Envelope struct {
	AggregateType string          `json:"aggregate_type,omitempty"`
	AggregateID   string          `json:"aggregate_id"`
	Type          string          `json:"type"`
	ActorID       string          `json:"actor_id,omitempty"`
	RequestID     string          `json:"request_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	CausationID   string          `json:"causation_id,omitempty"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

// Command converts the envelope into a domain command.
func (e Envelope) Command() command.Command {
	return command.Command{
		AggregateType: e.AggregateType,
		AggregateID:   e.AggregateID,
		Type:          command.Type(e.Type),
		ActorID:       e.ActorID,
		RequestID:     e.RequestID,
		CorrelationID: e.CorrelationID,
		CausationID:   e.CausationID,
		PayloadJSON:   e.Payload,
	}
}

// EventRef summarizes one committed event in an outcome.
type EventRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Seq  uint64 `json:"seq"`
}

// Outcome is the JSON result line written for one input line.
type Outcome struct {
	Line        int        `json:"line"`
	AggregateID string     `json:"aggregate_id,omitempty"`
	CommandType string     `json:"command_type,omitempty"`
	Events      []EventRef `json:"events,omitempty"`
	Rejected    bool       `json:"rejected,omitempty"`
	Attempts    int        `json:"attempts,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// Summary totals a batch run.
type Summary struct {
	Commands int
	Events   int
	Rejected int
	Failed   int
}

// Runner dispatches NDJSON command batches.
type Runner struct {
	Dispatcher  Dispatcher
	Parallelism int
	Logger      *logging.Logger
}

type pending struct {
	outcome  *Outcome
	envelope Envelope
}

// Run reads commands from in, dispatches them and writes outcomes to out.
// Command failures are reported per line; only read, write and context
// errors abort the run.
func (r Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	if r.Dispatcher == nil {
		return Summary{}, fmt.Errorf("dispatcher is required")
	}
	logger := logging.OrNop(r.Logger)

	outcomes, groups, err := readBatch(in)
	if err != nil {
		return Summary{}, err
	}

	parallelism := r.Parallelism
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, group := range groups {
		g.Go(func() error {
			for _, item := range group {
				if err := gctx.Err(); err != nil {
					return err
				}
				r.dispatch(gctx, item)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	var summary Summary
	encoder := json.NewEncoder(out)
	for i := range outcomes {
		outcome := &outcomes[i]
		summary.Commands++
		summary.Events += len(outcome.Events)
		if outcome.Rejected {
			summary.Rejected++
		}
		if outcome.Error != "" {
			summary.Failed++
		}
		if err := encoder.Encode(outcome); err != nil {
			return summary, fmt.Errorf("write outcome %d: %w", outcome.Line, err)
		}
	}
	logger.Info("batch complete",
		"commands", summary.Commands,
		"events", summary.Events,
		"rejected", summary.Rejected,
		"failed", summary.Failed,
	)
	return summary, nil
}

func (r Runner) dispatch(ctx context.Context, item pending) {
	result, err := r.Dispatcher.Handle(ctx, item.envelope.Command())
	item.outcome.Attempts = result.Attempts
	item.outcome.Rejected = result.Rejected
	for _, evt := range result.Events {
		item.outcome.Events = append(item.outcome.Events, EventRef{ID: evt.ID, Type: string(evt.Type), Seq: evt.Seq})
	}
	if err != nil {
		item.outcome.Error = err.Error()
	}
}

// readBatch decodes every line and groups dispatchable commands by aggregate
// id, keeping input order inside each group. Blank lines are skipped.
func readBatch(in io.Reader) ([]Outcome, [][]pending, error) {
	type line struct {
		number   int
		envelope Envelope
		err      error
	}
	var lines []line
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	number := 0
	for scanner.Scan() {
		number++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var envelope Envelope
		err := json.Unmarshal([]byte(raw), &envelope)
		if err != nil {
			err = fmt.Errorf("decode command: %w", err)
		}
		lines = append(lines, line{number: number, envelope: envelope, err: err})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read commands: %w", err)
	}

	outcomes := make([]Outcome, len(lines))
	var groups [][]pending
	index := make(map[string]int)
	for i, l := range lines {
		outcomes[i] = Outcome{Line: l.number, AggregateID: l.envelope.AggregateID, CommandType: l.envelope.Type}
		if l.err != nil {
			outcomes[i].Error = l.err.Error()
			continue
		}
		key := strings.TrimSpace(l.envelope.AggregateID)
		g, ok := index[key]
		if !ok {
			g = len(groups)
			index[key] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], pending{outcome: &outcomes[i], envelope: l.envelope})
	}
	return outcomes, groups, nil
}
