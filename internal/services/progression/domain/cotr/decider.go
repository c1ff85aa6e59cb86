package cotr

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the certificate of trial readiness aggregate in envelopes and the store.
const AggregateType = "cotr"

const scopeField = "cotr_id"

// Commands handled by the certificate of trial readiness aggregate.
const (
	CommandTypeCreate                 command.Type = "cotr.create"
	CommandTypeServeProsecution       command.Type = "cotr.serve_prosecution"
	CommandTypeServeDefendant         command.Type = "cotr.serve_defendant"
	CommandTypeFurtherInfoProsecution command.Type = "cotr.add_further_info_prosecution"
	CommandTypeFurtherInfoDefence     command.Type = "cotr.add_further_info_defence"
	CommandTypeChangeDefendants       command.Type = "cotr.change_defendants"
	CommandTypeArchive                command.Type = "cotr.archive"
	CommandTypeUpdateReviewNotes      command.Type = "cotr.update_review_notes"
)

// Events recorded by the certificate of trial readiness aggregate.
const (
	EventTypeCreated                     event.Type = "cotr.created"
	EventTypeAlreadyExists               event.Type = "cotr.already_exists"
	EventTypeTaskRequested               event.Type = "cotr.task_requested"
	EventTypeProsecutionServed           event.Type = "cotr.prosecution_served"
	EventTypeDefendantServed             event.Type = "cotr.defendant_served"
	EventTypeProsecutionFurtherInfoAdded event.Type = "cotr.prosecution_further_info_added"
	EventTypeDefenceContentUpdated       event.Type = "cotr.defence_content_updated"
	EventTypeDefendantAdded              event.Type = "cotr.defendant_added"
	EventTypeDefendantRemoved            event.Type = "cotr.defendant_removed"
	EventTypeArchived                    event.Type = "cotr.archived"
	EventTypeReviewNotesUpdated          event.Type = "cotr.review_notes_updated"
	EventTypeReviewNotesRejected         event.Type = "cotr.review_notes_rejected"
)

// Binding exposes the cotr aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Cotr]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to a cotr command method.
func Decide(c *Cotr, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeCreate:
		return command.Dispatch(cmd, c.Create)
	case CommandTypeServeProsecution:
		return command.Dispatch(cmd, c.ServeProsecutionCotr)
	case CommandTypeServeDefendant:
		return command.Dispatch(cmd, c.ServeDefendantCotr)
	case CommandTypeFurtherInfoProsecution:
		return command.Dispatch(cmd, c.AddFurtherInfoForProsecutionCotr)
	case CommandTypeFurtherInfoDefence:
		return command.Dispatch(cmd, c.AddFurtherInfoForDefenceCotr)
	case CommandTypeChangeDefendants:
		return command.Dispatch(cmd, c.ChangeDefendantsCotr)
	case CommandTypeArchive:
		return command.Dispatch(cmd, c.ArchiveCotr)
	case CommandTypeUpdateReviewNotes:
		return command.Dispatch(cmd, c.UpdateReviewNotes)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}
