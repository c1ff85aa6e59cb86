package courtcentre

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the court centre aggregate in envelopes and the store.
const AggregateType = "court_centre"

const scopeField = "court_centre_id"

// Command and event types of the court centre aggregate.
const (
	CommandTypeRecordPrisonCourtRegister   command.Type = "court_centre.record_prison_court_register"
	CommandTypeGeneratePrisonCourtRegister command.Type = "court_centre.generate_prison_court_register"
	CommandTypeRecordCourtRegister         command.Type = "court_centre.record_court_register"
	CommandTypeNotifyCourtRegister         command.Type = "court_centre.notify_court_register"

	EventTypePrisonCourtRegisterRecorded  event.Type = "court_centre.prison_court_register_recorded"
	EventTypePrisonCourtRegisterGenerated event.Type = "court_centre.prison_court_register_generated"
	EventTypeCourtRegisterRecorded        event.Type = "court_centre.court_register_recorded"
	EventTypeCourtRegisterNotified        event.Type = "court_centre.court_register_notified"
	EventTypeRegisterNotFound             event.Type = "court_centre.register_not_found"
)

const descriptionRegisterNotFound = "Register not found"

// Binding exposes the court centre aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*CourtCentre]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to a court centre command method.
func Decide(c *CourtCentre, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeRecordPrisonCourtRegister:
		return command.Dispatch(cmd, c.RecordPrisonCourtRegister)
	case CommandTypeGeneratePrisonCourtRegister:
		return command.Dispatch(cmd, c.GeneratePrisonCourtRegister)
	case CommandTypeRecordCourtRegister:
		return command.Dispatch(cmd, c.RecordCourtRegister)
	case CommandTypeNotifyCourtRegister:
		return command.Dispatch(cmd, c.NotifyCourtRegister)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}

// RecordPrisonCourtRegister records a prison court register entry.
func (c *CourtCentre) RecordPrisonCourtRegister(in PrisonCourtRegisterPayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	rec.Emit(EventTypePrisonCourtRegisterRecorded, in)
	return rec.Events()
}

// GeneratePrisonCourtRegister records the generated document for a register.
// Generating an already generated register emits nothing.
func (c *CourtCentre) GeneratePrisonCourtRegister(in RegisterGeneratedPayload) []event.Event {
	generated, known := c.prisonRegisters[in.RegisterID]
	if generated {
		return nil
	}
	rec := aggregate.NewRecorder(c)
	if !known {
		rec.Emit(EventTypeRegisterNotFound, RegisterRejectedPayload{
			CourtCentreID: in.CourtCentreID,
			RegisterID:    in.RegisterID,
			Description:   descriptionRegisterNotFound,
		})
		return rec.Events()
	}
	rec.Emit(EventTypePrisonCourtRegisterGenerated, in)
	return rec.Events()
}

// RecordCourtRegister records a court register for a sitting day.
func (c *CourtCentre) RecordCourtRegister(in CourtRegisterPayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	rec.Emit(EventTypeCourtRegisterRecorded, in)
	return rec.Events()
}

// NotifyCourtRegister notifies recipients of a court register once.
func (c *CourtCentre) NotifyCourtRegister(in NotifyPayload) []event.Event {
	notified, known := c.courtRegisters[in.RegisterID]
	if notified {
		return nil
	}
	rec := aggregate.NewRecorder(c)
	if !known {
		rec.Emit(EventTypeRegisterNotFound, RegisterRejectedPayload{
			CourtCentreID: in.CourtCentreID,
			RegisterID:    in.RegisterID,
			Description:   descriptionRegisterNotFound,
		})
		return rec.Events()
	}
	rec.Emit(EventTypeCourtRegisterNotified, in)
	return rec.Events()
}
