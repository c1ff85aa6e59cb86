package material

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the material aggregate in envelopes and the store.
const AggregateType = "material"

const scopeField = "material_id"

// Material upload statuses.
const (
	StatusRequested = "REQUESTED"
	StatusUploaded  = "UPLOADED"
)

// Command and event types of the material aggregate.
const (
	CommandTypeRequest      command.Type = "material.request"
	CommandTypeRecordUpload command.Type = "material.record_upload"
	CommandTypeUpdateStatus command.Type = "material.update_status"

	EventTypeRequested      event.Type = "material.requested"
	EventTypeUploaded       event.Type = "material.uploaded"
	EventTypeUploadRejected event.Type = "material.upload_rejected"
	EventTypeStatusUpdated  event.Type = "material.status_updated"
)

// Binding exposes the material aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Material]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to a material command method.
func Decide(m *Material, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	switch cmd.Type {
	case CommandTypeRequest:
		return command.Dispatch(cmd, m.Request)
	case CommandTypeRecordUpload:
		return command.Dispatch(cmd, m.RecordUpload)
	case CommandTypeUpdateStatus:
		return command.Dispatch(cmd, m.UpdateStatus)
	default:
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
}

// Request records that the material is wanted. Repeated requests emit nothing.
func (m *Material) Request(in RequestPayload) []event.Event {
	if m.requested {
		return nil
	}
	rec := aggregate.NewRecorder(m)
	rec.Emit(EventTypeRequested, in)
	return rec.Events()
}

// RecordUpload attaches the uploaded file to a requested material.
func (m *Material) RecordUpload(in UploadPayload) []event.Event {
	rec := aggregate.NewRecorder(m)
	if !m.requested {
		rec.Emit(EventTypeUploadRejected, RejectedPayload{MaterialID: in.MaterialID, Description: "Material was not requested"})
		return rec.Events()
	}
	rec.Emit(EventTypeUploaded, in)
	return rec.Events()
}

// UpdateStatus records a new status; an unchanged status emits nothing.
func (m *Material) UpdateStatus(in StatusPayload) []event.Event {
	if m.status == in.Status {
		return nil
	}
	rec := aggregate.NewRecorder(m)
	rec.Emit(EventTypeStatusUpdated, in)
	return rec.Events()
}
