package courtcentre

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// CourtCentre captures replayed register state for one court centre.
type CourtCentre struct {
	id string
	// prisonRegisters maps register id to whether its document was generated.
	prisonRegisters map[string]bool
	// courtRegisters maps register id to whether recipients were notified.
	courtRegisters map[string]bool
}

// New returns an empty court centre aggregate for id.
func New(id string) *CourtCentre {
	return &CourtCentre{
		id:              id,
		prisonRegisters: make(map[string]bool),
		courtRegisters:  make(map[string]bool),
	}
}

// Apply folds an event into court centre state.
func (c *CourtCentre) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypePrisonCourtRegisterRecorded:
		var payload PrisonCourtRegisterPayload
		_ = evt.Decode(&payload)
		if _, ok := c.prisonRegisters[payload.RegisterID]; !ok {
			c.prisonRegisters[payload.RegisterID] = false
		}
	case EventTypePrisonCourtRegisterGenerated:
		var payload RegisterGeneratedPayload
		_ = evt.Decode(&payload)
		c.prisonRegisters[payload.RegisterID] = true
	case EventTypeCourtRegisterRecorded:
		var payload CourtRegisterPayload
		_ = evt.Decode(&payload)
		if _, ok := c.courtRegisters[payload.RegisterID]; !ok {
			c.courtRegisters[payload.RegisterID] = false
		}
	case EventTypeCourtRegisterNotified:
		var payload NotifyPayload
		_ = evt.Decode(&payload)
		c.courtRegisters[payload.RegisterID] = true
	default:
	}
}
