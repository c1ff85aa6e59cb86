// Package referral records the referrals of a case to court. Each referral id
// may be used once.
package referral

import (
	"fmt"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/command"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// AggregateType names the referral aggregate in envelopes and the store.
const AggregateType = "cases_referred_to_court"

const scopeField = "case_id"

// Command and event types of the referral aggregate.
const (
	CommandTypeRefer command.Type = "referral.refer"

	EventTypeReferred        event.Type = "referral.referred"
	EventTypeAlreadyReferred event.Type = "referral.already_referred"
)

// ReferPayload captures the payload for referral.refer commands and
// referral.referred events.
type ReferPayload struct {
	CaseID        string   `json:"case_id"`
	ReferralID    string   `json:"referral_id"`
	CourtCentreID string   `json:"court_centre_id,omitempty"`
	HearingType   string   `json:"hearing_type,omitempty"`
	DefendantIDs  []string `json:"defendant_ids,omitempty"`
}

// RejectedPayload records a refused re-referral.
type RejectedPayload struct {
	CaseID      string `json:"case_id"`
	ReferralID  string `json:"referral_id"`
	Description string `json:"description"`
}

// Referrals captures the replayed referrals of one case.
type Referrals struct {
	caseID string
	seen   map[string]struct{}
}

// New returns an empty referral aggregate for caseID.
func New(caseID string) *Referrals {
	return &Referrals{caseID: caseID, seen: make(map[string]struct{})}
}

// Referred reports whether referralID has been recorded.
func (r *Referrals) Referred(referralID string) bool {
	_, ok := r.seen[referralID]
	return ok
}

// Apply folds an event into referral state.
func (r *Referrals) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeReferred:
		var payload ReferPayload
		_ = evt.Decode(&payload)
		r.seen[payload.ReferralID] = struct{}{}
	default:
	}
}

// Refer records a referral unless its id was already used.
func (r *Referrals) Refer(in ReferPayload) []event.Event {
	rec := aggregate.NewRecorder(r)
	if r.Referred(in.ReferralID) {
		rec.Emit(EventTypeAlreadyReferred, RejectedPayload{
			CaseID:      in.CaseID,
			ReferralID:  in.ReferralID,
			Description: "Case already referred",
		})
		return rec.Events()
	}
	rec.Emit(EventTypeReferred, in)
	return rec.Events()
}

// Binding exposes the referral aggregate to the dispatch engine.
func Binding() aggregate.Binding {
	return aggregate.Typed[*Referrals]{NewFn: New, DecideFn: Decide, ScopeField: scopeField}
}

// Decide routes a validated command to the referral command method.
func Decide(r *Referrals, cmd command.Command) (command.Decision, error) {
	cmd, err := command.Scope(cmd, scopeField)
	if err != nil {
		return command.Decision{}, err
	}
	if cmd.Type != CommandTypeRefer {
		return command.Decision{}, fmt.Errorf("%w: %s", command.ErrTypeUnknown, cmd.Type)
	}
	return command.Dispatch(cmd, r.Refer)
}

// RegisterCommands registers referral commands with the shared registry.
func RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return fmt.Errorf("command registry is required")
	}
	return registry.Register(command.Definition{
		Type:      CommandTypeRefer,
		Aggregate: AggregateType,
		ValidatePayload: command.Validator(func(p ReferPayload) error {
			return command.Required("referral_id", p.ReferralID)
		}),
	})
}

// RegisterEvents registers referral events with the shared registry.
func RegisterEvents(registry *event.Registry) error {
	if registry == nil {
		return fmt.Errorf("event registry is required")
	}
	if err := registry.Register(event.Definition{
		Type:            EventTypeReferred,
		Aggregate:       AggregateType,
		ValidatePayload: command.Validator[ReferPayload](nil),
	}); err != nil {
		return err
	}
	return registry.Register(event.Definition{
		Type:            EventTypeAlreadyReferred,
		Aggregate:       AggregateType,
		Intent:          event.IntentRejection,
		ValidatePayload: command.Validator[RejectedPayload](nil),
	})
}
