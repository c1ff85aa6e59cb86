package groupcase

import (
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// Initiate records the group and its initial members.
func (g *Group) Initiate(in InitiatePayload) []event.Event {
	rec := aggregate.NewRecorder(g)
	if g.initiated {
		rec.Emit(EventTypeAlreadyInitiated, RejectedPayload{GroupID: in.GroupID, Description: "Group case already initiated"})
		return rec.Events()
	}
	rec.Emit(EventTypeInitiated, in)
	return rec.Events()
}

// CanBeRemoved reports whether caseID is a member that is not the group's last.
func (g *Group) CanBeRemoved(caseID string) bool {
	return g.IsMember(caseID) && len(g.members) > 1
}

// GetNewGroupMaster nominates a replacement master when removedCaseID is the
// current master. The earliest-joined remaining member is chosen.
func (g *Group) GetNewGroupMaster(removedCaseID string) *Member {
	if removedCaseID == "" || removedCaseID != g.master {
		return nil
	}
	for _, caseID := range g.order {
		if caseID == g.master {
			continue
		}
		member := g.members[caseID]
		member.GroupMaster = true
		return &member
	}
	return nil
}

// RemoveCaseFromGroupCases removes a member, nominating newMaster when set.
// Removing an empty or unknown case id emits nothing.
func (g *Group) RemoveCaseFromGroupCases(groupID, removedCaseID string, newMaster *Member) []event.Event {
	if removedCaseID == "" || !g.IsMember(removedCaseID) {
		return nil
	}
	rec := aggregate.NewRecorder(g)
	rec.Emit(EventTypeCaseRemoved, CaseRemovedPayload{
		GroupID:       groupID,
		RemovedCaseID: removedCaseID,
		NewMaster:     newMaster,
	})
	return rec.Events()
}

// RejectLastCaseToBeRemovedFromGroup records the refusal to empty the group.
func (g *Group) RejectLastCaseToBeRemovedFromGroup(groupID, caseID string) []event.Event {
	rec := aggregate.NewRecorder(g)
	rec.Emit(EventTypeLastCaseRemovalRejected, RejectedPayload{
		GroupID:     groupID,
		CaseID:      caseID,
		Description: "Cannot remove the last case from a group",
	})
	return rec.Events()
}

// RemoveCase is the command entry point for removing a case from the group.
func (g *Group) RemoveCase(in RemoveCasePayload) []event.Event {
	if g.IsMember(in.CaseID) && !g.CanBeRemoved(in.CaseID) {
		return g.RejectLastCaseToBeRemovedFromGroup(in.GroupID, in.CaseID)
	}
	return g.RemoveCaseFromGroupCases(in.GroupID, in.CaseID, g.GetNewGroupMaster(in.CaseID))
}
