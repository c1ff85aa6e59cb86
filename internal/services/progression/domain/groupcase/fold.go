package groupcase

import "github.com/louisbranch/caseprogression/internal/services/progression/domain/event"

// Apply folds an event into group state.
func (g *Group) Apply(evt event.Event) {
	switch evt.Type {
	case EventTypeInitiated:
		var payload InitiatePayload
		_ = evt.Decode(&payload)
		g.initiated = true
		for _, member := range payload.Cases {
			g.join(member)
			if member.GroupMaster {
				g.master = member.CaseID
			}
		}
	case EventTypeCaseRemoved:
		var payload CaseRemovedPayload
		_ = evt.Decode(&payload)
		g.leave(payload.RemovedCaseID)
		if payload.NewMaster != nil {
			master := *payload.NewMaster
			master.GroupMaster = true
			g.members[master.CaseID] = master
			g.master = master.CaseID
		}
	default:
	}
}

func (g *Group) join(member Member) {
	if member.CaseID == "" {
		return
	}
	if _, ok := g.members[member.CaseID]; !ok {
		g.order = append(g.order, member.CaseID)
	}
	g.members[member.CaseID] = member
}

func (g *Group) leave(caseID string) {
	if _, ok := g.members[caseID]; !ok {
		return
	}
	delete(g.members, caseID)
	kept := make([]string, 0, len(g.order))
	for _, id := range g.order {
		if id != caseID {
			kept = append(kept, id)
		}
	}
	g.order = kept
	if g.master == caseID {
		g.master = ""
	}
}
