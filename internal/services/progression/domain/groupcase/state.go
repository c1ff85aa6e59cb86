package groupcase

// Group captures replayed group case state.
type Group struct {
	id        string
	initiated bool

	// order lists member case ids in the order they joined.
	order   []string
	members map[string]Member

	master string
}

// New returns an empty group aggregate for id.
func New(id string) *Group {
	return &Group{id: id, members: make(map[string]Member)}
}

// ID returns the group id.
func (g *Group) ID() string { return g.id }

// Initiated reports whether the group has been created.
func (g *Group) Initiated() bool { return g.initiated }

// Members returns member case ids in joining order.
func (g *Group) Members() []string {
	return append([]string(nil), g.order...)
}

// IsMember reports whether caseID currently belongs to the group.
func (g *Group) IsMember(caseID string) bool {
	_, ok := g.members[caseID]
	return ok
}

// Master returns the current master case snapshot.
func (g *Group) Master() (Member, bool) {
	member, ok := g.members[g.master]
	return member, ok
}
