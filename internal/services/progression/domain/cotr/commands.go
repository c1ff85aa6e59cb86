package cotr

import (
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/aggregate"
	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

const headingFurtherInformation = "Further information"

// Create records the hearing the cotr belongs to and its initial defendants.
func (c *Cotr) Create(in CreatePayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	if c.created {
		rec.Emit(EventTypeAlreadyExists, RejectedPayload{CotrID: in.CotrID, Description: "COTR already exists"})
		return rec.Events()
	}
	rec.Emit(EventTypeCreated, in)
	return rec.Events()
}

// ServeProsecutionCotr records the prosecution form and routes its review task.
func (c *Cotr) ServeProsecutionCotr(in ServeProsecutionPayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	name, due := ReviewTask(in.Answers)
	rec.Emit(EventTypeTaskRequested, c.task(in.CotrID, "", name, due, RolesFor(c.jurisdiction)))
	rec.Emit(EventTypeProsecutionServed, in)
	return rec.Events()
}

// ServeDefendantCotr records a defendant's form and routes its review task. A
// form submitted in Welsh also routes a translation task.
func (c *Cotr) ServeDefendantCotr(in ServeDefendantPayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	name, due := ReviewTask(in.Answers)
	rec.Emit(EventTypeTaskRequested, c.task(in.CotrID, in.DefendantID, name, due, RolesFor(c.jurisdiction)))
	if in.IsWelshForm {
		rec.Emit(EventTypeTaskRequested, c.task(in.CotrID, in.DefendantID, TaskTranslateWelsh, translationDueDays, WelshRolesFor(c.jurisdiction)))
	}
	rec.Emit(EventTypeDefendantServed, in)
	return rec.Events()
}

// AddFurtherInfoForProsecutionCotr records further prosecution information and
// routes its review task.
func (c *Cotr) AddFurtherInfoForProsecutionCotr(in FurtherInfoPayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	rec.Emit(EventTypeProsecutionFurtherInfoAdded, in)
	rec.Emit(EventTypeTaskRequested, c.task(in.CotrID, "", TaskReviewFurtherInfo, reviewDueDays, RolesFor(c.jurisdiction)))
	return rec.Events()
}

// AddFurtherInfoForDefenceCotr appends the message to the defendant's content
// when content has already been served. The review task is routed either way.
func (c *Cotr) AddFurtherInfoForDefenceCotr(in FurtherInfoPayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	if existing := c.content[in.DefendantID]; len(existing) > 0 {
		content := append(append([]Entry(nil), existing...), Entry{Heading: headingFurtherInformation, Text: in.Message})
		rec.Emit(EventTypeDefenceContentUpdated, ContentUpdatedPayload{
			CotrID:      in.CotrID,
			DefendantID: in.DefendantID,
			Content:     content,
		})
	}
	rec.Emit(EventTypeTaskRequested, c.task(in.CotrID, in.DefendantID, TaskReviewFurtherInfo, reviewDueDays, RolesFor(c.jurisdiction)))
	return rec.Events()
}

// ChangeDefendantsCotr records each added and removed defendant. Added
// defendants are numbered from the running count.
func (c *Cotr) ChangeDefendantsCotr(in ChangeDefendantsPayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	for _, defendantID := range in.Added {
		rec.Emit(EventTypeDefendantAdded, DefendantAddedPayload{
			CotrID:          in.CotrID,
			DefendantID:     defendantID,
			DefendantNumber: c.defendantCount + 1,
		})
	}
	for _, defendantID := range in.Removed {
		rec.Emit(EventTypeDefendantRemoved, DefendantRemovedPayload{CotrID: in.CotrID, DefendantID: defendantID})
	}
	return rec.Events()
}

// ArchiveCotr archives the cotr once.
func (c *Cotr) ArchiveCotr(in ArchivePayload) []event.Event {
	if c.archived {
		return nil
	}
	rec := aggregate.NewRecorder(c)
	rec.Emit(EventTypeArchived, in)
	return rec.Events()
}

// UpdateReviewNotes replaces the reviewer notes unless the cotr is archived.
func (c *Cotr) UpdateReviewNotes(in ReviewNotesPayload) []event.Event {
	rec := aggregate.NewRecorder(c)
	if c.archived {
		rec.Emit(EventTypeReviewNotesRejected, RejectedPayload{CotrID: in.CotrID, Description: "COTR is archived"})
		return rec.Events()
	}
	rec.Emit(EventTypeReviewNotesUpdated, in)
	return rec.Events()
}

func (c *Cotr) task(cotrID, defendantID, name string, due int, roles []string) TaskPayload {
	return TaskPayload{
		CotrID:      cotrID,
		HearingID:   c.hearingID,
		DefendantID: defendantID,
		Name:        name,
		DueInDays:   due,
		Roles:       roles,
	}
}
