package cotr

import "strings"

// Jurisdiction types that select task routing.
const (
	JurisdictionCrown       = "CROWN"
	JurisdictionMagistrates = "MAGISTRATES"
)

// Role groups that receive routed tasks.
const (
	RoleOperationalDeliveryAdmin = "Operational Delivery Admin"
	RoleListingOfficer           = "Listing Officer"
	RoleCaseProgressionOfficer   = "Case Progression Officer"
	RoleCentralAdmin             = "Central Admin"
	RoleWelshLanguageUnit        = "Welsh Language Unit"
)

// Task names and their due-day counts.
const (
	TaskReviewCotr        = "Review COTR"
	TaskReviewListing     = "Review Listing"
	TaskReviewFurtherInfo = "Review further information"
	TaskTranslateWelsh    = "Translate Welsh COTR form"

	reviewDueDays      = 2
	listingDueDays     = 5
	translationDueDays = 3
)

// QuestionTimeEstimate is the form question whose "no" answer escalates review
// to the listing team.
const QuestionTimeEstimate = "Is the time estimate correct?"

// RolesFor returns the roles that receive review tasks for a jurisdiction.
func RolesFor(jurisdiction string) []string {
	if strings.EqualFold(strings.TrimSpace(jurisdiction), JurisdictionCrown) {
		return []string{RoleOperationalDeliveryAdmin, RoleListingOfficer, RoleCaseProgressionOfficer}
	}
	return []string{RoleCentralAdmin}
}

// WelshRolesFor returns the roles that receive the Welsh translation task.
func WelshRolesFor(jurisdiction string) []string {
	return append([]string{RoleWelshLanguageUnit}, RolesFor(jurisdiction)...)
}

// ReviewTask names the review task and its deadline for a set of form answers.
func ReviewTask(answers []Answer) (string, int) {
	for _, answer := range answers {
		if answer.Question == QuestionTimeEstimate && isNo(answer.Answer) {
			return TaskReviewListing, listingDueDays
		}
	}
	return TaskReviewCotr, reviewDueDays
}

func isNo(answer string) bool {
	switch strings.ToUpper(strings.TrimSpace(answer)) {
	case "N", "NO":
		return true
	default:
		return false
	}
}
