// Package prosecutioncase models the defendant and offence consistency engine for
// a single prosecution case.
//
// The aggregate owns the authoritative set of defendants, their offences and
// person details, and the one-way sending-sheet lock: once a case's sending sheet
// is completed every structural command for that case is answered with a
// SendingSheetPreviouslyCompleted fact instead of a change. Duplicate defendant or
// police-defendant ids are likewise recorded as rejection facts, never errors.
package prosecutioncase
