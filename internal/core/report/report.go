// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package report handles visitor reports against directory entries.

Reports are anonymous, append-only and deliberately lightweight: no
deduplication, no reporter identity, and the reported title is a snapshot
taken from the client at submission time. Moderators resolve a report by
deleting it after acting on the entry.
*/
package report

import "time"

// # Reasons

// Reasons is the fixed set a reporter chooses from. "Other" requires an
// explanatory detail.
var Reasons = []string{
	ReasonSpam,
	ReasonInappropriate,
	ReasonBrokenLink,
	ReasonScam,
	ReasonOther,
}

const (
	ReasonSpam          = "Spam"
	ReasonInappropriate = "Inappropriate Content"
	ReasonBrokenLink    = "Broken Link"
	ReasonScam          = "Scam or Fraud"
	ReasonOther         = "Other"
)

// StatusPending is the only report status. Resolution deletes the record
// instead of transitioning it.
const StatusPending = "pending"

// # Domain Model

// Report is a single visitor report.
type Report struct {
	ID string `json:"id"`

	// GroupID references the reported entry. GroupTitle is a denormalized
	// snapshot from the reporting client, never re-synced.
	GroupID    string `json:"group_id"`
	GroupTitle string `json:"group_title"`

	// Reason is either one of the fixed reasons or "Other: <detail>".
	Reason string `json:"reason"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldGroupID     = "group_id"
	FieldReason      = "reason"
	FieldOtherReason = "other_reason"
)
