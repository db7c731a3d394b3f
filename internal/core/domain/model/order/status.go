package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status is the fulfilment state of an order.
//
// Any status may be set to any other through an update; the lifecycle has a single
// hard rule: a Cancelled order does not accept proof images.
//
//	Pending ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
type Status string

const (
	// Pending is the status of every freshly created order.
	Pending Status = "pending"
	// InProgress marks an order the shop is working on.
	InProgress Status = "in_progress"
	// Completed is set manually or by attaching proof images with markCompleted.
	Completed Status = "completed"
	// Cancelled orders reject proof attachment.
	Cancelled Status = "cancelled"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Completed, Cancelled}
}

// ParseStatus converts the wire/database representation into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate reports whether s is one of the four known statuses.
func (s Status) Validate() error {
	for _, known := range Statuses() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) String() string {
	return string(s)
}

// IsOpen is true while the order still has work left: Pending or InProgress.
func (s Status) IsOpen() bool {
	return s == Pending || s == InProgress
}

// ValidateProofAttachment fails with an InvalidStateError for cancelled orders.
func (s Status) ValidateProofAttachment() error {
	if s == Cancelled {
		return errs.NewInvalidStateError("order", s.String(), "cannot attach proof to a cancelled order")
	}
	return nil
}
