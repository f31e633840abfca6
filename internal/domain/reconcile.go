package domain

import "time"

type JobState string

const (
	JobStatePending JobState = "pending"
	JobStateDone    JobState = "done"
	JobStateDead    JobState = "dead"
)

// ReconcileJob is a durable request to re-run reconciliation for one order after a
// failed attempt. Jobs that exhaust their attempts are kept as dead letters.
type ReconcileJob struct {
	ID              int64              `json:"id"`
	OrderTrackingID string             `json:"order_tracking_id"`
	Source          PaymentEventSource `json:"source"`
	Attempts        int                `json:"attempts"`
	NextAttemptAt   time.Time          `json:"next_attempt_at"`
	LastError       string             `json:"last_error"`
	State           JobState           `json:"state"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
