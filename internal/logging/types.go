package logging

import "time"

// #region update-entry

// UpdateEntry is one row of update provenance: which observation drove the
// update, what the learner decided, and the pairs it touched.
type UpdateEntry struct {
	ID            int64     `json:"id,omitempty"`
	ObservationID string    `json:"observation_id,omitempty"`
	TaskType      string    `json:"task_type"`
	Rate          float64   `json:"rate"`
	PairsJSON     string    `json:"pairs_json,omitempty"`
	Decision      string    `json:"decision"`
	Reason        string    `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// #endregion update-entry
