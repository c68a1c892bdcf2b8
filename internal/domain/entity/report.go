package entity

import "time"

// Report is an abuse report against another account. Immutable once created;
// never physically removed.
type Report struct {
	ID             int64     `json:"id"`
	ReporterHandle string    `json:"reporter_handle"`
	ReportedHandle string    `json:"reported_handle"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewReport(id int64, reporterHandle, reportedHandle, reason string, now time.Time) *Report {
	return &Report{
		ID:             id,
		ReporterHandle: reporterHandle,
		ReportedHandle: reportedHandle,
		Reason:         reason,
		CreatedAt:      now,
	}
}
