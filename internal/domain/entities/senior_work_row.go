package entities

import (
	"fmt"
	"strings"
)

// WorkRowStatus tracks one serviced location. It never drives RequestStatus.
type WorkRowStatus string

const (
	WorkRowStatusWait       WorkRowStatus = "WAIT"
	WorkRowStatusInProgress WorkRowStatus = "IN_PROGRESS"
	WorkRowStatusDone       WorkRowStatus = "DONE"
)

func (s WorkRowStatus) Valid() bool {
	switch s {
	case WorkRowStatusWait, WorkRowStatusInProgress, WorkRowStatusDone:
		return true
	}
	return false
}

// SeniorWorkRow is a per-location work record nested in a ServiceRequest.
// RowID is an ordinal for UI keying only.
type SeniorWorkRow struct {
	RowID        int           `json:"row_id" dynamodbav:"row_id"`
	LocationName string        `json:"location_name" dynamodbav:"location_name"`
	Address      string        `json:"address" dynamodbav:"address,omitempty"`
	WorkDate     string        `json:"work_date,omitempty" dynamodbav:"work_date,omitempty"`
	Description  string        `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Status       WorkRowStatus `json:"status" dynamodbav:"status"`
}

// NormalizeSeniorRows validates the status enum and work dates, defaults an
// empty status to WAIT and renumbers RowID by position.
func NormalizeSeniorRows(rows []SeniorWorkRow) ([]SeniorWorkRow, error) {
	out := make([]SeniorWorkRow, 0, len(rows))
	for i, row := range rows {
		row.Status = WorkRowStatus(strings.ToUpper(strings.TrimSpace(string(row.Status))))
		if row.Status == "" {
			row.Status = WorkRowStatusWait
		}
		if !row.Status.Valid() {
			return nil, fmt.Errorf("%w: row %d has unknown status %q", ErrInvalidInput, i+1, row.Status)
		}
		if row.WorkDate != "" {
			if _, err := ParseDate(row.WorkDate); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		row.RowID = i + 1
		out = append(out, row)
	}
	return out, nil
}
