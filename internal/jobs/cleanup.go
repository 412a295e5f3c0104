package jobs

import (
	"context"
	"fmt"

	"github.com/dukerupert/kirana/internal/telemetry"
)

// Job name constants for cleanup jobs
const (
	JobNamePurgeExpiredOTPs = "cleanup:expired_otps"
)

// OTPPurger deletes verification codes past their expiry and reports how
// many rows were removed.
type OTPPurger interface {
	DeleteExpiredOTPs(ctx context.Context) (int64, error)
}

// CleanupResult holds the result of a cleanup operation
type CleanupResult struct {
	OTPsDeleted int64 `json:"otps_deleted"`
}

// PurgeExpiredOTPs removes expired one-time passwords. Verification already
// rejects expired codes, so the job only keeps the table small.
func PurgeExpiredOTPs(ctx context.Context, q OTPPurger) (*CleanupResult, error) {
	deleted, err := q.DeleteExpiredOTPs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to delete expired otps: %w", err)
	}

	if telemetry.Business != nil && deleted > 0 {
		telemetry.Business.OTPsPurged.Add(float64(deleted))
	}

	return &CleanupResult{OTPsDeleted: deleted}, nil
}

// IsCleanupJob checks if a job name is a cleanup job
func IsCleanupJob(name string) bool {
	switch name {
	case JobNamePurgeExpiredOTPs:
		return true
	}
	return false
}
