// Package threshold validates the operator-supplied warning/critical
// percentages and classifies a used-memory percentage against them.
package threshold

import (
	"fmt"

	"github.com/probekit/checkmem/internal/nagios"
)

// Thresholds holds the validated pair of free-memory percentages. The
// operator supplies them as floors on free memory ("alert when free drops
// below"), so classification happens against their used-memory inversions.
// Immutable after New.
type Thresholds struct {
	critical int
	warning  int
}

// New validates that both percentages are in [0,100] and that critical is
// the lower (more severe) free-memory floor. Validation runs before any
// file I/O, so a bad pair never touches the system.
func New(critical, warning int) (Thresholds, error) {
	if critical < 0 || critical > 100 {
		return Thresholds{}, fmt.Errorf("critical threshold %d out of range [0,100]", critical)
	}
	if warning < 0 || warning > 100 {
		return Thresholds{}, fmt.Errorf("warning threshold %d out of range [0,100]", warning)
	}
	if critical > warning {
		return Thresholds{}, fmt.Errorf("critical threshold %d must not exceed warning threshold %d", critical, warning)
	}
	return Thresholds{critical: critical, warning: warning}, nil
}

// WarningBound returns the used-memory percentage at which the check
// leaves the OK state.
func (t Thresholds) WarningBound() float64 {
	return float64(100 - t.warning)
}

// CriticalBound returns the used-memory percentage at which the check
// becomes CRITICAL. Always >= WarningBound for a valid pair.
func (t Thresholds) CriticalBound() float64 {
	return float64(100 - t.critical)
}

// Classify maps a used-memory percentage onto the three-state protocol.
// The critical bound is closed: a value exactly on it is CRITICAL.
func (t Thresholds) Classify(usedPercent float64) nagios.Status {
	switch {
	case usedPercent >= t.CriticalBound():
		return nagios.StatusCritical
	case usedPercent >= t.WarningBound():
		return nagios.StatusWarning
	default:
		return nagios.StatusOK
	}
}
