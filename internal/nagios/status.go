package nagios

// Status is a plugin outcome in the three-state monitoring protocol,
// plus the UNKNOWN fallback for error conditions.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusCritical
	StatusUnknown
)

// String returns the uppercase protocol name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code the supervisor expects:
// 0=OK, 1=WARNING, 2=CRITICAL, 3=UNKNOWN.
func (s Status) ExitCode() int {
	switch s {
	case StatusOK, StatusWarning, StatusCritical:
		return int(s)
	default:
		return 3
	}
}
