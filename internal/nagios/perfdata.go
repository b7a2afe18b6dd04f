package nagios

import (
	"fmt"
	"strings"
)

// PerfData is one performance record in label=value[uom];warn;crit;min;max
// form. Zero-valued threshold/range fields render empty, which monitoring
// ecosystems read as "not supplied".
type PerfData struct {
	Label string
	Value uint64
	UOM   string
	Warn  string
	Crit  string
	Min   string
	Max   string
}

// String renders the record in perfdata wire form.
func (p PerfData) String() string {
	return fmt.Sprintf("%s=%d%s;%s;%s;%s;%s", p.Label, p.Value, p.UOM, p.Warn, p.Crit, p.Min, p.Max)
}

// FormatOutput assembles the single plugin output line: the status name, a
// dash-separated summary, and the pipe-separated perfdata records.
func FormatOutput(status Status, summary string, perf []PerfData) string {
	var b strings.Builder
	b.WriteString(status.String())
	b.WriteString(" - ")
	b.WriteString(summary)
	if len(perf) > 0 {
		b.WriteString(" |")
		for _, p := range perf {
			b.WriteString(" ")
			b.WriteString(p.String())
		}
	}
	return b.String()
}
