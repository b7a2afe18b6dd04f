// Package check runs the free-memory probe as one sequential pipeline:
// validate thresholds, read the meminfo source, classify, report.
package check

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/probekit/checkmem/internal/meminfo"
	"github.com/probekit/checkmem/internal/nagios"
	"github.com/probekit/checkmem/internal/platform"
	"github.com/probekit/checkmem/internal/sysinfo"
	"github.com/probekit/checkmem/internal/threshold"
)

// Options is the immutable per-run configuration assembled from the
// command line. One Options value drives one check invocation.
type Options struct {
	// Critical and Warning are free-memory percentage floors.
	Critical int
	Warning  int
	// MemInfoPath overrides the meminfo source; empty selects the kernel
	// default.
	MemInfoPath string
	// Verbosity gates diagnostic logging: 1 traces the pipeline stages,
	// 2 adds host and swap details.
	Verbosity int
	// Log receives diagnostics; nil disables them.
	Log *log.Logger
	// Diag supplies the high-verbosity host diagnostics; nil selects the
	// gopsutil-backed reader.
	Diag sysinfo.Reader
}

// Result is the outcome of one run: the classification and the full
// plugin output line.
type Result struct {
	Status nagios.Status
	Output string
}

// ExitCode returns the process exit code for the result.
func (r Result) ExitCode() int {
	return r.Status.ExitCode()
}

// Run executes the pipeline. Every failure short-circuits to an UNKNOWN
// result whose message names the failing stage; nothing is retried.
func Run(opts Options) Result {
	thresholds, err := threshold.New(opts.Critical, opts.Warning)
	if err != nil {
		return unknown(err.Error())
	}
	opts.logf(1, "thresholds: warning bound %.0f%%, critical bound %.0f%% used",
		thresholds.WarningBound(), thresholds.CriticalBound())

	if err := platform.ValidateSupport(); err != nil {
		return unknown(err.Error())
	}

	if opts.Verbosity >= 2 && opts.Log != nil {
		opts.logDiagnostics()
	}

	reader := meminfo.NewReader(opts.MemInfoPath)
	opts.logf(1, "reading %s", reader.Path())
	snapshot, err := reader.Read()
	if err != nil {
		return unknown(err.Error())
	}
	if snapshot.TotalKB == 0 {
		return unknown(fmt.Sprintf("MemTotal is zero in %s", reader.Path()))
	}
	opts.logf(1, "MemTotal=%dkB MemAvailable=%dkB", snapshot.TotalKB, snapshot.AvailableKB)

	freeRatio := float64(snapshot.AvailableKB) / float64(snapshot.TotalKB)
	usedPercent := 100 * (1 - freeRatio)
	status := thresholds.Classify(usedPercent)
	opts.logf(1, "used %.2f%% -> %s", usedPercent, status)

	summary := fmt.Sprintf("free %d%%", int(math.Round(100*freeRatio)))
	perf := []nagios.PerfData{
		{Label: "total", Value: snapshot.TotalKB, UOM: "kB"},
		{Label: "free", Value: snapshot.AvailableKB, UOM: "kB"},
	}
	return Result{
		Status: status,
		Output: nagios.FormatOutput(status, summary, perf),
	}
}

func unknown(message string) Result {
	return Result{
		Status: nagios.StatusUnknown,
		Output: nagios.FormatOutput(nagios.StatusUnknown, message, nil),
	}
}

func (o Options) logf(level int, format string, args ...interface{}) {
	if o.Log == nil || o.Verbosity < level {
		return
	}
	o.Log.Printf(format, args...)
}

func (o Options) logDiagnostics() {
	diag := o.Diag
	if diag == nil {
		diag = sysinfo.NewReader()
	}
	info, err := diag.GetInfo(context.Background())
	if err != nil {
		o.logf(2, "diagnostics unavailable: %v", err)
		return
	}
	for _, line := range info.Lines() {
		o.logf(2, "%s", line)
	}
}
