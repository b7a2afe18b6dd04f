// Package sysinfo collects supplemental host diagnostics for verbose
// output. It never influences the check classification.
package sysinfo

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info represents supplemental host and swap figures
type Info struct {
	Hostname        string  `json:"hostname"`
	OS              string  `json:"os"`
	KernelVersion   string  `json:"kernel_version"`
	UptimeSeconds   uint64  `json:"uptime_seconds"`
	SwapTotal       uint64  `json:"swap_total_kb"`
	SwapUsed        uint64  `json:"swap_used_kb"`
	SwapUsedPercent float64 `json:"swap_used_percent"`
}

// Reader interface for diagnostic collection
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

type gopsutilReader struct{}

// NewReader creates a gopsutil-backed diagnostics reader
func NewReader() Reader {
	return &gopsutilReader{}
}

// GetInfo returns host identity, uptime and swap usage
func (r *gopsutilReader) GetInfo(ctx context.Context) (*Info, error) {
	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("host info: %w", err)
	}
	swap, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("swap info: %w", err)
	}

	return &Info{
		Hostname:        hostInfo.Hostname,
		OS:              hostInfo.OS,
		KernelVersion:   hostInfo.KernelVersion,
		UptimeSeconds:   hostInfo.Uptime,
		SwapTotal:       swap.Total / 1024, // Convert to kB
		SwapUsed:        swap.Used / 1024,  // Convert to kB
		SwapUsedPercent: swap.UsedPercent,
	}, nil
}

// Lines renders the diagnostics as human-readable lines for stderr.
func (i *Info) Lines() []string {
	return []string{
		fmt.Sprintf("host: %s (%s, kernel %s), up %ds", i.Hostname, i.OS, i.KernelVersion, i.UptimeSeconds),
		fmt.Sprintf("swap: %dkB used of %dkB (%.1f%%)", i.SwapUsed, i.SwapTotal, i.SwapUsedPercent),
	}
}
