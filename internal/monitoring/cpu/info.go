package cpu

import (
	"fmt"
	"runtime"

	gopsutilCPU "github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
)

// GetHostInfo retrieves static processor information for the popup header
func GetHostInfo() (*HostInfo, error) {
	cpuStats, err := gopsutilCPU.Info()
	if err != nil {
		return nil, err
	}

	if len(cpuStats) == 0 {
		return nil, fmt.Errorf("no CPU information available")
	}

	logical, err := gopsutilCPU.Counts(true)
	if err != nil {
		return nil, fmt.Errorf("failed to count logical cores: %w", err)
	}

	physical, err := gopsutilCPU.Counts(false)
	if err != nil {
		physical = 0
	}

	info := &HostInfo{
		ModelName:     cpuStats[0].ModelName,
		VendorID:      cpuStats[0].VendorID,
		LogicalCores:  logical,
		PhysicalCores: physical,
		Architecture:  runtime.GOARCH,
	}

	// Virtualization detection needs privileges on some hosts; treat failure as bare metal
	if system, role, err := host.Virtualization(); err == nil {
		info.IsVirtual = role == "guest"
		info.Hypervisor = system
	}

	return info, nil
}

// Title is the one-line description shown above the usage lines
func (h *HostInfo) Title() string {
	if h == nil {
		return ""
	}

	name := h.ModelName
	if name == "" {
		name = h.VendorID
	}
	if name == "" {
		name = h.Architecture
	}

	title := fmt.Sprintf("%s (%d threads)", name, h.LogicalCores)
	if h.IsVirtual && h.Hypervisor != "" {
		title += " on " + h.Hypervisor
	}
	return title
}
