package main

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// Instance is the JSON input schema: an identity, optional location
// names and the dense cost matrix.
type Instance struct {
	Name      string      `json:"name"`
	Comment   string      `json:"comment,omitempty"`
	Locations []string    `json:"locations,omitempty"`
	Costs     [][]float64 `json:"costs"`
}

// DayPlan is one day of the solved itinerary.
type DayPlan struct {
	Day   int      `json:"day"`
	Stops []int    `json:"stops"`
	Names []string `json:"names,omitempty"`
	Cost  float64  `json:"cost"`
}

// Solution is the JSON output schema: the instance identity echoed
// back, the plan, and the run's environment.
type Solution struct {
	Name      string    `json:"name"`
	Comment   string    `json:"comment,omitempty"`
	ID        string    `json:"id"`
	Days      []DayPlan `json:"days"`
	TotalCost float64   `json:"total_cost"`
	SolveMS   int64     `json:"solve_ms"`
	System    SysInfo   `json:"system"`
}

// SysInfo saves the basic system information of the solving machine.
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

// sysInfo gathers SysInfo best-effort; probe failures leave fields
// empty rather than failing the solve.
func sysInfo() SysInfo {
	var info SysInfo
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return info
}
