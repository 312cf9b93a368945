package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// ProcessReport - снимок потребления ресурсов текущим процессом.
type ProcessReport struct {
	PID           int32
	CPUPercent    float64
	RSS           uint64
	SystemMemory  uint64
	SystemUsedPct float64
	Goroutines    int
	PooledFrames  int64
	ReusedFrames  int64
}

// CollectReport собирает отчет через gopsutil.
func CollectReport() (ProcessReport, error) {
	pid := int32(os.Getpid())
	proc, err := process.NewProcess(pid)
	if err != nil {
		return ProcessReport{}, fmt.Errorf("не удалось открыть процесс %d: %w", pid, err)
	}

	report := ProcessReport{PID: pid, Goroutines: runtime.NumGoroutine()}

	if report.CPUPercent, err = proc.CPUPercent(); err != nil {
		return report, fmt.Errorf("cpu: %w", err)
	}
	memInfo, err := proc.MemoryInfo()
	if err != nil {
		return report, fmt.Errorf("memory: %w", err)
	}
	report.RSS = memInfo.RSS

	// Системная память не критична: на некоторых платформах недоступна
	if vm, err := mem.VirtualMemory(); err == nil {
		report.SystemMemory = vm.Total
		report.SystemUsedPct = vm.UsedPercent
	}

	stats := Stats()
	report.PooledFrames = stats.Allocated
	report.ReusedFrames = stats.Reused
	return report, nil
}

// String форматирует отчет в стиле остальных сообщений консоли.
func (r ProcessReport) String() string {
	return fmt.Sprintf(
		"--- [RESOURCE REPORT] ---\n"+
			"PID: %d | Goroutines: %d\n"+
			"CPU: %.1f%% | RSS: %.1f MiB\n"+
			"System memory: %.1f MiB (%.1f%% used)\n"+
			"Preview frames: %d allocated, %d reused\n"+
			"-------------------------\n",
		r.PID, r.Goroutines,
		r.CPUPercent, mib(r.RSS),
		mib(r.SystemMemory), r.SystemUsedPct,
		r.PooledFrames, r.ReusedFrames,
	)
}

func mib(b uint64) float64 {
	return float64(b) / (1 << 20)
}
