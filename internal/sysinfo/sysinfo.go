// Package sysinfo samples host CPU and memory usage for the footer status.
package sysinfo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/etbcor/tomo/internal/config"
	"github.com/etbcor/tomo/internal/logging"
)

var logger = logging.For("sysinfo")

// GraphSamples is the number of bars in the CPU graph.
const GraphSamples = 10

var bars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// Sampler keeps a short CPU history and the last memory reading. It is safe
// for concurrent use.
type Sampler struct {
	mu      sync.Mutex
	history []float64
	ram     float64

	cpuPercent func(context.Context) (float64, error)
	memPercent func(context.Context) (float64, error)
}

// New returns a sampler reading the host through gopsutil.
func New() *Sampler {
	return &Sampler{cpuPercent: hostCPU, memPercent: hostMem}
}

func hostCPU(ctx context.Context) (float64, error) {
	p, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	return p[0], nil
}

func hostMem(ctx context.Context) (float64, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return v.UsedPercent, nil
}

// Sample takes one CPU and memory reading.
func (s *Sampler) Sample(ctx context.Context) error {
	c, err := s.cpuPercent(ctx)
	if err != nil {
		return fmt.Errorf("reading cpu usage: %w", err)
	}
	m, err := s.memPercent(ctx)
	if err != nil {
		return fmt.Errorf("reading memory usage: %w", err)
	}
	s.Push(c, m)
	return nil
}

// Run samples once right away and then every interval until ctx is done.
// A process runs one sampler for all of its desktops, which only read it.
func (s *Sampler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for ctx.Err() == nil {
		if err := s.Sample(ctx); err != nil && ctx.Err() == nil {
			logger.Debug("status sample failed", "err", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Push records a reading. Values are clamped to 0..100.
func (s *Sampler) Push(cpuPct, memPct float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) >= GraphSamples {
		s.history = s.history[1:]
	}
	s.history = append(s.history, clamp(cpuPct))
	s.ram = clamp(memPct)
}

func clamp(v float64) float64 {
	return min(max(v, 0), 100)
}

// Graph returns the CPU graph. The result always has the same width so the
// footer does not shift as samples arrive.
func (s *Sampler) Graph() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := 0.0
	if n := len(s.history); n > 0 {
		current = s.history[n-1]
	}
	var sb strings.Builder
	sb.WriteString("CPU:")
	sb.WriteString(strings.Repeat(" ", GraphSamples-len(s.history)))
	for _, u := range s.history {
		sb.WriteString(bar(u))
	}
	fmt.Fprintf(&sb, " %3.0f%%", current)
	return sb.String()
}

func bar(usage float64) string {
	i := min(int(usage/12.5), len(bars)-1)
	if config.UseASCIIOnly {
		return string(" .:-=+*#"[i])
	}
	return bars[i]
}

// Status returns the CPU graph followed by memory usage.
func (s *Sampler) Status() string {
	graph := s.Graph()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("%s RAM:%3.0f%%", graph, s.ram)
}
