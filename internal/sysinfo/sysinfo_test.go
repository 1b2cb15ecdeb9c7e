package sysinfo

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestGraphWidthIsFixed(t *testing.T) {
	s := &Sampler{}
	want := ansi.StringWidth(s.Graph())

	for i, v := range []float64{0, 12, 40, 99, 100, 150, -3, 50, 60, 70, 80, 90} {
		s.Push(v, 10)
		if got := ansi.StringWidth(s.Graph()); got != want {
			t.Fatalf("after %d samples width = %d, want %d", i+1, got, want)
		}
	}
	if want != 4+GraphSamples+5 {
		t.Errorf("width = %d, want %d", want, 4+GraphSamples+5)
	}
}

func TestHistoryIsBounded(t *testing.T) {
	s := &Sampler{}
	for range GraphSamples * 3 {
		s.Push(50, 50)
	}
	if len(s.history) != GraphSamples {
		t.Errorf("history = %d, want %d", len(s.history), GraphSamples)
	}
}

func TestPushClamps(t *testing.T) {
	s := &Sampler{}
	s.Push(250, -1)
	if s.history[0] != 100 || s.ram != 0 {
		t.Errorf("cpu = %v ram = %v", s.history[0], s.ram)
	}
}

func TestSample(t *testing.T) {
	tests := []struct {
		name    string
		cpu     func(context.Context) (float64, error)
		wantErr bool
	}{
		{"ok", func(context.Context) (float64, error) { return 42, nil }, false},
		{"cpu error", func(context.Context) (float64, error) { return 0, errors.New("boom") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Sampler{
				cpuPercent: tt.cpu,
				memPercent: func(context.Context) (float64, error) { return 30, nil },
			}
			err := s.Sample(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			want := "CPU:" + strings.Repeat(" ", GraphSamples-1) + "▄  42% RAM: 30%"
			if got := s.Status(); got != want {
				t.Errorf("Status() = %q, want %q", got, want)
			}
		})
	}
}

func TestRunSamplesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	s := &Sampler{
		cpuPercent: func(context.Context) (float64, error) {
			if calls.Add(1) == 3 {
				cancel()
			}
			return 10, nil
		},
		memPercent: func(context.Context) (float64, error) { return 20, nil },
	}

	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("sampled %d times, want 3", got)
	}
}
