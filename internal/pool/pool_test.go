package pool

import (
	"sync"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestBuilderComesBackEmpty(t *testing.T) {
	sb := GetStringBuilder()
	sb.WriteString("╭─ About Me ─╮")
	PutStringBuilder(sb)

	again := GetStringBuilder()
	defer PutStringBuilder(again)
	if again.Len() != 0 {
		t.Fatalf("pooled builder holds %d bytes", again.Len())
	}
}

func TestBuilderSharedAcrossSessions(t *testing.T) {
	// Each SSH session renders frames on its own goroutine.
	var wg sync.WaitGroup
	for session := range 8 {
		wg.Go(func() {
			for frame := range 50 {
				sb := GetStringBuilder()
				sb.WriteString("frame")
				if got := sb.String(); got != "frame" {
					t.Errorf("session %d frame %d: got %q", session, frame, got)
				}
				PutStringBuilder(sb)
			}
		})
	}
	wg.Wait()
}

func TestLayerSlice(t *testing.T) {
	layers := GetLayerSlice()
	if cap(*layers) < 32 {
		t.Errorf("capacity %d, want at least 32", cap(*layers))
	}
	*layers = append(*layers, lipgloss.NewLayer("wallpaper"), lipgloss.NewLayer("footer"))
	PutLayerSlice(layers)

	again := GetLayerSlice()
	defer PutLayerSlice(again)
	if len(*again) != 0 {
		t.Errorf("pooled slice holds %d layers", len(*again))
	}
}

func TestOversizedLayerSliceIsDropped(t *testing.T) {
	big := make([]*lipgloss.Layer, 0, 2048)
	PutLayerSlice(&big)
	if cap(big) != 2048 {
		t.Fatal("slice was modified")
	}
}

func BenchmarkFrameLayers(b *testing.B) {
	for b.Loop() {
		layers := GetLayerSlice()
		for range 12 {
			*layers = append(*layers, nil)
		}
		PutLayerSlice(layers)
	}
}
