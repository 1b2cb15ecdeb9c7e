package state

import "testing"

func TestCellSetNotifiesSubscribersInOrder(t *testing.T) {
	c := NewCell(1)

	var got []int
	c.Subscribe(func(v int) { got = append(got, v*10) })
	c.Subscribe(func(v int) { got = append(got, v*100) })

	c.Set(2)

	if c.Get() != 2 {
		t.Fatalf("Get() = %d, want 2", c.Get())
	}
	want := []int{20, 200}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestCellUnsubscribe(t *testing.T) {
	c := NewCell("a")
	calls := 0
	unsubscribe := c.Subscribe(func(string) { calls++ })

	c.Set("b")
	unsubscribe()
	c.Set("c")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if c.Get() != "c" {
		t.Errorf("Get() = %q, want %q", c.Get(), "c")
	}
}

func TestCellUpdate(t *testing.T) {
	type point struct{ X, Y int }
	c := NewCell(point{1, 2})
	c.Update(func(p point) point { p.X += 5; return p })

	if got := c.Get(); got != (point{6, 2}) {
		t.Errorf("Get() = %+v, want {6 2}", got)
	}
}

func TestCellSubscriberMaySetOtherCell(t *testing.T) {
	src := NewCell("")
	hidden := NewCell(true)
	src.Subscribe(func(v string) {
		if v != "" {
			hidden.Set(false)
		}
	})

	src.Set("doc")

	if hidden.Get() {
		t.Error("subscriber should have un-hidden the dependent cell on the same tick")
	}
}

func TestCounterIncrement(t *testing.T) {
	c := NewCounter(5)
	if got := Increment(c); got != 6 {
		t.Errorf("Increment() = %d, want 6", got)
	}
	if got := Increment(c); got != 7 {
		t.Errorf("Increment() = %d, want 7", got)
	}
}
