package events

import (
	"testing"
	"time"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	ch1, cancel1 := bus.Subscribe()
	defer cancel1()
	ch2, cancel2 := bus.Subscribe()
	defer cancel2()

	bus.Publish(EventDatasetChanged, "cultures")

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			if ev.Type != EventDatasetChanged {
				t.Errorf("subscriber %d: got type %q, want %q", i, ev.Type, EventDatasetChanged)
			}
			if ev.Module != "cultures" {
				t.Errorf("subscriber %d: got module %q, want cultures", i, ev.Module)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d: no event delivered", i)
		}
	}
}

func TestSequenceIDsIncrease(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(EventDatasetChanged, "a")
	bus.Publish(EventDatasetChanged, "b")

	first := <-ch
	second := <-ch
	if second.SequenceID <= first.SequenceID {
		t.Errorf("sequence ids not increasing: %d then %d", first.SequenceID, second.SequenceID)
	}
}

func TestCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	cancel()

	if _, open := <-ch; open {
		t.Error("channel still open after cancel")
	}

	// Publishing after cancel must not panic
	bus.Publish(EventNotification, "")
}

func TestNilBusIsSafe(t *testing.T) {
	var bus *Bus
	bus.Publish(EventDatasetChanged, "x")

	ch, cancel := bus.Subscribe()
	cancel()
	if _, open := <-ch; open {
		t.Error("nil bus subscription should be closed")
	}
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe() // never drained
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			bus.Publish(EventDatasetChanged, "cultures")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}
