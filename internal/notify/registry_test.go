package notify

import (
	"context"
	"testing"
)

func TestMemoryRegistry_BroadcastReachesEverySubscriber(t *testing.T) {
	reg := NewMemoryRegistry()
	ch1, cancel1 := reg.Subscribe("u1")
	defer cancel1()
	ch2, cancel2 := reg.Subscribe("u1")
	defer cancel2()
	other, cancelOther := reg.Subscribe("u2")
	defer cancelOther()

	ev := Envelope{Type: EventDisplayed, Notification: DisplayedNotification{ID: "n1"}}
	reg.Broadcast(context.Background(), "u1", ev)

	for i, ch := range []<-chan Envelope{ch1, ch2} {
		select {
		case got := <-ch:
			if got.Type != EventDisplayed {
				t.Errorf("subscriber %d got event type %s", i, got.Type)
			}
		default:
			t.Errorf("subscriber %d got nothing", i)
		}
	}
	select {
	case got := <-other:
		t.Errorf("other user received %+v", got)
	default:
	}
}

func TestMemoryRegistry_CancelStopsDelivery(t *testing.T) {
	reg := NewMemoryRegistry()
	ch, cancel := reg.Subscribe("u1")
	cancel()

	reg.Broadcast(context.Background(), "u1", Envelope{Type: EventClosed})

	// Channel is closed on cancel, so a receive yields the zero value.
	if got, open := <-ch; open {
		t.Errorf("canceled subscriber received %+v", got)
	}
}

func TestMemoryRegistry_FullSubscriberDoesNotBlock(t *testing.T) {
	reg := NewMemoryRegistry()
	slow, cancel := reg.Subscribe("u1")
	defer cancel()

	// Overfill the buffer; every broadcast past capacity must drop instead
	// of blocking this goroutine.
	for i := 0; i < subscriberBuffer+5; i++ {
		reg.Broadcast(context.Background(), "u1", Envelope{Type: EventDisplayed})
	}

	if got := len(slow); got != subscriberBuffer {
		t.Errorf("subscriber buffered %d events, want %d", got, subscriberBuffer)
	}
}
