package events

import (
	"sync"
	"testing"
	"time"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var got []int
	for i := 0; i < 3; i++ {
		bus.SubscribePaymentRecorded(func(ev PaymentRecorded) {
			mu.Lock()
			got = append(got, ev.OrderID)
			mu.Unlock()
		})
	}

	bus.PublishPaymentRecorded(PaymentRecorded{PaymentID: 1, OrderID: 7, Amount: 40})
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(got))
	}
	for _, id := range got {
		if id != 7 {
			t.Errorf("delivered order id = %d, want 7", id)
		}
	}
}

func TestBusPublishAfterCloseIsNoOp(t *testing.T) {
	bus := NewBus()
	delivered := make(chan struct{}, 1)
	bus.SubscribePaymentRecorded(func(PaymentRecorded) {
		delivered <- struct{}{}
	})
	bus.Close()

	bus.PublishPaymentRecorded(PaymentRecorded{OrderID: 1})

	select {
	case <-delivered:
		t.Fatal("event delivered after Close")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusOrderedDeliveryPerSubscriber(t *testing.T) {
	bus := NewBus()
	var mu sync.Mutex
	var seq []int
	bus.SubscribePaymentRecorded(func(ev PaymentRecorded) {
		mu.Lock()
		seq = append(seq, ev.PaymentID)
		mu.Unlock()
	})

	for i := 1; i <= 5; i++ {
		bus.PublishPaymentRecorded(PaymentRecorded{PaymentID: i})
	}
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(seq) != 5 {
		t.Fatalf("expected 5 deliveries, got %d", len(seq))
	}
	for i, id := range seq {
		if id != i+1 {
			t.Fatalf("out of order delivery: %v", seq)
		}
	}
}
