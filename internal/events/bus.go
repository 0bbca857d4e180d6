// Package events carries the cross-aggregate side effects between
// services as explicit messages. Recording a payment must create a paid
// invoice elsewhere; rather than letting the payment code write into the
// invoice store directly, it publishes a PaymentRecorded event that the
// invoice-creation subscriber consumes.
package events

import (
	"log"
	"sync"
	"time"
)

// PaymentRecorded is published after a payment has been accepted and
// persisted against an order.
type PaymentRecorded struct {
	PaymentID  int
	OrderID    int
	Amount     float64
	RecordedAt time.Time
}

// Bus is a small in-process publish/subscribe fan-out. Delivery is
// asynchronous: each subscriber gets its own buffered channel drained by
// its own goroutine, so a slow consumer never blocks the payment path.
type Bus struct {
	mu   sync.Mutex
	subs []chan PaymentRecorded
	done chan struct{}
	wg   sync.WaitGroup
}

func NewBus() *Bus {
	return &Bus{done: make(chan struct{})}
}

// SubscribePaymentRecorded registers a handler invoked for every
// published payment event, in order, on a dedicated goroutine.
func (b *Bus) SubscribePaymentRecorded(handler func(PaymentRecorded)) {
	ch := make(chan PaymentRecorded, 64)

	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for ev := range ch {
			handler(ev)
		}
	}()
}

// PublishPaymentRecorded fans the event out to all subscribers. If a
// subscriber's buffer is full the event is dropped for that subscriber
// and logged; payment recording must never block on downstream work.
func (b *Bus) PublishPaymentRecorded(ev PaymentRecorded) {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		return
	default:
	}

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			log.Printf("[Events] dropping payment event for order %d: subscriber backlog full", ev.OrderID)
		}
	}
}

// Close stops delivery and waits for subscribers to drain their backlogs.
func (b *Bus) Close() {
	b.mu.Lock()
	select {
	case <-b.done:
		b.mu.Unlock()
		return
	default:
	}
	close(b.done)
	for _, ch := range b.subs {
		close(ch)
	}
	b.mu.Unlock()

	b.wg.Wait()
}
