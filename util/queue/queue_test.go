package queue

import (
	"context"
	"testing"
	"time"
)

func TestFIFO(t *testing.T) {
	b := New()
	b.Publish("one")
	b.Publish("two")
	b.Publish("three")

	ctx := context.Background()
	for _, want := range []string{"one", "two", "three"} {
		got, err := b.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
	if b.Len() != 0 {
		t.Fatalf("queue not drained: %d left", b.Len())
	}
}

func TestNextBlocksUntilPublish(t *testing.T) {
	b := New()
	done := make(chan string, 1)

	go func() {
		ev, err := b.Next(context.Background())
		if err != nil {
			done <- "err:" + err.Error()
			return
		}
		done <- ev
	}()

	select {
	case v := <-done:
		t.Fatalf("Next returned %q before publish", v)
	case <-time.After(20 * time.Millisecond):
	}

	b.Publish("hello")

	select {
	case v := <-done:
		if v != "hello" {
			t.Fatalf("got %q, want hello", v)
		}
	case <-time.After(time.Second):
		t.Fatal("Next did not wake after publish")
	}
}

func TestNextCancellation(t *testing.T) {
	b := New()
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() {
		_, err := b.Next(ctx)
		errc <- err
	}()

	cancel()

	select {
	case err := <-errc:
		if err == nil {
			t.Fatal("expected error after cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("Next did not return after cancellation")
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	b := New()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			b.Publish("event")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked with no consumer")
	}
	if b.Len() != 1000 {
		t.Fatalf("got %d events, want 1000", b.Len())
	}
}

func TestTwoConsumersSplitEvents(t *testing.T) {
	// delivery is exactly-once, not broadcast
	b := New()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	got := make(chan string, 2)
	for i := 0; i < 2; i++ {
		go func() {
			ev, err := b.Next(ctx)
			if err == nil {
				got <- ev
			}
		}()
	}

	b.Publish("a")
	b.Publish("b")

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-got:
			if seen[ev] {
				t.Fatalf("event %q delivered twice", ev)
			}
			seen[ev] = true
		case <-time.After(time.Second):
			t.Fatal("consumers did not receive both events")
		}
	}
}
