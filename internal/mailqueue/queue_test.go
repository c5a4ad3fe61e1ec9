package mailqueue

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"quotevault/internal/email"
)

func TestEnqueueNeverBlocks(t *testing.T) {
	// No worker running and a full buffer: Enqueue must still return
	q := New(email.NewSender("", "", "", "", "noreply@test.local"), zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			q.Enqueue("a@x.com", "http://localhost/recover-password/tok")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}

func TestWorkerDrainsQueue(t *testing.T) {
	// Sender without a host logs instead of dialing SMTP
	q := New(email.NewSender("", "", "", "", "noreply@test.local"), zerolog.Nop())

	q.Enqueue("a@x.com", "http://localhost/recover-password/tok")
	q.Enqueue("b@x.com", "http://localhost/recover-password/tok")
	q.Close()

	done := make(chan struct{})
	go func() {
		q.Run() // returns once the closed queue is drained
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not drain the queue")
	}

	assert.Len(t, q.jobs, 0)
}
