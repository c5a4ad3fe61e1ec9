// Package mailqueue decouples outbound mail from the request path. Handlers
// enqueue a job and return immediately; a single worker goroutine drains the
// queue, so mail-provider latency or failure never blocks an HTTP response.
package mailqueue

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"quotevault/internal/email"
)

type Job struct {
	ID   string
	To   string
	Link string
}

type Queue struct {
	jobs   chan Job
	sender *email.Sender
	log    zerolog.Logger
}

func New(sender *email.Sender, log zerolog.Logger) *Queue {
	return &Queue{
		jobs:   make(chan Job, 64),
		sender: sender,
		log:    log,
	}
}

// Enqueue hands a reset mail to the worker. Never blocks: when the buffer is
// full the job is dropped and logged, and the user must resubmit.
func (q *Queue) Enqueue(to, link string) {
	job := Job{ID: uuid.NewString(), To: to, Link: link}
	select {
	case q.jobs <- job:
		q.log.Info().Str("job", job.ID).Str("to", to).Msg("reset mail queued")
	default:
		q.log.Error().Str("to", to).Msg("mail queue full, dropping job")
	}
}

// Run consumes jobs until the queue is closed. Call in a goroutine.
func (q *Queue) Run() {
	for job := range q.jobs {
		if err := q.sender.SendPasswordReset(job.To, job.Link); err != nil {
			q.log.Error().Err(err).Str("job", job.ID).Msg("reset mail failed")
			continue
		}
		q.log.Info().Str("job", job.ID).Msg("reset mail sent")
	}
}

// Close stops the worker after the remaining jobs drain.
func (q *Queue) Close() {
	close(q.jobs)
}
