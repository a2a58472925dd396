package app

import (
	"context"

	"fleet-dispatch-go/internal/service/hr"
	"fleet-dispatch-go/internal/transport/kafka"
)

// makeDriverStatusKafka adapts the HR processor to the consumer's handler
// contract. Events with an unknown employment status can never succeed on
// retry, so they come back as permanent errors and the consumer skips them.
func makeDriverStatusKafka(p *hr.Processor) kafka.HandleFunc {
	return func(ctx context.Context, ev hr.Event) error {
		err := p.Process(ctx, ev)
		if err != nil && !ev.EmploymentStatus.Valid() {
			return kafka.Permanent(err)
		}
		return err
	}
}
