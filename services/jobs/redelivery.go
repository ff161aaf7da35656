package jobs

import (
	"context"
	"log"
	"time"

	"agenz_site/models"
	"agenz_site/services"

	"gorm.io/gorm"
)

// redeliveryBatchSize caps how many failed submissions one pass retries
const redeliveryBatchSize = 25

// RedeliverFailedSubmissions retries archived submissions whose delivery failed
// and which still have attempts left. It returns the number that were delivered.
func RedeliverFailedSubmissions(ctx context.Context, database *gorm.DB, dispatcher *services.Dispatcher) int {
	pending, err := services.GetRedeliverableSubmissions(database, redeliveryBatchSize)
	if err != nil {
		log.Printf("Error fetching submissions for redelivery: %v", err)
		return 0
	}
	if len(pending) == 0 {
		return 0
	}

	log.Printf("Retrying delivery of %d submission(s)", len(pending))

	delivered := 0
	for _, record := range pending {
		if ctx.Err() != nil {
			break
		}
		result := dispatcher.Redeliver(ctx, record)
		if result.Status() == models.DeliveryDelivered {
			delivered++
		}
	}

	log.Printf("Redelivery pass finished: %d/%d delivered", delivered, len(pending))
	return delivered
}

// StartRedelivery runs RedeliverFailedSubmissions every interval until ctx is cancelled
func StartRedelivery(ctx context.Context, database *gorm.DB, dispatcher *services.Dispatcher, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RedeliverFailedSubmissions(ctx, database, dispatcher)
			}
		}
	}()
}
