package notifications

import (
	"carwash/internal/usecase/interfaces"
	"context"
	"log"

	"github.com/google/uuid"
)

// LogNotifier writes reminders to the log instead of delivering them. It is
// used when no SMS provider is configured.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Send(_ context.Context, phone, message string) (string, error) {
	id := "log-" + uuid.NewString()
	log.Printf("[reminder][log] to=%s id=%s message=%q", phone, id, message)
	return id, nil
}
