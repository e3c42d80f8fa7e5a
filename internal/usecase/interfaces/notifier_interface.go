package interfaces

import "context"

// INotifier delivers a text message to a customer phone number.
type INotifier interface {
	Send(ctx context.Context, phone, message string) (providerID string, err error)
}
