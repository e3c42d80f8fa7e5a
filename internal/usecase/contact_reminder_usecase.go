package usecase

import (
	"carwash/internal/domain/reporting"
	"carwash/internal/domain/search"
	"carwash/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
	"strings"
)

// ReminderSummary counts the outcome of one reminder run.
type ReminderSummary struct {
	Attempted int
	Sent      int
	Failed    int
}

// IContactReminderUseCase messages every customer on the clients-to-contact
// report.
type IContactReminderUseCase interface {
	SendReminders(ctx context.Context) (ReminderSummary, error)
}

type ContactReminderUseCase struct {
	reports  IReportUseCase
	notifier interfaces.INotifier
}

var _ IContactReminderUseCase = (*ContactReminderUseCase)(nil)

func NewContactReminderUseCase(reports IReportUseCase, notifier interfaces.INotifier) *ContactReminderUseCase {
	return &ContactReminderUseCase{reports: reports, notifier: notifier}
}

// SendReminders fails only when the report cannot be built. A failed delivery
// is logged and counted, and the run moves on to the next customer.
func (u *ContactReminderUseCase) SendReminders(ctx context.Context) (ReminderSummary, error) {
	report, err := u.reports.ClientsToContact(ctx)
	if err != nil {
		return ReminderSummary{}, err
	}

	var summary ReminderSummary
	for _, client := range report.Clients {
		if err := ctx.Err(); err != nil {
			log.Printf("[reminder][usecase] run interrupted sent=%d failed=%d err=%v", summary.Sent, summary.Failed, err)
			return summary, err
		}

		summary.Attempted++
		id, err := u.notifier.Send(ctx, client.Customer.Phone, ReminderMessage(client))
		if err != nil {
			summary.Failed++
			log.Printf("[reminder][usecase] send failed customer=%s err=%v", client.Customer.IDNumber, err)
			continue
		}
		summary.Sent++
		log.Printf("[reminder][usecase] sent customer=%s priority=%d provider_id=%s", client.Customer.IDNumber, client.Priority, id)
	}

	log.Printf("[reminder][usecase] run finished attempted=%d sent=%d failed=%d", summary.Attempted, summary.Sent, summary.Failed)
	return summary, nil
}

// ReminderMessage renders the text sent to one customer.
func ReminderMessage(client reporting.ClientToContact) string {
	plates := make([]string, 0, client.VehiclesNeedingWash)
	for _, v := range client.Vehicles {
		if v.NeedsContact {
			plates = append(plates, v.LicensePlate)
		}
	}

	return fmt.Sprintf(
		"Hi %s, it has been a while since your last wash (%s). Book your next visit before %s.",
		client.Customer.FullName,
		strings.Join(plates, ", "),
		client.RecommendedContactDate.Format(search.DateLayout),
	)
}
