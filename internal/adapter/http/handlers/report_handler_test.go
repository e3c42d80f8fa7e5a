package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"carwash/internal/adapter/http/handlers/mocks"
	"carwash/internal/domain/entities"
	"carwash/internal/domain/reporting"
	"carwash/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"go.uber.org/mock/gomock"
)

func newReportRouter(t *testing.T) (*gin.Engine, *mocks.MockIReportUseCase, *mocks.MockIContactReminderUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockIReportUseCase(ctrl)
	reminders := mocks.NewMockIContactReminderUseCase(ctrl)
	h := NewReportHandler(reports)
	rh := NewReminderHandler(reminders)

	r := gin.New()
	r.GET("/Report/clients-to-contact", h.ClientsToContact)
	r.GET("/Report/wash-statistics", h.WashStatistics)
	r.GET("/Report/customer-activity/:customerId", h.CustomerActivity)
	r.POST("/Report/contact-reminders", rh.SendReminders)
	return r, reports, reminders
}

func TestReportHandler_ClientsToContact(t *testing.T) {
	t.Run("report", func(t *testing.T) {
		r, reports, _ := newReportRouter(t)
		when := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
		lastType := entities.WashTypeLaJoya
		reports.EXPECT().ClientsToContact(gomock.Any()).Return(reporting.ClientsToContactReport{
			Message: "Found 1 clients that need to be contacted.",
			Clients: []reporting.ClientToContact{{
				Customer: entities.Customer{IDNumber: "C1", WashPreference: entities.WashPreferenceMonthly},
				Vehicles: []reporting.VehicleContactStatus{{LicensePlate: "V1", DaysSinceLastWash: 40, NeedsContact: true, LastWashType: &lastType}},
				Priority: 75,
			}},
			TotalClients: 1,
			GeneratedAt:  when,
		}, nil)

		w := serve(r, http.MethodGet, "/Report/clients-to-contact", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if gjson.Get(body, "clients.0.priority").Int() != 75 || gjson.Get(body, "total_clients").Int() != 1 {
			t.Fatalf("unexpected body %s", body)
		}
		if gjson.Get(body, "clients.0.vehicles.0.last_wash_type").String() != "La Joya" {
			t.Fatalf("unexpected wash type label in %s", body)
		}
	})

	t.Run("failure", func(t *testing.T) {
		r, reports, _ := newReportRouter(t)
		reports.EXPECT().ClientsToContact(gomock.Any()).Return(reporting.ClientsToContactReport{}, errors.New("load vehicles: disk"))

		w := serve(r, http.MethodGet, "/Report/clients-to-contact", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := w.Body.String()
		if gjson.Get(body, "message").String() != "Error generating client contact report" || gjson.Get(body, "error").String() != "load vehicles: disk" {
			t.Fatalf("unexpected body %s", body)
		}
	})
}

func TestReportHandler_WashStatistics(t *testing.T) {
	r, reports, _ := newReportRouter(t)
	reports.EXPECT().WashStatistics(gomock.Any()).Return(reporting.WashStatistics{
		TotalCarWashes:       3,
		WashTypeDistribution: []reporting.WashTypeCount{{WashType: entities.WashTypePremium, Count: 3}},
		StatusDistribution:   []reporting.StatusCount{{Status: entities.WashStatusInProgress, Count: 3}},
		RevenueLastMonth:     decimal.NewFromInt(40680),
	}, nil)

	w := serve(r, http.MethodGet, "/Report/wash-statistics", "")
	body := w.Body.String()
	if w.Code != http.StatusOK || gjson.Get(body, "revenue_last_month").Float() != 40680 {
		t.Fatalf("unexpected response %d %s", w.Code, body)
	}
	if gjson.Get(body, "status_distribution.0.name").String() != "In Process" {
		t.Fatalf("unexpected status label in %s", body)
	}
}

func TestReportHandler_CustomerActivity(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, reports, _ := newReportRouter(t)
		reports.EXPECT().CustomerActivity(gomock.Any(), "404").Return(reporting.CustomerActivity{}, usecase.ErrCustomerNotFound)

		w := serve(r, http.MethodGet, "/Report/customer-activity/404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, reports, _ := newReportRouter(t)
		reports.EXPECT().CustomerActivity(gomock.Any(), "C1").Return(reporting.CustomerActivity{
			Customer:    entities.Customer{IDNumber: "C1"},
			TotalWashes: 2,
			TotalSpent:  decimal.NewFromInt(18080),
		}, nil)

		w := serve(r, http.MethodGet, "/Report/customer-activity/C1", "")
		body := w.Body.String()
		if w.Code != http.StatusOK || gjson.Get(body, "total_spent").Float() != 18080 || gjson.Get(body, "customer.id_number").String() != "C1" {
			t.Fatalf("unexpected response %d %s", w.Code, body)
		}
	})
}

func TestReminderHandler_SendReminders(t *testing.T) {
	r, _, reminders := newReportRouter(t)
	reminders.EXPECT().SendReminders(gomock.Any()).Return(usecase.ReminderSummary{Attempted: 3, Sent: 2, Failed: 1}, nil)

	w := serve(r, http.MethodPost, "/Report/contact-reminders", "")
	body := w.Body.String()
	if w.Code != http.StatusOK || gjson.Get(body, "sent").Int() != 2 || gjson.Get(body, "failed").Int() != 1 {
		t.Fatalf("unexpected response %d %s", w.Code, body)
	}
}
