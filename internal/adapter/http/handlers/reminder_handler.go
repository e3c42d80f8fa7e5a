package handlers

import (
	"carwash/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type reminderSummaryResponse struct {
	Attempted int `json:"attempted"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
}

// ReminderHandler triggers a contact reminder run on demand, outside the
// cron schedule.
type ReminderHandler struct {
	usecase usecase.IContactReminderUseCase
}

func NewReminderHandler(uc usecase.IContactReminderUseCase) *ReminderHandler {
	return &ReminderHandler{usecase: uc}
}

func (h *ReminderHandler) SendReminders(c *gin.Context) {
	summary, err := h.usecase.SendReminders(c.Request.Context())
	if err != nil {
		renderError(c, internalError("Error sending contact reminders", err))
		return
	}
	c.JSON(http.StatusOK, reminderSummaryResponse{
		Attempted: summary.Attempted,
		Sent:      summary.Sent,
		Failed:    summary.Failed,
	})
}
