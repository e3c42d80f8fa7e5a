package routes

import (
	"carwash/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addReportRoutes(rg *gin.RouterGroup, reports *handlers.ReportHandler, reminders *handlers.ReminderHandler) {
	report := rg.Group(PathReport)
	{
		report.GET("/clients-to-contact", reports.ClientsToContact)
		report.GET("/wash-statistics", reports.WashStatistics)
		report.GET("/customer-activity/:customerId", reports.CustomerActivity)
		report.POST("/contact-reminders", reminders.SendReminders)
	}
}
