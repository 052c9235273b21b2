package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
	"github.com/kiprono589/savanna_tours/services"
)

type DashboardSummaryResponse struct {
	TotalBookings      int64            `json:"total_bookings"`
	PendingBookings    int64            `json:"pending_bookings"`
	PendingInquiries   int64            `json:"pending_inquiries"`
	PendingReviews     int64            `json:"pending_reviews"`
	ConfirmedRevenue   float64          `json:"confirmed_revenue"`
	BookingsLast30Days int64            `json:"bookings_last_30_days"`
	RecentBookings     []models.Booking `json:"recent_bookings"`
}

func GetDashboardSummary(c *fiber.Ctx) error {
	var response DashboardSummaryResponse
	var revenue float64

	database.DB.Model(&models.Booking{}).Count(&response.TotalBookings)
	database.DB.Model(&models.Booking{}).Where("status = ?", services.BookingPending).Count(&response.PendingBookings)
	database.DB.Model(&models.Inquiry{}).Where("status = ?", services.InquiryPending).Count(&response.PendingInquiries)
	database.DB.Model(&models.Review{}).Where("approved = ?", false).Count(&response.PendingReviews)

	database.DB.Model(&models.Booking{}).
		Where("status IN ?", []string{services.BookingConfirmed, services.BookingCompleted}).
		Select("COALESCE(SUM(total_amount), 0)").Row().Scan(&revenue)
	response.ConfirmedRevenue = revenue

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&models.Booking{}).Where("created_at > ?", thirtyDaysAgo).Count(&response.BookingsLast30Days)

	database.DB.Order("created_at desc").Limit(5).Find(&response.RecentBookings)

	return c.JSON(response)
}

// GenerateBookingReport exports bookings in a date range as CSV.
func GenerateBookingReport(c *fiber.Ctx) error {
	startDateStr := c.Query("start_date", time.Now().AddDate(0, -1, 0).Format("2006-01-02"))
	endDateStr := c.Query("end_date", time.Now().Format("2006-01-02"))

	startDate, err := time.Parse("2006-01-02", startDateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid start_date format. Use YYYY-MM-DD."})
	}
	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid end_date format. Use YYYY-MM-DD."})
	}
	endDate = endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	var bookings []models.Booking
	database.DB.
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Order("created_at desc").
		Find(&bookings)

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	headers := []string{"Reference", "Date", "Customer", "Package", "Travel Date", "Participants", "Amount", "Currency", "Status"}
	if err := w.Write(headers); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV header"})
	}

	for _, booking := range bookings {
		customer, _ := bookingContact(booking)
		amount := ""
		if booking.TotalAmount != nil {
			amount = fmt.Sprintf("%.2f", *booking.TotalAmount)
		}

		row := []string{
			booking.Reference,
			booking.CreatedAt.Format("2006-01-02 15:04"),
			customer,
			booking.PackageTitle,
			booking.TravelDate.Format("2006-01-02"),
			fmt.Sprintf("%d", booking.Participants),
			amount,
			booking.Currency,
			booking.Status,
		}
		if err := w.Write(row); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV row"})
		}
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="bookings-report.csv"`)
	return c.Send(b.Bytes())
}

// RunSetup triggers provisioning on demand and reports the structured status,
// including which step failed on a partial run.
func RunSetup(c *fiber.Ctx) error {
	status, err := database.RunProvisioning()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": status,
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": status})
}
