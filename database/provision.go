package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	config "github.com/kiprono589/savanna_tours/configs"
	"github.com/kiprono589/savanna_tours/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// SetupStatus reports what provisioning found, so operators can tell a fresh
// store from a partially created one.
type SetupStatus struct {
	NeedsSetup    bool     `json:"needs_setup"`
	Reason        string   `json:"reason"`
	MissingTables []string `json:"missing_tables,omitempty"`
}

// ProvisionError identifies the provisioning step that failed. Steps already
// completed are left in place; a retry finishes the remainder.
type ProvisionError struct {
	Step string
	Err  error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("provisioning failed at step %q: %v", e.Step, e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

var requiredTables = []string{
	"users",
	"destinations",
	"packages",
	"bookings",
	"inquiries",
	"reviews",
	"testimonials",
	"settings",
}

func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Destination{},
		&models.Package{},
		&models.Booking{},
		&models.Inquiry{},
		&models.Review{},
		&models.Testimonial{},
		&models.Setting{},
	}
}

// CheckSetup probes the store for every required table and for the admin
// account. The admin is the last seed step, so a run that failed partway
// still reports needs-setup and a retry finishes the remaining steps. A
// failed probe is treated as "needs setup" rather than an error.
func CheckSetup() SetupStatus {
	if DB == nil {
		return SetupStatus{NeedsSetup: true, Reason: "store unreachable"}
	}

	migrator := DB.Migrator()
	var missing []string
	for _, table := range requiredTables {
		if !migrator.HasTable(table) {
			missing = append(missing, table)
		}
	}
	return evaluateSetup(missing, adminRows())
}

func adminRows() int64 {
	var rows int64
	if err := DB.Model(&models.User{}).Where("role = ?", "admin").Count(&rows).Error; err != nil {
		return -1
	}
	return rows
}

// evaluateSetup turns probe results into a status. markerRows < 0 means the
// marker probe itself failed.
func evaluateSetup(missing []string, markerRows int64) SetupStatus {
	if len(missing) > 0 {
		return SetupStatus{
			NeedsSetup:    true,
			Reason:        "missing storage structures",
			MissingTables: missing,
		}
	}
	if markerRows < 0 {
		return SetupStatus{NeedsSetup: true, Reason: "setup marker probe failed"}
	}
	if markerRows > 0 {
		return SetupStatus{NeedsSetup: false, Reason: "already set up"}
	}
	return SetupStatus{NeedsSetup: true, Reason: "structures present but setup never completed"}
}

// RunProvisioning creates missing tables and seeds reference data. Every step
// is idempotent: tables use create-if-not-exists, seed rows insert-if-absent
// keyed by natural uniqueness (setting key, name, email). Running it against
// an already seeded store performs zero writes.
func RunProvisioning() (SetupStatus, error) {
	status := CheckSetup()
	if !status.NeedsSetup {
		log.Println("Provisioning skipped: " + status.Reason)
		return status, nil
	}
	if DB == nil {
		return status, &ProvisionError{Step: "connect", Err: errors.New("database not initialised")}
	}

	if err := DB.AutoMigrate(allModels()...); err != nil {
		return status, &ProvisionError{Step: "migrate", Err: err}
	}

	for _, step := range provisionSteps() {
		if err := step.run(); err != nil {
			return status, &ProvisionError{Step: step.name, Err: err}
		}
	}

	log.Println("✅ Provisioning complete")
	return SetupStatus{NeedsSetup: false, Reason: "provisioning complete"}, nil
}

type provisionStep struct {
	name string
	run  func() error
}

// provisionSteps lists the seed steps in execution order. The admin seed must
// stay last: its row is the completed-setup marker CheckSetup looks for, so a
// failure in any step keeps the store marked as needing setup.
func provisionSteps() []provisionStep {
	return []provisionStep{
		{"seed settings", seedSettings},
		{"seed destinations", seedDestinations},
		{"seed packages", seedPackages},
		{"seed testimonials", seedTestimonials},
		{"seed admin", seedAdmin},
	}
}

func jsonValue(v interface{}) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

func seedSettings() error {
	defaults := []models.Setting{
		{Key: "site_name", Value: jsonValue("Savanna Tours"), Category: "general", Description: "Public site name"},
		{Key: "contact_email", Value: jsonValue("bookings@savannatours.co.ke"), Category: "contact", Description: "Inbox for booking and inquiry notifications"},
		{Key: "whatsapp_number", Value: jsonValue("+254700000000"), Category: "contact", Description: "WhatsApp contact shown on the storefront"},
		{Key: "default_currency", Value: jsonValue("USD"), Category: "pricing", Description: "Display currency for package prices"},
		{Key: "booking_notice_days", Value: jsonValue(3), Category: "booking", Description: "Minimum days between submission and travel date"},
	}

	for _, setting := range defaults {
		var count int64
		if err := DB.Model(&models.Setting{}).Where("key = ?", setting.Key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&setting).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedDestinations() error {
	destinations := []models.Destination{
		{Name: "Maasai Mara", Region: "Narok County", Description: "Rolling savannah famed for the great wildebeest migration and big cat sightings.", Featured: true},
		{Name: "Amboseli", Region: "Kajiado County", Description: "Elephant herds against the backdrop of Mount Kilimanjaro.", Featured: true},
		{Name: "Diani Beach", Region: "Kwale County", Description: "White sand beach stop for post-safari downtime."},
	}

	for _, destination := range destinations {
		var count int64
		if err := DB.Model(&models.Destination{}).Where("name = ?", destination.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&destination).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPackages() error {
	maraPrice := 1250.0
	amboseliPrice := 890.0
	trekText := "Contact us for a tailored quote"

	packages := []models.Package{
		{
			Title:           "Maasai Mara Classic",
			Description:     "Three days of game drives across the Mara with a riverside camp stay.",
			DurationDays:    3,
			MaxParticipants: 6,
			PricingMode:     models.PricingModeFixed,
			UnitPrice:       &maraPrice,
			Currency:        "USD",
			Included:        jsonValue([]string{"Park fees", "Game drives", "Full board accommodation", "Transfers from Nairobi"}),
			Excluded:        jsonValue([]string{"International flights", "Travel insurance", "Tips"}),
			Itinerary: jsonValue(map[string]string{
				"day1": "Depart Nairobi, afternoon game drive",
				"day2": "Full day in the reserve with picnic lunch",
				"day3": "Sunrise drive, return to Nairobi",
			}),
			Activities: jsonValue([]string{"Game drives", "Maasai village visit"}),
			Featured:   true,
		},
		{
			Title:           "Amboseli Elephant Trail",
			Description:     "Two days tracking elephant herds under Kilimanjaro.",
			DurationDays:    2,
			MaxParticipants: 8,
			PricingMode:     models.PricingModeFixed,
			UnitPrice:       &amboseliPrice,
			Currency:        "USD",
			Included:        jsonValue([]string{"Park fees", "Game drives", "Full board accommodation"}),
			Excluded:        jsonValue([]string{"Flights", "Tips"}),
			Itinerary: jsonValue(map[string]string{
				"day1": "Morning transfer, evening game drive",
				"day2": "Observation hill, return transfer",
			}),
		},
		{
			Title:           "Mount Kenya Private Trek",
			Description:     "Custom-routed trek with private guides; group size and route set the price.",
			DurationDays:    5,
			MaxParticipants: 12,
			PricingMode:     models.PricingModeCustom,
			PriceText:       &trekText,
			Currency:        "USD",
			Included:        jsonValue([]string{"Guides", "Porters", "Mountain huts"}),
			Excluded:        jsonValue([]string{"Equipment rental"}),
		},
	}

	for _, pkg := range packages {
		var count int64
		if err := DB.Model(&models.Package{}).Where("title = ?", pkg.Title).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&pkg).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedTestimonials() error {
	testimonials := []models.Testimonial{
		{Name: "Hannah W.", Email: "hannah@example.com", Rating: 5, Comment: "The Mara trip was flawlessly organised, our guide knew exactly where the cats were.", Approved: true, Featured: true},
		{Name: "Pieter V.", Email: "pieter@example.com", Rating: 4, Comment: "Great value and honest communication throughout the booking.", Approved: true},
	}

	for _, testimonial := range testimonials {
		var count int64
		if err := DB.Model(&models.Testimonial{}).Where("email = ?", testimonial.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&testimonial).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin() error {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	var count int64
	if err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	return nil
}
