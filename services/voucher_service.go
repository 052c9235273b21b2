package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/kiprono589/savanna_tours/configs"
	"github.com/kiprono589/savanna_tours/database"
	"github.com/kiprono589/savanna_tours/models"
)

// GenerateAndStoreVoucher renders a confirmed booking's voucher PDF, uploads
// it to Cloudinary and records the URL on the booking. Failures are logged;
// the voucher can always be re-rendered on demand.
func GenerateAndStoreVoucher(booking models.Booking) {
	pdfBytes, err := RenderVoucherPDF(booking)
	if err != nil {
		log.Printf("🔥 Failed to render voucher for booking %s: %v", booking.Reference, err)
		return
	}

	uploadURL, err := uploadVoucher(pdfBytes, booking.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload voucher for booking %s: %v", booking.Reference, err)
		return
	}

	if err := database.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Update("voucher_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to save voucher URL for booking %s: %v", booking.Reference, err)
		return
	}
	log.Printf("✅ Voucher generated for booking %s", booking.Reference)
}

// RenderVoucherPDF produces the voucher as PDF bytes for streaming or upload.
func RenderVoucherPDF(booking models.Booking) ([]byte, error) {
	html, err := renderVoucherHTML(booking)
	if err != nil {
		return nil, err
	}
	return generatePDFFromHTML(html)
}

func renderVoucherHTML(booking models.Booking) (string, error) {
	tmpl, err := template.ParseFiles("templates/voucher.html")
	if err != nil {
		return "", err
	}

	guestName := booking.GuestName
	if booking.UserID != nil {
		var user models.User
		if err := database.DB.First(&user, "id = ?", *booking.UserID).Error; err == nil {
			guestName = user.FullName
		}
	}

	amount := "See your custom quote"
	if booking.TotalAmount != nil {
		amount = fmt.Sprintf("%s %.2f", booking.Currency, *booking.TotalAmount)
	}

	data := struct {
		Reference    string
		GuestName    string
		PackageTitle string
		TravelDate   string
		Participants int
		Amount       string
		IssuedOn     string
	}{
		Reference:    booking.Reference,
		GuestName:    guestName,
		PackageTitle: booking.PackageTitle,
		TravelDate:   booking.TravelDate.Format("January 2, 2006"),
		Participants: booking.Participants,
		Amount:       amount,
		IssuedOn:     time.Now().Format("January 2, 2006"),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadVoucher(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("vouchers/%s", reference),
		Folder:       "savanna_tours_vouchers",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}
	return uploadResult.SecureURL, nil
}
