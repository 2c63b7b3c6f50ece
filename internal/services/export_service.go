package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"globetrotter/internal/composer"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type ExportServiceInterface interface {
	// ExportOption renders one tier of a cached plan as a PDF and returns the
	// document with a suggested file name.
	ExportOption(ctx context.Context, planID, tierID string) ([]byte, string, error)
}

type ExportService struct {
	itineraries ItineraryServiceInterface
	logger      *zap.Logger
	now         func() time.Time
}

func NewExportService(itineraries ItineraryServiceInterface, logger *zap.Logger) ExportServiceInterface {
	return &ExportService{
		itineraries: itineraries,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ExportService) ExportOption(ctx context.Context, planID, tierID string) ([]byte, string, error) {
	plan, option, err := s.itineraries.GetOption(ctx, planID, tierID)
	if err != nil {
		return nil, "", err
	}

	doc, err := renderItineraryPDF(plan, option, s.now())
	if err != nil {
		s.logger.Error("failed to render itinerary pdf",
			zap.String("plan_id", planID),
			zap.String("tier_id", tierID),
			zap.Error(err),
		)
		return nil, "", fmt.Errorf("%w: %w", utils.ErrExportFailed, err)
	}
	return doc, exportFileName(plan.Request.Destination, option.TierID), nil
}

func exportFileName(destination string, tier composer.TierID) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return '-'
	}, strings.TrimSpace(destination))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "trip"
	}
	return fmt.Sprintf("globetrotter-%s-%s.pdf", slug, tier)
}

func renderItineraryPDF(plan *repositories.CachedPlan, option composer.ItineraryOption, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	// Core fonts are cp1252.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetDrawColor(200, 200, 200)
		pdf.SetLineWidth(0.3)
		pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8,
			fmt.Sprintf("Globe Trotter itinerary - not a booking confirmation - page %d", pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, tr(option.Title), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, tr(option.Style), "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, tr(value), "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Destination", plan.Request.Destination)
	row("Duration", fmt.Sprintf("%d days", len(option.Days)))
	row("Accommodation", option.Accommodation)
	row("Transport", option.Transport)
	row("Highlights", strings.Join(option.Highlights, ", "))
	row("Generated", generated.UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.MultiCell(170, 5, tr(option.Description), "", "L", false)
	pdf.Ln(4)

	for _, day := range option.Days {
		sectionHeader(day.Title)
		for _, a := range day.Activities {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(35, 7, a.TimeWindow, "", 0, "L", false, 0, "")
			pdf.CellFormat(105, 7, tr(a.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, formatAmount(a.Cost), "", 1, "R", false, 0, "")

			pdf.SetFont("Helvetica", "", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.SetX(55)
			pdf.MultiCell(135, 5, tr(fmt.Sprintf("%s - %s - %s", a.Location, a.Duration, a.Description)), "", "L", false)
		}
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(140, 7, "Day total", "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, formatAmount(day.TotalCost), "", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, formatAmount(option.TotalCost), "", 1, "R", true, 0, "")

	if option.UniqueFeature != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(80, 80, 80)
		pdf.MultiCell(170, 5, tr(option.UniqueFeature), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

// formatAmount groups thousands: 1234567 -> "1,234,567".
func formatAmount(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
