package services

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func testConfirmation() BookingConfirmation {
	return BookingConfirmation{
		To:          "asha@example.com",
		Name:        "Asha",
		Code:        "AB12CD34E",
		Title:       "Comfort Traveler",
		Destination: "Goa",
		StartDate:   "2026-11-01",
		EndDate:     "2026-11-06",
		Travelers:   3,
		Amount:      75000,
		Currency:    "INR",
		Reference:   "pay_1_abc",
	}
}

func TestConfirmationRendersBookingRows(t *testing.T) {
	svc := NewSMTPMailService(SMTPConfig{AppName: "Globe Trotter", AppBaseURL: "https://trips.example.com/"}, zap.NewNop()).(*smtpMailService)

	html, text, err := svc.render(svc.emailData(testConfirmation()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"AB12CD34E", "2026-11-01 to 2026-11-06", "INR 75000", "https://trips.example.com/bookings"} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q", want)
		}
		if !strings.Contains(text, want) {
			t.Fatalf("text missing %q", want)
		}
	}
	if !strings.Contains(text, "Hi Asha, your booking for Comfort Traveler in Goa is confirmed.") {
		t.Fatalf("greeting missing from text:\n%s", text)
	}
}

func TestConfirmationOmitsButtonWithoutBaseURL(t *testing.T) {
	svc := NewSMTPMailService(SMTPConfig{AppName: "Globe Trotter"}, zap.NewNop()).(*smtpMailService)

	msg := testConfirmation()
	msg.Name = "  "
	html, _, err := svc.render(svc.emailData(msg))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(html, `class="btn"`) {
		t.Fatal("button rendered without a base url")
	}
	if !strings.Contains(html, "Hi traveler,") {
		t.Fatal("blank name should fall back to traveler")
	}
}

func TestComposeBuildsMultipartMessage(t *testing.T) {
	svc := NewSMTPMailService(SMTPConfig{From: "no-reply@example.com", FromName: "Globe Trotter"}, zap.NewNop()).(*smtpMailService)

	raw := string(svc.compose("asha@example.com", "Booking confirmed: AB12CD34E", "<p>hi</p>", "hi"))
	for _, want := range []string{
		"From: Globe Trotter <no-reply@example.com>\r\n",
		"To: asha@example.com\r\n",
		"Subject: Booking confirmed: AB12CD34E\r\n",
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Type: text/html; charset=UTF-8",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("message missing %q", want)
		}
	}
}

func TestFromHeaderEncodesNonASCIIName(t *testing.T) {
	svc := NewSMTPMailService(SMTPConfig{From: "a@example.com", FromName: "Voyages Hélène"}, zap.NewNop()).(*smtpMailService)
	if got := svc.formatFromHeader(); !strings.HasPrefix(got, "=?utf-8?b?") {
		t.Fatalf("from header = %q, want encoded word", got)
	}
}

func TestLogMailServiceNeverFails(t *testing.T) {
	if err := NewLogMailService(zap.NewNop()).SendBookingConfirmation(context.Background(), testConfirmation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
