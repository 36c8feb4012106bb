package timezone_test

import (
	"dormy/shared/timezone"
	"testing"
	"time"
)

func TestInitAndConvert(t *testing.T) {
	timezone.Init("Asia/Manila")
	defer timezone.Init("UTC")

	if timezone.GetLocation().String() != "Asia/Manila" {
		t.Fatalf("expected Asia/Manila, got %s", timezone.GetLocation())
	}

	utc := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := timezone.Format(utc, "15:04"); got != "08:00" {
		t.Errorf("expected 08:00 in Manila, got %s", got)
	}
}

func TestInitUnknownKeepsPrevious(t *testing.T) {
	timezone.Init("UTC")
	timezone.Init("Mars/Olympus")

	if timezone.GetLocation().String() != "UTC" {
		t.Errorf("expected UTC to be kept, got %s", timezone.GetLocation())
	}
}

func TestParse(t *testing.T) {
	timezone.Init("UTC")

	parsed, err := timezone.Parse("2006-01-02", "2024-03-05")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if parsed.Day() != 5 || parsed.Month() != time.March {
		t.Errorf("unexpected parsed value %v", parsed)
	}

	if timezone.Now().IsZero() {
		t.Error("Now() returned zero time")
	}
}
