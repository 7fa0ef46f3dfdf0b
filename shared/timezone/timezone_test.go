package timezone_test

import (
	"scoop/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestFreeze(t *testing.T) {
	pinned := time.Date(2025, 6, 4, 10, 30, 0, 0, time.UTC)

	restore := timezone.Freeze(pinned)

	if got := timezone.Now(); !got.Equal(pinned) {
		t.Errorf("expected frozen time %v, got %v", pinned, got)
	}

	restore()

	if got := timezone.Now(); got.Equal(pinned) {
		t.Error("expected clock to be restored")
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, 6, 4, 17, 45, 12, 0, timezone.GetLocation())
	got := timezone.StartOfDay(in)

	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Errorf("expected midnight, got %v", got)
	}

	if got.Day() != 4 {
		t.Errorf("expected same day, got %d", got.Day())
	}
}
