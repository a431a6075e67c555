package util

import "time"

const TIME_TBA = "TBA"

// FormatDisplayDate converts an API local date ("2006-01-02") into a
// human-readable form ("January 02, 2006"). TBA and unparseable values pass
// through unchanged.
func FormatDisplayDate(dateStr string) string {
	if dateStr == TIME_TBA {
		return TIME_TBA
	}
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return parsed.Format("January 02, 2006")
}

// FormatDisplayTime converts an API local time ("15:04:05") into a 12-hour
// form ("07:30 PM"). TBA and unparseable values pass through unchanged.
func FormatDisplayTime(timeStr string) string {
	if timeStr == TIME_TBA {
		return TIME_TBA
	}
	parsed, err := time.Parse("15:04:05", timeStr)
	if err != nil {
		return timeStr
	}
	return parsed.Format("03:04 PM")
}
