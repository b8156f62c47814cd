package validators

import "time"

// Formatos de wire: datas "YYYY-MM-DD", horários "HH:MM" (24h).

func IsValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

func IsValidTime(timeOfDay string) bool {
	_, err := time.Parse("15:04", timeOfDay)
	return err == nil
}
