package service

import (
	"strings"

	"contas/internal/models"
)

// actionURLs are the two fixed action-link images (edit, delete) injected
// into every reshaped list entry regardless of record content.
var actionURLs = []string{
	"https://raw.githubusercontent.com/daniloagostinho/curso-angular15-na-pratica/main/src/assets/images/edit.png",
	"https://raw.githubusercontent.com/daniloagostinho/curso-angular15-na-pratica/main/src/assets/images/delete.png",
}

// reshapeRecords maps stored documents into the list response shape. Only
// the owner title and month title survive; listMonth is rebuilt from the
// declared fields plus the stringified identifier under "_id" and the fixed
// action links.
func reshapeRecords(records []models.StoredRecord, fields []recordField) []models.FinancialRecord {
	reshaped := make([]models.FinancialRecord, 0, len(records))
	for _, rec := range records {
		entry := make(models.ListMonth, len(fields)+2)
		entry["_id"] = rec.ID
		for _, f := range fields {
			entry[f.name] = rec.User.Month.ListMonth.Field(f.name)
		}
		entry["actions"] = actionURLs

		reshaped = append(reshaped, models.FinancialRecord{
			User: models.RecordUser{
				Title: rec.User.Title,
				Month: models.RecordMonth{
					Title:     rec.User.Month.Title,
					ListMonth: entry,
				},
			},
		})
	}
	return reshaped
}

// filterRecords keeps entries whose owner title contains userHeader and
// whose month title contains monthHeader. Both comparisons are
// case-sensitive substring containment, not equality.
func filterRecords(records []models.FinancialRecord, userHeader, monthHeader string) []models.FinancialRecord {
	filtered := make([]models.FinancialRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(rec.User.Title, userHeader) &&
			strings.Contains(rec.User.Month.Title, monthHeader) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
