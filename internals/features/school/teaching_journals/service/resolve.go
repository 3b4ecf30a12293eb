// file: internals/features/school/teaching_journals/service/resolve.go
package service

import (
	"log"
	"time"

	"presensiku_backend/internals/features/school/teaching_journals/model"
	"presensiku_backend/internals/helpers/apperror"
	"presensiku_backend/internals/metrics"
)

// PickAuthoritative: bobot FillerRole tertinggi menang; seri -> kandidat paling awal.
// nil kalau tidak ada kandidat.
func PickAuthoritative(cands []model.TeachingJournalModel) *model.TeachingJournalModel {
	if len(cands) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(cands); i++ {
		if cands[i].TeachingJournalFillerRole.Weight() > cands[best].TeachingJournalFillerRole.Weight() {
			best = i
		}
	}
	return &cands[best]
}

// Resolve = PickAuthoritative + ConflictWarning (log & metrik) kalau kandidat > 1.
func Resolve(date time.Time, className string, hour int, cands []model.TeachingJournalModel) *model.TeachingJournalModel {
	winner := PickAuthoritative(cands)
	if winner != nil && len(cands) > 1 {
		w := &apperror.ConflictWarning{
			Date:       date,
			ClassName:  className,
			Hour:       hour,
			ChosenID:   winner.TeachingJournalID,
			Candidates: len(cands),
		}
		log.Printf("[WARN] %v", w)
		metrics.JournalConflict.Inc()
	}
	return winner
}
