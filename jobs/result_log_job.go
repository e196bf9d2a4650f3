package jobs

import (
	"log"

	"github.com/anjiri1684/exam_portal/database"
)

// ReportResultLog logs how large the in-memory result log has grown.
// The log is never trimmed, so this is the only signal of its size.
func ReportResultLog(store *database.Store) func() {
	return func() {
		log.Println("Running job: ReportResultLog...")

		results := store.Results()
		if len(results) == 0 {
			log.Println("No results recorded yet.")
			return
		}

		users := make(map[string]struct{})
		for _, r := range results {
			users[r.UserID] = struct{}{}
		}

		log.Printf("Result log holds %d result(s) from %d user(s).", len(results), len(users))
	}
}
