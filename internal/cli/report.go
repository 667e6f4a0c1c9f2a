package cli

import (
	"github.com/zoro11031/extfiles/internal/journal"
	"github.com/zoro11031/extfiles/internal/storage"
	"github.com/zoro11031/extfiles/internal/ui"
)

// reportingRecorder prints each outcome and stores it in the journal
type reportingRecorder struct {
	journal *journal.Journal
	ui      *ui.UI
}

func (r *reportingRecorder) Record(source, destination string, outcome storage.Outcome) error {
	switch outcome {
	case storage.OutcomeRenamed:
		r.ui.Transfer("Moved", source, destination)
	case storage.OutcomeCopied:
		r.ui.Transfer("Copied", source, destination)
	case storage.OutcomeAlreadyMigrated:
		r.ui.Infof("%s already present, skipped", destination)
	case storage.OutcomeCopyFailed:
		r.ui.Warningf("Could not migrate %s, it was left in place", source)
	}
	return r.journal.Record(source, destination, outcome)
}
