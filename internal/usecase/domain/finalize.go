package domain

import (
	"context"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// Finalize reconciles ledger entries left open after a merge: every
// open entry gets its version snapshot overwritten with the final
// results, its top project refreshed from the live head, and its
// status flipped to merged. All simultaneously-open entries are
// finalized in one pass. Returns how many entries were finalized.
func (u *Usecase) Finalize(ctx context.Context) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	ledger, err := u.store.LoadLedger(ctx)
	if err != nil {
		return 0, err
	}
	results, err := u.store.LoadResults(ctx)
	if err != nil {
		return 0, err
	}

	finalized := 0
	for i := range ledger {
		entry := &ledger[i]
		if entry.PRStatus == nil || *entry.PRStatus != entities.StatusOpen {
			continue
		}

		path, err := u.store.SnapshotResults(ctx, entry.Version, results)
		if err != nil {
			return 0, err
		}
		u.log.Infow("re-snapshotted results", "version", entry.Version, "path", path)

		if len(results) > 0 {
			entry.TopProject = topProjectOf(results)
		}
		status := entities.StatusMerged
		entry.PRStatus = &status
		finalized++
	}

	if finalized == 0 {
		u.log.Infow("no open iterations to finalize")
		return 0, nil
	}

	if err := u.store.SaveLedger(ctx, ledger); err != nil {
		return 0, err
	}
	return finalized, nil
}
