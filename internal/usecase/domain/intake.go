package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// Intake processes an incoming proposal: parses the body, assigns a
// version, infers data sources, upserts the ledger entry and writes
// the rendered summary artifact. Re-invocation for the same PR number
// updates the existing entry in place, keeping its version. Returns
// the entry and the summary path.
//
// The ledger write happens before any other side effect, so a failed
// summary write never leaves the ledger behind the proposal state.
func (u *Usecase) Intake(ctx context.Context, proposal entities.Proposal) (*entities.Iteration, string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if proposal.Number <= 0 {
		return nil, "", fmt.Errorf("%w: pr number is required", entities.ErrInvalidArgument)
	}

	ledger, err := u.store.LoadLedger(ctx)
	if err != nil {
		return nil, "", err
	}
	results, err := u.store.LoadResults(ctx)
	if err != nil {
		return nil, "", err
	}
	code, err := u.store.AlgorithmSource(ctx)
	if err != nil {
		return nil, "", err
	}

	heuristic, rationale := ParseProposal(proposal.Body)
	dataSources := DetectDataSources(code, u.rules)

	existing := entities.FindByPRNumber(ledger, proposal.Number)
	version := entities.NextVersion(ledger)
	if existing >= 0 {
		version = ledger[existing].Version
	}

	entry := buildEntry(version, proposal, results, heuristic, rationale, dataSources)
	if existing >= 0 {
		ledger[existing] = entry
		u.log.Infow("updated existing entry", "version", version, "pr_number", proposal.Number)
	} else {
		ledger = append(ledger, entry)
		u.log.Infow("added new entry", "version", version, "pr_number", proposal.Number)
	}

	if err := u.store.SaveLedger(ctx, ledger); err != nil {
		return nil, "", err
	}

	if _, err := u.store.SnapshotResults(ctx, version, results); err != nil {
		return nil, "", err
	}

	committee, err := u.store.Committee(ctx)
	if err != nil {
		return nil, "", err
	}

	summary := RenderSummary(version, proposal.Author, results, dataSources, committee)
	path, err := u.store.WriteSummary(ctx, summary)
	if err != nil {
		return nil, "", err
	}
	u.log.Infow("summary written", "path", path)

	return &entry, path, nil
}

func buildEntry(
	version string,
	proposal entities.Proposal,
	results []entities.ResultEntry,
	heuristic, rationale string,
	dataSources []string,
) entities.Iteration {
	date := time.Now().UTC().Format("2006-01-02")
	status := entities.StatusOpen

	entry := entities.Iteration{
		Version:     version,
		Date:        &date,
		Author:      &proposal.Author,
		PRNumber:    &proposal.Number,
		PRURL:       &proposal.URL,
		PRStatus:    &status,
		Heuristic:   heuristic,
		DataSources: dataSources,
	}
	if rationale != "" {
		entry.Rationale = &rationale
	}
	if len(results) > 0 {
		entry.TopProject = topProjectOf(results)
	}
	return entry
}

func topProjectOf(results []entities.ResultEntry) entities.TopProject {
	top := results[0]
	score := top.Score
	return entities.TopProject{
		Name:  entities.ProjectName(top.URL),
		URL:   top.URL,
		Score: &score,
	}
}
