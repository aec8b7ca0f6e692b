package domain

import (
	"fmt"
	"strings"

	"github.com/nwspk/politech-awards-2026/internal/entities"
)

// summarySliceSize is how many ranked entries each of the top, middle
// and bottom tables shows.
const summarySliceSize = 5

// RenderSummary produces the human-readable proposal report: ranked
// top/middle/bottom tables, detected data sources and next steps.
// Rank numbers are positions in the full ordering, not restarted per
// slice.
func RenderSummary(
	version string,
	author string,
	results []entities.ResultEntry,
	dataSources []string,
	committee entities.Committee,
) string {
	top := entities.TopN(results, summarySliceSize)
	middle := entities.MiddleN(results, summarySliceSize)
	bottom := entities.BottomN(results, summarySliceSize)

	topTable := formatRankTable(top, 1)
	middleTable := formatRankTable(middle, entities.MiddleStart(len(results), summarySliceSize)+1)
	bottomTable := formatRankTable(bottom, len(results)-len(bottom)+1)

	var sourceLines []string
	for _, s := range dataSources {
		if s == "project URL" {
			sourceLines = append(sourceLines, "- [project URL](candidates.csv)")
		} else {
			sourceLines = append(sourceLines, "- "+s)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Iteration Bot Results\n\n")
	fmt.Fprintf(&b, "**Version**: %s (auto-assigned)\n", version)
	fmt.Fprintf(&b, "**Author**: @%s\n", author)
	fmt.Fprintf(&b, "**Algorithm run**: Complete — %d projects scored\n\n", len(results))

	fmt.Fprintf(&b, "### Top %d Projects\n\n", summarySliceSize)
	b.WriteString(tableHeader + topTable + "\n\n")
	fmt.Fprintf(&b, "### Middle %d Projects\n\n", summarySliceSize)
	b.WriteString(tableHeader + middleTable + "\n\n")
	fmt.Fprintf(&b, "### Bottom %d Projects\n\n", summarySliceSize)
	b.WriteString(tableHeader + bottomTable + "\n\n")

	b.WriteString("### Data Sources Detected\n\n")
	b.WriteString(strings.Join(sourceLines, "\n") + "\n\n")

	b.WriteString("### Next Steps\n\n")
	fmt.Fprintf(&b, "- [ ] **@%s**: Write your assessment — edit the **Assessment** section in the PR description above (you can see the results now!)\n", author)
	b.WriteString("- [ ] **Committee**: Review and vote — approve the PR to merge this iteration\n\n")
	fmt.Fprintf(&b, "**Committee**: %s\n\n", committee.Mentions())

	b.WriteString("---\n\n")
	b.WriteString("*`iterations.json` has been auto-updated on this branch.*\n")
	b.WriteString("*To re-run the bot, add the `run-bot` label.*\n")

	return b.String()
}

const tableHeader = "| Rank | Project | Score |\n|------|---------|-------|\n"

func formatRankTable(entries []entities.ResultEntry, startRank int) string {
	rows := make([]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, fmt.Sprintf("| %d | [%s](%s) | %g |",
			startRank+i, entities.ProjectName(e.URL), e.URL, e.Score))
	}
	return strings.Join(rows, "\n")
}
