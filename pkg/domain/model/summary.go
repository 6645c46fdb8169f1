package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// FormatSummary renders change records into the pull request comment body.
// It returns "" when no package was added, removed or updated, meaning
// there is nothing to report. For a given record set the output is
// byte-for-byte deterministic: groups ordered added, removed, updated, each
// sorted by name in ordinal string order, and unchanged packages counted
// only in the footer. The reconciler relies on this determinism to detect
// that an existing comment body is already up to date.
func FormatSummary(diffs []PackageDiff) (string, error) {
	var added, removed, updated, unchanged []PackageDiff
	for _, d := range diffs {
		switch {
		case d.Added():
			added = append(added, d)
		case d.Removed():
			removed = append(removed, d)
		case d.Updated():
			updated = append(updated, d)
		case d.NewVersion == "":
			return "", goerr.New("package diff has neither old nor new version", goerr.V("name", d.Name))
		default:
			unchanged = append(unchanged, d)
		}
	}

	changed := len(added) + len(removed) + len(updated)
	if changed == 0 {
		return "", nil
	}

	lines := make([]string, 0, changed)
	for _, group := range [][]PackageDiff{added, removed, updated} {
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		for _, d := range group {
			line, err := d.SummaryLine()
			if err != nil {
				return "", err
			}
			lines = append(lines, line)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "### Detected %d changes to dependencies in Poetry lockfile\n\n", changed)
	sb.WriteString(strings.Join(lines, "\n"))
	fmt.Fprintf(&sb, "\n\n*(%d added, %d removed, %d updated, %d not changed)*",
		len(added), len(removed), len(updated), len(unchanged))

	return sb.String(), nil
}
