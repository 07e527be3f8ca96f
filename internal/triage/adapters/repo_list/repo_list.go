// Package repolist loads the set of repositories to triage, either
// from a plain owner/name-per-line file or from a TOML config file.
package repolist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathantilsley/dep-sentry/internal/triage/domain"
)

// ParseReader reads one owner/name pair per line. Blank lines and
// lines starting with # are ignored. A malformed line is skipped and
// reported as a warning string, not an error; an empty result is an
// error because a run with nothing to triage is a misconfiguration.
func ParseReader(r io.Reader) ([]domain.RepoRef, []string, error) {
	var (
		repos    []domain.RepoRef
		warnings []string
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ref, err := domain.ParseRepoRef(line)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", lineNo, err))
			continue
		}
		repos = append(repos, ref)
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, fmt.Errorf("reading repository list: %w", err)
	}

	if len(repos) == 0 {
		return nil, warnings, domain.NewConfigError("repository list is empty")
	}
	return repos, warnings, nil
}

// LoadFile reads a repository list from path via ParseReader.
func LoadFile(path string) ([]domain.RepoRef, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, domain.NewConfigError("opening repository list: %v", err)
	}
	//nolint:errcheck // Read-only file, close error not actionable
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}
