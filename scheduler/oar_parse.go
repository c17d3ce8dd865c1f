package scheduler

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Result is the two-variant outcome of a structured scheduler query.
// Either Data holds the parsed output verbatim, or Degraded is set and
// Message/Raw carry the parse failure plus the original text so no
// information is dropped. Degradation is a value, never an error used
// for branching.
type Result struct {
	Data     map[string]any
	Degraded bool
	Message  string
	Raw      string
}

func degraded(message, raw string) *Result {
	return &Result{Degraded: true, Message: message, Raw: raw}
}

// normalize parses the scheduler's JSON output. The schema is
// scheduler-defined and passed through opaquely.
func normalize(raw string) *Result {
	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return degraded(fmt.Sprintf("failed to parse JSON output: %s", err), raw)
	}
	return &Result{Data: data}
}

// splitLines returns the trimmed non-empty lines of a listing.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// clusterNames derives cluster names from machine hostnames: the part
// before the first '-'. Hostnames without a separator contribute
// nothing. The result is de-duplicated and sorted ascending; callers
// rely on that ordering for deterministic messages.
func clusterNames(machines []string) []string {
	seen := make(map[string]struct{})
	var clusters []string
	for _, machine := range machines {
		name, _, found := strings.Cut(machine, "-")
		if !found {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		clusters = append(clusters, name)
	}
	sort.Strings(clusters)
	return clusters
}
