package scheduler

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	walltimeRe = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)
	jobIDRe    = regexp.MustCompile(`OAR_JOB_ID=(\d+)`)
)

func validWalltime(s string) bool {
	return walltimeRe.MatchString(s)
}

// clusterPredicate builds the OAR selection predicate for the given
// cluster names: a bare equality for one name, a parenthesized OR
// disjunction for several. Input order is preserved and duplicate names
// produce duplicate terms.
func clusterPredicate(clusters []string) string {
	terms := make([]string, len(clusters))
	for i, c := range clusters {
		terms[i] = fmt.Sprintf("cluster='%s'", c)
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return "(" + strings.Join(terms, " OR ") + ")"
}

// buildResourceString composes the oarsub -l argument.
func buildResourceString(clusters []string, nodes int, walltime string) string {
	resources := fmt.Sprintf("nodes=%d,walltime=%s", nodes, walltime)
	if len(clusters) > 0 {
		resources = fmt.Sprintf("{%s}/%s", clusterPredicate(clusters), resources)
	}
	return resources
}

// quoteArg single-quotes an argument only when it carries whitespace.
func quoteArg(s string) string {
	if strings.ContainsAny(s, " \t") {
		return "'" + s + "'"
	}
	return s
}

// buildSubmitCommand composes the full oarsub command line. The resource
// string is double-quoted and the free-form command single-quoted because
// both may contain spaces and selection-language operators. The whole
// line is interpolated into a remote shell, not passed as an argument
// vector, so quote characters inside Name or Command will break the
// remote parse. Known limitation, kept as-is.
func buildSubmitCommand(req *SubmitRequest, resources string) string {
	parts := []string{"oarsub", "-l", `"` + resources + `"`}
	if req.Name != "" {
		parts = append(parts, "-n", quoteArg(req.Name))
	}
	if req.BestEffort {
		parts = append(parts, "-t", "besteffort")
	}
	parts = append(parts, "'"+req.Command+"'")
	return strings.Join(parts, " ")
}
