package scheduler

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Oar drives the OAR batch scheduler on a remote frontend through an
// Executor. Every operation is a stateless request/response pair; the
// scheduler itself owns all job-lifecycle state.
type Oar struct {
	executor Executor
}

func NewOar(executor Executor) *Oar {
	return &Oar{executor: executor}
}

// ListMachines returns every machine hostname known to the scheduler.
func (o *Oar) ListMachines(ctx context.Context) ([]string, error) {
	out, err := o.executor.Run(ctx, "oarnodes -l")
	if err != nil {
		log.Error().Err(err).Msg("list machines failed")
		return nil, err
	}
	return splitLines(out), nil
}

// ListMachinesDetailed returns the scheduler's native JSON inventory.
func (o *Oar) ListMachinesDetailed(ctx context.Context) (*Result, error) {
	out, err := o.executor.Run(ctx, "oarnodes -J")
	if err != nil {
		log.Error().Err(err).Msg("detailed machine listing failed")
		return nil, err
	}
	return normalize(out), nil
}

// ListClusters returns the sorted set of cluster names, recomputed from
// the full machine listing on every call.
func (o *Oar) ListClusters(ctx context.Context) ([]string, error) {
	machines, err := o.ListMachines(ctx)
	if err != nil {
		return nil, err
	}
	return clusterNames(machines), nil
}

// Submit validates the request, compiles the resource specification and
// submits the job. A missing OAR_JOB_ID token in the output is not an
// error; the raw output is returned either way.
func (o *Oar) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	if !validWalltime(req.Walltime) {
		return nil, &ValidationError{
			Message: `invalid walltime format, use hh:mm:ss (e.g. "1:00:00")`,
		}
	}

	if len(req.Clusters) > 0 {
		available, err := o.ListClusters(ctx)
		if err != nil {
			return nil, err
		}
		var invalid []string
		for _, c := range req.Clusters {
			if !slices.Contains(available, c) {
				invalid = append(invalid, c)
			}
		}
		if len(invalid) > 0 {
			return nil, &ValidationError{
				Message:   fmt.Sprintf("invalid clusters: %v, available: %v", invalid, available),
				Invalid:   invalid,
				Available: available,
			}
		}
	}

	resources := buildResourceString(req.Clusters, req.Nodes, req.Walltime)
	cmd := buildSubmitCommand(req, resources)

	out, err := o.executor.Run(ctx, cmd)
	if err != nil {
		log.Error().Err(err).Str("resources", resources).Msg("submit failed")
		return nil, err
	}

	result := &SubmitResult{Output: out}
	if m := jobIDRe.FindStringSubmatch(out); m != nil {
		result.JobID, _ = strconv.Atoi(m[1])
	}
	return result, nil
}

// Delete requests deletion of a job. Failures are reported in the
// returned message, never propagated; deletion is best effort from the
// caller's point of view.
func (o *Oar) Delete(ctx context.Context, jobID int) string {
	out, err := o.executor.Run(ctx, fmt.Sprintf("oardel %d", jobID))
	if err != nil {
		log.Warn().Err(err).Int("job_id", jobID).Msg("delete failed")
		return fmt.Sprintf("Failed to delete job %d: %s", jobID, err)
	}
	return fmt.Sprintf("Job %d deletion requested: %s", jobID, out)
}

// ExtendWalltime asks for more walltime on a running job. Invalid
// durations are rejected without contacting the scheduler.
func (o *Oar) ExtendWalltime(ctx context.Context, req *ExtendRequest) string {
	if !validWalltime(req.AdditionalTime) {
		return `Invalid time format. Use hh:mm:ss (e.g. "1:30:00")`
	}

	cmd := fmt.Sprintf("oarwalltime %d +%s", req.JobID, req.AdditionalTime)
	if req.Force {
		cmd += " --force"
	}

	out, err := o.executor.Run(ctx, cmd)
	if err != nil {
		log.Warn().Err(err).Int("job_id", req.JobID).Msg("extend walltime failed")
		return fmt.Sprintf("Failed to extend walltime for job %d: %s", req.JobID, err)
	}
	return fmt.Sprintf("Extended walltime for job %d: %s", req.JobID, out)
}

// WalltimeStatus reports the pending walltime-change state of a job.
func (o *Oar) WalltimeStatus(ctx context.Context, jobID int) string {
	out, err := o.executor.Run(ctx, fmt.Sprintf("oarwalltime %d", jobID))
	if err != nil {
		log.Warn().Err(err).Int("job_id", jobID).Msg("walltime status failed")
		return fmt.Sprintf("Failed to get walltime status for job %d: %s", jobID, err)
	}
	return fmt.Sprintf("Walltime status for job %d: %s", jobID, out)
}

// JobStatus returns the scheduler's JSON view of one job.
func (o *Oar) JobStatus(ctx context.Context, jobID int) *Result {
	out, err := o.executor.Run(ctx, fmt.Sprintf("oarstat -j %d -J", jobID))
	if err != nil {
		log.Warn().Err(err).Int("job_id", jobID).Msg("job status failed")
		return degraded(fmt.Sprintf("failed to get status for job %d: %s", jobID, err), "")
	}
	return normalize(out)
}

// ListAllJobs returns the scheduler's JSON view of every job.
func (o *Oar) ListAllJobs(ctx context.Context) *Result {
	out, err := o.executor.Run(ctx, "oarstat -J")
	if err != nil {
		log.Warn().Err(err).Msg("list all jobs failed")
		return degraded(fmt.Sprintf("failed to list jobs: %s", err), "")
	}
	return normalize(out)
}

// ListMyJobs lists the current remote user's jobs. A plain-text probe
// runs first: oarstat emits empty JSON-ish output when the user has no
// jobs, so an empty probe short-circuits to an explicit empty result
// without a second round trip. If the structured listing then fails to
// parse, the plain listing is returned instead of dropping the data.
func (o *Oar) ListMyJobs(ctx context.Context) *Result {
	probe, err := o.executor.Run(ctx, "oarstat -u")
	if err != nil {
		log.Warn().Err(err).Msg("list my jobs probe failed")
		return degraded(fmt.Sprintf("failed to list jobs for current user: %s", err), "")
	}
	if probe == "" {
		return &Result{Data: map[string]any{
			"message": "no jobs found for current user",
			"jobs":    map[string]any{},
		}}
	}

	out, err := o.executor.Run(ctx, "oarstat -u -J")
	if err != nil {
		log.Warn().Err(err).Msg("list my jobs failed")
		return degraded(fmt.Sprintf("failed to list jobs for current user: %s", err), "")
	}

	result := normalize(out)
	if result.Degraded {
		plain, perr := o.executor.Run(ctx, "oarstat -u")
		if perr != nil {
			return degraded(fmt.Sprintf("failed to parse JSON output and fallback failed: %s", result.Message), out)
		}
		return &Result{Data: map[string]any{
			"message": "jobs for current user (text format due to JSON parsing error)",
			"output":  plain,
		}}
	}
	return result
}

// HealthCheck probes the scheduler frontend with a plain oarstat.
func (o *Oar) HealthCheck(ctx context.Context) error {
	if _, err := o.executor.Run(ctx, "oarstat"); err != nil {
		log.Error().Err(err).Msg("healthcheck failed")
		return err
	}
	return nil
}
