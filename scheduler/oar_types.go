package scheduler

import "context"

type Executor interface {
	Run(ctx context.Context, command string) (string, error)
}

type SubmitRequest struct {
	// Clusters restricts the job to the named clusters. Empty means no
	// constraint. Order and duplicates are passed through to the
	// resource predicate verbatim.
	Clusters []string
	// Nodes is the number of nodes to request.
	Nodes int
	// Walltime in hh:mm:ss format.
	Walltime string
	// Command executed once resources are granted.
	Command string
	// Name is an optional job label.
	Name string
	// BestEffort schedules the job in the preemptible best-effort class.
	BestEffort bool
}

type SubmitResult struct {
	// JobID is zero when the scheduler output carried no OAR_JOB_ID token,
	// which some configurations legitimately omit.
	JobID  int
	Output string
}

type ExtendRequest struct {
	JobID int
	// AdditionalTime in hh:mm:ss format.
	AdditionalTime string
	// Force applies the change immediately.
	Force bool
}

// ValidationError rejects a request before any remote call is made.
type ValidationError struct {
	Message string
	// Invalid and Available are set for unknown-cluster rejections so the
	// caller can self-correct.
	Invalid   []string
	Available []string
}

func (e *ValidationError) Error() string { return e.Message }
