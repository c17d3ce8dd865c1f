package api

type Error struct {
	Error string `json:"error"`
	Data  string `json:"data,omitempty"`
}

type OK struct {
	Data string `json:"data"`
}

type CreateJobRequest struct {
	Clusters   []string `json:"clusters,omitempty"`
	Nodes      int      `json:"nodes,omitempty"`
	Walltime   string   `json:"walltime,omitempty"`
	Command    string   `json:"command,omitempty"`
	Name       string   `json:"name,omitempty"`
	BestEffort bool     `json:"best_effort,omitempty"`
}

type CreateJobResponse struct {
	JobID  int    `json:"job_id,omitempty"`
	Output string `json:"output"`
}

type ExtendWalltimeRequest struct {
	AdditionalTime string `json:"additional_time"`
	Force          bool   `json:"force,omitempty"`
}
