package sequencer

// Stage is a step of one run's lookup chain.
type Stage string

const (
	StageIdle          Stage = "idle"
	StageSearching     Stage = "searching"
	StageResolved      Stage = "resolved"
	StageFetchingNext  Stage = "fetching_next"
	StageFetchingForm  Stage = "fetching_form"
	StageFetchingSquad Stage = "fetching_squad"
	StageReady         Stage = "ready"
	StageFailed        Stage = "failed"
)

// Terminal reports whether no further transitions follow s.
func (s Stage) Terminal() bool {
	return s == StageReady || s == StageFailed
}

// Status is the terminal disposition of a run.
type Status string

const (
	StatusReady     Status = "ready"
	StatusFailed    Status = "failed"
	StatusAbandoned Status = "abandoned"
)
