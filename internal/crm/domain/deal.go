package domain

// DealStage is the pipeline stage of a sales deal.
type DealStage string

const (
	DealStageLead        DealStage = "lead"
	DealStageQualified   DealStage = "qualified"
	DealStageProposal    DealStage = "proposal"
	DealStageNegotiation DealStage = "negotiation"
	DealStageClosed      DealStage = "closed"
)

// PipelineStages lists the deal stages in funnel order, for board rendering.
var PipelineStages = []DealStage{
	DealStageLead,
	DealStageQualified,
	DealStageProposal,
	DealStageNegotiation,
	DealStageClosed,
}

var knownDealStages = map[DealStage]struct{}{
	DealStageLead:        {},
	DealStageQualified:   {},
	DealStageProposal:    {},
	DealStageNegotiation: {},
	DealStageClosed:      {},
}

// IsKnownDealStage reports whether s is one of the enumerated stages.
func IsKnownDealStage(s DealStage) bool {
	_, ok := knownDealStages[s]
	return ok
}

// Deal is a sales opportunity attached to a customer. Value is in whole
// currency units and is never negative.
type Deal struct {
	ID          string
	Title       string
	Value       int64
	Stage       DealStage
	Probability int // 0-100, chance of closing
}
