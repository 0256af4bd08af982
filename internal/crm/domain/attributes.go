package domain

// Classification attributes used by the scoring engine. Values outside the
// enumerated sets are tolerated everywhere: the scoring rule tables degrade
// them to a zero contribution instead of failing.

// CompanySize describes the size bracket of the customer's company.
type CompanySize string

const (
	CompanySizeStartup    CompanySize = "startup"
	CompanySizeSmall      CompanySize = "small"
	CompanySizeMedium     CompanySize = "medium"
	CompanySizeLarge      CompanySize = "large"
	CompanySizeEnterprise CompanySize = "enterprise"
)

// Budget describes the known budget range of the customer.
type Budget string

const (
	BudgetUnknown Budget = "unknown"
	BudgetLow     Budget = "low"
	BudgetMedium  Budget = "medium"
	BudgetHigh    Budget = "high"
)

// Timeline describes the customer's purchasing timeline.
type Timeline string

const (
	TimelineImmediate Timeline = "immediate"
	TimelineShort     Timeline = "short"
	TimelineMedium    Timeline = "medium"
	TimelineLong      Timeline = "long"
)

// Industry describes the customer's industry for fit scoring.
type Industry string

const (
	IndustryTechnology    Industry = "technology"
	IndustryHealthcare    Industry = "healthcare"
	IndustryFinance       Industry = "finance"
	IndustryManufacturing Industry = "manufacturing"
	IndustryRetail        Industry = "retail"
	IndustryOther         Industry = "other"
)

// Baseline attribute values applied when a customer is created without
// classification data. Deliberately conservative: nothing is assumed about
// size or budget, and the timeline starts in the middle of the ramp.
const (
	BaselineCompanySize = CompanySizeSmall
	BaselineBudget      = BudgetUnknown
	BaselineTimeline    = TimelineMedium
	BaselineIndustry    = IndustryOther
)
