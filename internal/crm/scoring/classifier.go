package scoring

// Temperature is the ordinal lead classification derived from a score,
// indicating conversion urgency: cold < lukewarm < warm < hot.
type Temperature string

const (
	TemperatureHot      Temperature = "hot"
	TemperatureWarm     Temperature = "warm"
	TemperatureLukewarm Temperature = "lukewarm"
	TemperatureCold     Temperature = "cold"
)

// thresholds is the single ordered threshold table for classification.
// Entries are checked top-down; the first inclusive lower bound that the
// score reaches wins, so boundary values are unambiguous.
var thresholds = []struct {
	min  int
	temp Temperature
}{
	{80, TemperatureHot},
	{60, TemperatureWarm},
	{40, TemperatureLukewarm},
	{0, TemperatureCold},
}

// Classify maps a score to a temperature tier. Total over all integers:
// anything below the lukewarm bound, including negatives, is cold.
func Classify(score int) Temperature {
	for _, t := range thresholds {
		if score >= t.min {
			return t.temp
		}
	}
	return TemperatureCold
}

// Rank returns the ordinal position of a temperature (cold=0 .. hot=3).
// Unknown temperatures rank coldest.
func Rank(t Temperature) int {
	switch t {
	case TemperatureHot:
		return 3
	case TemperatureWarm:
		return 2
	case TemperatureLukewarm:
		return 1
	default:
		return 0
	}
}

// Result is the ephemeral outcome of one scoring evaluation. It is derived
// state, never persisted independently of the customer it was computed from.
type Result struct {
	Score       int         `json:"score"`
	Temperature Temperature `json:"temperature"`
}
