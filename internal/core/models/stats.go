package models

// Channel names one of the tracked numeric metrics.
type Channel string

const (
	ChannelRequestTime Channel = "request_time"
	ChannelQueryTime   Channel = "query_time"
	ChannelQueryCount  Channel = "query_count"
	ChannelMemoryUsage Channel = "memory_usage"
	ChannelAccessCount Channel = "access_count"
)

// Channels lists every channel in reporting order.
var Channels = []Channel{
	ChannelRequestTime,
	ChannelQueryTime,
	ChannelQueryCount,
	ChannelMemoryUsage,
	ChannelAccessCount,
}

// PercentileRanks are the ranks reported in DescriptiveStats.Percentiles.
var PercentileRanks = []int{25, 50, 75, 90, 95, 99}

const HistogramBuckets = 10

type DescriptiveStats struct {
	Label         string          `json:"label"`
	Unit          string          `json:"unit"`
	Count         int             `json:"count"`
	Mean          float64         `json:"mean"`
	Median        float64         `json:"median"`
	Mode          float64         `json:"mode"`
	StdDev        float64         `json:"std_dev"`
	Min           float64         `json:"min"`
	Max           float64         `json:"max"`
	Range         float64         `json:"range"`
	Percentiles   map[int]float64 `json:"percentiles"`
	OutliersCount int             `json:"outliers_count"`
	Outliers      []float64       `json:"outliers"`
	Distribution  []int           `json:"distribution"`
	BucketLabels  []string        `json:"bucket_labels"`
}

// Percentile returns the value at rank, reporting false when it was not
// computed.
func (s DescriptiveStats) Percentile(rank int) (float64, bool) {
	v, ok := s.Percentiles[rank]
	return v, ok
}

// EmptyStats returns a fresh zero-valued statistics block.
func EmptyStats() DescriptiveStats {
	return DescriptiveStats{
		Percentiles:  map[int]float64{},
		Outliers:     []float64{},
		Distribution: []int{},
		BucketLabels: []string{},
	}
}

// ChannelStats maps every channel to its statistics.
type ChannelStats map[Channel]DescriptiveStats

type CorrelationStrength string

const (
	StrengthNone       CorrelationStrength = "none"
	StrengthWeak       CorrelationStrength = "weak"
	StrengthModerate   CorrelationStrength = "moderate"
	StrengthStrong     CorrelationStrength = "strong"
	StrengthVeryStrong CorrelationStrength = "very_strong"
)

type CorrelationResult struct {
	Coefficient    float64             `json:"coefficient"`
	Strength       CorrelationStrength `json:"strength"`
	Interpretation string              `json:"interpretation"`
	SampleSize     int                 `json:"sample_size"`
}

// CorrelationPair names a pair of channels that is correlated.
type CorrelationPair string

const (
	PairRequestTimeQueryTime  CorrelationPair = "request_time_vs_query_time"
	PairRequestTimeQueryCount CorrelationPair = "request_time_vs_query_count"
	PairQueryTimeQueryCount   CorrelationPair = "query_time_vs_query_count"
	PairMemoryRequestTime     CorrelationPair = "memory_vs_request_time"
	PairAccessCountRequest    CorrelationPair = "access_count_vs_performance"
)

// Correlations maps every pair to its result; nil means not enough data.
type Correlations map[CorrelationPair]*CorrelationResult
