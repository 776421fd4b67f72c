package analysis

import (
	"fmt"
	"strings"

	"github.com/genc-murat/routeperf/internal/core/models"
)

const (
	highQueryCountMean     = 30.0
	moderateQueryCountMean = 20.0
	slowP95RequestTime     = 2.0
	highMemoryMeanMB       = 50.0
	trafficSpreadFactor    = 2.0
	queryCorrelationLimit  = 0.7
)

// outlierChannels are scanned in order; only the first channel with outliers
// produces a recommendation.
var outlierChannels = []models.Channel{
	models.ChannelRequestTime,
	models.ChannelQueryCount,
	models.ChannelMemoryUsage,
}

// GenerateRecommendations applies the recommendation rules in a fixed order.
// A channel missing from channelStats skips the rules that read it.
func GenerateRecommendations(routes []models.RouteMetricAggregate, channelStats models.ChannelStats) []models.Recommendation {
	recommendations := []models.Recommendation{}

	if s, ok := channelStats[models.ChannelQueryCount]; ok {
		if s.Mean > highQueryCountMean {
			recommendations = append(recommendations, models.Recommendation{
				Type:     models.RecommendationQueryOptimization,
				Priority: models.PriorityHigh,
				Title:    "High Average Query Count",
				Description: fmt.Sprintf(
					"Average query count is %.1f queries per request. Consider implementing eager loading, query batching, or caching to reduce database load.",
					s.Mean),
				Action: "Review routes with high query counts and implement eager loading strategies.",
			})
		} else if s.Mean > moderateQueryCountMean {
			recommendations = append(recommendations, models.Recommendation{
				Type:     models.RecommendationQueryOptimization,
				Priority: models.PriorityMedium,
				Title:    "Moderate Query Count",
				Description: fmt.Sprintf(
					"Average query count is %.1f queries per request. Consider optimizing queries for frequently accessed routes.",
					s.Mean),
				Action: "Identify routes with N+1 query problems and optimize them.",
			})
		}
	}

	if s, ok := channelStats[models.ChannelRequestTime]; ok {
		if p95, ok := s.Percentile(95); ok && p95 > slowP95RequestTime {
			recommendations = append(recommendations, models.Recommendation{
				Type:     models.RecommendationPerformance,
				Priority: models.PriorityHigh,
				Title:    "Slow 95th Percentile Response Time",
				Description: fmt.Sprintf(
					"95%% of requests take less than %.2fs, but 5%% are slower. Focus optimization efforts on the slowest routes.",
					p95),
				Action: "Review routes above P95 and identify bottlenecks.",
			})
		}
	}

	if s, ok := channelStats[models.ChannelMemoryUsage]; ok && s.Mean > highMemoryMeanMB {
		recommendations = append(recommendations, models.Recommendation{
			Type:     models.RecommendationMemory,
			Priority: models.PriorityHigh,
			Title:    "High Memory Usage",
			Description: fmt.Sprintf(
				"Average memory usage is %.1f MB per request. Consider implementing pagination, streaming, or reducing data loaded into memory.",
				s.Mean),
			Action: "Review routes with high memory usage and optimize data loading.",
		})
	}

	for _, ch := range outlierChannels {
		s, ok := channelStats[ch]
		if !ok || s.OutliersCount == 0 {
			continue
		}
		name := strings.ReplaceAll(string(ch), "_", " ")
		recommendations = append(recommendations, models.Recommendation{
			Type:        models.RecommendationOutliers,
			Priority:    models.PriorityMedium,
			Title:       fmt.Sprintf("%s Outliers Detected", strings.ToUpper(name[:1])+name[1:]),
			Description: fmt.Sprintf("%d routes have outlier values for %s. These routes may need immediate attention.", s.OutliersCount, name),
			Action:      "Review routes with outlier values in the Advanced Statistics page.",
		})
		break
	}

	if s, ok := channelStats[models.ChannelAccessCount]; ok && s.StdDev > s.Mean*trafficSpreadFactor {
		recommendations = append(recommendations, models.Recommendation{
			Type:        models.RecommendationTrafficDistribution,
			Priority:    models.PriorityLow,
			Title:       "Uneven Traffic Distribution",
			Description: "Traffic is heavily concentrated on a few routes. Consider optimizing high-traffic routes first for maximum impact.",
			Action:      "Focus optimization efforts on routes with highest access counts.",
		})
	}

	correlation := AnalyzeCorrelations(routes)[models.PairRequestTimeQueryTime]
	if correlation != nil && correlation.Coefficient > queryCorrelationLimit {
		recommendations = append(recommendations, models.Recommendation{
			Type:     models.RecommendationQueryBottleneck,
			Priority: models.PriorityHigh,
			Title:    "Query Time Strongly Correlated with Request Time",
			Description: fmt.Sprintf(
				"Query execution time shows a %s correlation (%.2f) with total request time. Database queries are likely the main performance bottleneck.",
				correlation.Strength, correlation.Coefficient),
			Action: "Optimize database queries, add indexes, or implement query caching.",
		})
	}

	return recommendations
}
