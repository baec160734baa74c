package stats

import (
	"fmt"
	"sort"

	"github.com/eryajf/jenstat/internal/model"
)

// 可选的排序指标
const (
	MetricBuilds         = "builds"
	MetricTotalRuntime   = "total_runtime_seconds"
	MetricAvgRuntime     = "avg_runtime_seconds"
	MetricLongestRuntime = "longest_runtime_seconds"
)

// Metrics 所有合法的排序指标名
var Metrics = []string{
	MetricBuilds,
	MetricTotalRuntime,
	MetricAvgRuntime,
	MetricLongestRuntime,
}

// ValidMetric 校验排序指标名
func ValidMetric(metric string) bool {
	for _, m := range Metrics {
		if m == metric {
			return true
		}
	}
	return false
}

// metricValue 取出指定指标的数值
func metricValue(stat *model.JobStat, metric string) float64 {
	switch metric {
	case MetricBuilds:
		return float64(stat.Builds)
	case MetricTotalRuntime:
		return stat.TotalRuntimeSeconds
	case MetricAvgRuntime:
		return stat.AvgRuntimeSeconds
	case MetricLongestRuntime:
		return stat.LongestRuntimeSeconds
	default:
		return 0
	}
}

// Rank 按指标降序排序并截断为前 topN 条
// 指标相同时按 job_name 升序、再按 controller 升序,保证排序结果确定
func Rank(stats []*model.JobStat, metric string, topN int) ([]*model.JobStat, error) {
	if !ValidMetric(metric) {
		return nil, fmt.Errorf("invalid sort metric %q, must be one of %v", metric, Metrics)
	}

	ranked := make([]*model.JobStat, len(stats))
	copy(ranked, stats)

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := metricValue(ranked[i], metric), metricValue(ranked[j], metric)
		if vi != vj {
			return vi > vj
		}
		if ranked[i].JobName != ranked[j].JobName {
			return ranked[i].JobName < ranked[j].JobName
		}
		return ranked[i].Controller < ranked[j].Controller
	})

	if topN >= 0 && topN < len(ranked) {
		ranked = ranked[:topN]
	}

	return ranked, nil
}
