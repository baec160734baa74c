package stats

import (
	"time"

	"github.com/eryajf/jenstat/internal/model"
)

// isFailure 判定一次构建是否算失败
// ABORTED 和仍在构建中 (Result 为空) 不计入失败
func isFailure(build *model.Build) bool {
	switch build.Result {
	case "SUCCESS", "ABORTED", "":
		return false
	default:
		return true
	}
}

// Aggregate 将一个任务的构建列表折叠为一条 JobStat
// cutoff 之前的构建被丢弃,cutoff 为零值时不过滤
// 窗口内没有构建时返回全零的 JobStat 而不是 nil,排序层需要容忍零值记录
func Aggregate(controller string, job *model.Job, builds []*model.Build, cutoff time.Time) *model.JobStat {
	stat := &model.JobStat{
		Controller: controller,
		JobName:    job.FullName,
		JobURL:     job.URL,
	}

	for _, build := range builds {
		if !cutoff.IsZero() && build.Timestamp.Before(cutoff) {
			continue
		}

		stat.Builds++
		if isFailure(build) {
			stat.Failures++
		}

		seconds := float64(build.Duration) / 1000.0
		stat.TotalRuntimeSeconds += seconds
		if seconds > stat.LongestRuntimeSeconds {
			stat.LongestRuntimeSeconds = seconds
		}
	}

	if stat.Builds > 0 {
		stat.FailureRate = float64(stat.Failures) / float64(stat.Builds)
		stat.AvgRuntimeSeconds = stat.TotalRuntimeSeconds / float64(stat.Builds)
	}

	return stat
}
