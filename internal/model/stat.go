package model

// JobStat 单个任务在统计窗口内的聚合结果
// 每个 (controller, job_name) 组合在一次运行中只产生一条记录
type JobStat struct {
	Controller            string  `json:"controller"`
	JobName               string  `json:"job_name"`
	JobURL                string  `json:"job_url"`
	Builds                int     `json:"builds"`
	Failures              int     `json:"failures"`
	FailureRate           float64 `json:"failure_rate"`
	TotalRuntimeSeconds   float64 `json:"total_runtime_seconds"`
	AvgRuntimeSeconds     float64 `json:"avg_runtime_seconds"`
	LongestRuntimeSeconds float64 `json:"longest_runtime_seconds"`
}
