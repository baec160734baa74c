package collector

import (
	"context"
	"errors"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/eryajf/jenstat/internal/config"
	"github.com/eryajf/jenstat/internal/model"
	"github.com/eryajf/jenstat/internal/provider"
	"github.com/eryajf/jenstat/internal/stats"
	"github.com/google/uuid"
)

// 每扫描 pacingEvery 个任务暂停 pacingSleep,避免对 controller 造成请求尖峰
const (
	pacingEvery = 50
	pacingSleep = 300 * time.Millisecond
)

// UnitError 单个 controller 或单个任务采集失败的记录
type UnitError struct {
	Controller string
	Job        string // 为空表示整个 controller 失败
	Err        error
}

// Result 一次采集的结果
// 部分 controller 失败不影响其余结果,失败明细记录在 Errors 中
type Result struct {
	Stats  []*model.JobStat
	Errors []UnitError
}

// Run 依次遍历所有 controller,采集并聚合任务统计
// 认证失败或网络故障跳过该 controller,任务消失只跳过该任务,运行始终继续
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	runID := uuid.New().String()
	logx.Info("Collect started, run %s, controllers %d, days %d, max builds %d",
		runID, len(cfg.Controllers), cfg.Days, cfg.MaxBuilds)

	var cutoff time.Time
	if cfg.Days > 0 {
		cutoff = time.Now().UTC().AddDate(0, 0, -cfg.Days)
	}

	result := &Result{}

	for _, controller := range cfg.Controllers {
		p, err := provider.New("jenkins")
		if err != nil {
			return nil, err
		}

		providerConfig := map[string]any{
			"url":      controller,
			"username": cfg.Username,
			"token":    cfg.Token,
		}

		if err := p.Initialize(providerConfig); err != nil {
			logx.Error("Failed to initialize provider, controller %s, error %v", controller, err)
			result.Errors = append(result.Errors, UnitError{Controller: controller, Err: err})
			continue
		}

		if err := p.HealthCheck(ctx); err != nil {
			logx.Warn("Unable to reach controller, controller %s, error %v", controller, err)
			result.Errors = append(result.Errors, UnitError{Controller: controller, Err: err})
			continue
		}

		count := collectController(ctx, p, controller, cfg, cutoff, result)
		logx.Info("Controller scanned, run %s, controller %s, jobs %d", runID, controller, count)
	}

	logx.Info("Collect finished, run %s, stats %d, errors %d", runID, len(result.Stats), len(result.Errors))

	return result, nil
}

// collectController 采集单个 controller 的所有任务,返回产生的统计条数
func collectController(ctx context.Context, p provider.CICDProvider, controller string, cfg *config.Config, cutoff time.Time, result *Result) int {
	jobs, err := p.ListJobs(ctx, nil)
	if err != nil {
		logx.Warn("Failed to list jobs, controller %s, error %v", controller, err)
		result.Errors = append(result.Errors, UnitError{Controller: controller, Err: err})
		return 0
	}

	count := 0
	for i, job := range jobs {
		if i > 0 && i%pacingEvery == 0 {
			time.Sleep(pacingSleep)
		}

		builds, err := p.GetJobBuilds(ctx, job.FullName, cfg.MaxBuilds)
		if err != nil {
			result.Errors = append(result.Errors, UnitError{Controller: controller, Job: job.FullName, Err: err})

			if errors.Is(err, provider.ErrNotFound) {
				// 任务在运行期间被删除,跳过该任务
				logx.Warn("Job disappeared, controller %s, job %s", controller, job.FullName)
				continue
			}
			// 传输故障时放弃该 controller 剩余的任务
			logx.Warn("Failed to list builds, controller %s, job %s, error %v", controller, job.FullName, err)
			if errors.Is(err, provider.ErrNetwork) {
				break
			}
			continue
		}

		result.Stats = append(result.Stats, stats.Aggregate(controller, job, builds, cutoff))
		count++
	}

	return count
}
