package jenkins

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/bndr/gojenkins"
	"github.com/eryajf/jenstat/internal/model"
	"github.com/eryajf/jenstat/internal/provider"
)

// ListBuilds 列出 Job 最近的构建历史
// 构建 ID 按新到旧排列,最多取 PageSize 条;PageSize <= 0 时不拉取任何构建
func (p *JenkinsProvider) ListBuilds(ctx context.Context, jobName string, opts *provider.QueryOptions) ([]*model.Build, error) {
	if err := p.client.Connect(ctx); err != nil {
		return nil, err
	}

	limit := 0
	if opts != nil {
		limit = opts.PageSize
	}
	if limit <= 0 {
		return []*model.Build{}, nil
	}

	jenkins := p.client.GetJenkins()

	parts := strings.Split(jobName, "/")
	job, err := jenkins.GetJob(ctx, parts[len(parts)-1], parts[:len(parts)-1]...)
	if err != nil {
		return nil, provider.ClassifyError(fmt.Errorf("failed to get job '%s': %w", jobName, err))
	}

	buildIds, err := job.GetAllBuildIds(ctx)
	if err != nil {
		return nil, provider.ClassifyError(fmt.Errorf("failed to get build ids: %w", err))
	}

	logx.Debug("Fetched build IDs, job %s, count %d", jobName, len(buildIds))

	if len(buildIds) > limit {
		buildIds = buildIds[:limit]
	}

	var result []*model.Build
	for _, buildId := range buildIds {
		build, err := job.GetBuild(ctx, buildId.Number)
		if err != nil {
			// 单个构建拉取失败不中断整个任务
			logx.Warn("Failed to get build, job %s, build %d, error %v", jobName, buildId.Number, err)
			continue
		}

		result = append(result, convertBuildToModel(build))
	}

	return result, nil
}

// GetBuild 获取指定构建详情
func (p *JenkinsProvider) GetBuild(ctx context.Context, jobName string, buildNumber int) (*model.Build, error) {
	if err := p.client.Connect(ctx); err != nil {
		return nil, err
	}

	jenkins := p.client.GetJenkins()

	parts := strings.Split(jobName, "/")
	job, err := jenkins.GetJob(ctx, parts[len(parts)-1], parts[:len(parts)-1]...)
	if err != nil {
		return nil, provider.ClassifyError(fmt.Errorf("failed to get job '%s': %w", jobName, err))
	}

	build, err := job.GetBuild(ctx, int64(buildNumber))
	if err != nil {
		return nil, provider.ClassifyError(fmt.Errorf("failed to get build #%d: %w", buildNumber, err))
	}

	return convertBuildToModel(build), nil
}

// convertBuildToModel 将 Jenkins Build 转换为统一的 Build 模型
func convertBuildToModel(build *gojenkins.Build) *model.Build {
	modelBuild := &model.Build{
		Number:   int(build.Raw.Number),
		URL:      build.Raw.URL,
		Result:   build.Raw.Result,
		Building: build.Raw.Building,
		Duration: int64(build.Raw.Duration), // 毫秒
	}

	if build.Raw.Timestamp > 0 {
		modelBuild.Timestamp = time.Unix(build.Raw.Timestamp/1000, 0)
	}

	return modelBuild
}
