package jenkins

import (
	"context"
	"fmt"
	"strings"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/bndr/gojenkins"
	"github.com/eryajf/jenstat/internal/model"
	"github.com/eryajf/jenstat/internal/provider"
)

const folderClass = "com.cloudbees.hudson.plugins.folder.Folder"

// ListJobs 列出所有 Job,递归展开文件夹
func (p *JenkinsProvider) ListJobs(ctx context.Context, opts *provider.QueryOptions) ([]*model.Job, error) {
	if err := p.client.Connect(ctx); err != nil {
		return nil, err
	}

	jenkins := p.client.GetJenkins()

	jobs, err := jenkins.GetAllJobs(ctx)
	if err != nil {
		return nil, provider.ClassifyError(fmt.Errorf("failed to get all jobs: %w", err))
	}

	result, err := p.expandJobs(ctx, jobs)
	if err != nil {
		return nil, err
	}

	logx.Debug("Fetched Jenkins jobs, url %s, count %d", p.client.URL, len(result))

	// 应用分页
	if opts != nil && opts.PageSize > 0 && opts.PageNum > 0 {
		start := (opts.PageNum - 1) * opts.PageSize
		end := start + opts.PageSize

		if start >= len(result) {
			return []*model.Job{}, nil
		}
		if end > len(result) {
			end = len(result)
		}

		result = result[start:end]
	}

	return result, nil
}

// expandJobs 将文件夹类型的 Job 递归展开为其内部的 Job
func (p *JenkinsProvider) expandJobs(ctx context.Context, jobs []*gojenkins.Job) ([]*model.Job, error) {
	var result []*model.Job

	for _, job := range jobs {
		if job.Raw.Class == folderClass {
			inner, err := job.GetInnerJobs(ctx)
			if err != nil {
				logx.Warn("Failed to expand folder, path %s, error %v", job.Base, err)
				continue
			}

			expanded, err := p.expandJobs(ctx, inner)
			if err != nil {
				return nil, err
			}
			result = append(result, expanded...)
			continue
		}

		result = append(result, convertJobToModel(job))
	}

	return result, nil
}

// GetJob 获取 Job 详情,支持文件夹路径,如 "folder/subfolder/job"
func (p *JenkinsProvider) GetJob(ctx context.Context, jobName string) (*model.Job, error) {
	if err := p.client.Connect(ctx); err != nil {
		return nil, err
	}

	jenkins := p.client.GetJenkins()

	parts := strings.Split(jobName, "/")
	job, err := jenkins.GetJob(ctx, parts[len(parts)-1], parts[:len(parts)-1]...)
	if err != nil {
		return nil, provider.ClassifyError(fmt.Errorf("failed to get job '%s': %w", jobName, err))
	}

	return convertJobToModel(job), nil
}

// convertJobToModel 将 Jenkins Job 转换为统一的 Job 模型
func convertJobToModel(job *gojenkins.Job) *model.Job {
	modelJob := &model.Job{
		Name:        job.GetName(),
		FullName:    fullNameFromBase(job.Base),
		Description: job.GetDescription(),
		URL:         job.Raw.URL,
		Buildable:   job.Raw.Buildable,
	}

	if job.Raw.LastBuild.Number > 0 {
		modelJob.LastBuild = &model.Build{
			Number: int(job.Raw.LastBuild.Number),
			URL:    job.Raw.LastBuild.URL,
		}
	}

	return modelJob
}

// fullNameFromBase 从 API 路径还原完整任务名
// "/job/folder/job/app" -> "folder/app"
func fullNameFromBase(base string) string {
	return strings.ReplaceAll(strings.TrimPrefix(base, "/job/"), "/job/", "/")
}
