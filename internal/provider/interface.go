package provider

import (
	"context"

	"github.com/eryajf/jenstat/internal/model"
)

// CICDProvider 定义 CI/CD 工具的统一接口
// 每个 controller 对应一个独立的 Provider 实例
type CICDProvider interface {
	// GetName 返回提供商名称 (如: jenkins)
	GetName() string

	// Initialize 初始化客户端
	Initialize(config map[string]any) error

	// ListJobs 列出所有任务
	ListJobs(ctx context.Context, opts *QueryOptions) ([]*model.Job, error)

	// GetJob 获取任务详情
	GetJob(ctx context.Context, jobName string) (*model.Job, error)

	// GetJobBuilds 获取任务最近的构建历史,最多 limit 条
	GetJobBuilds(ctx context.Context, jobName string, limit int) ([]*model.Build, error)

	// HealthCheck 健康检查,验证凭证是否有效
	HealthCheck(ctx context.Context) error
}

// QueryOptions 查询选项
type QueryOptions struct {
	PageSize int // 分页大小
	PageNum  int // 页码
}
