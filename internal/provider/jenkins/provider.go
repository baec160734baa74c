package jenkins

import (
	"context"
	"fmt"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/eryajf/jenstat/internal/model"
	"github.com/eryajf/jenstat/internal/provider"
)

func init() {
	provider.Register("jenkins", func() provider.CICDProvider {
		return NewJenkinsProvider()
	})
}

// JenkinsProvider Jenkins Provider
type JenkinsProvider struct {
	name   string
	client *Client
}

// NewJenkinsProvider 创建 Jenkins Provider
func NewJenkinsProvider() *JenkinsProvider {
	return &JenkinsProvider{
		name: "jenkins",
	}
}

// GetName 获取 Provider 名称
func (p *JenkinsProvider) GetName() string {
	return p.name
}

// Initialize 初始化 Provider
func (p *JenkinsProvider) Initialize(config map[string]any) error {
	url, ok := config["url"].(string)
	if !ok || url == "" {
		return fmt.Errorf("%w: url is required", provider.ErrConfig)
	}

	username, ok := config["username"].(string)
	if !ok || username == "" {
		return fmt.Errorf("%w: username is required", provider.ErrConfig)
	}

	token, ok := config["token"].(string)
	if !ok || token == "" {
		return fmt.Errorf("%w: token is required", provider.ErrConfig)
	}

	p.client = NewClient(url, username, token)

	logx.Debug("Jenkins Provider initialized, url %s, username %s", url, username)

	return nil
}

// GetJobBuilds 实现 CICDProvider 接口
func (p *JenkinsProvider) GetJobBuilds(ctx context.Context, jobName string, limit int) ([]*model.Build, error) {
	opts := &provider.QueryOptions{
		PageSize: limit,
		PageNum:  1,
	}
	return p.ListBuilds(ctx, jobName, opts)
}

// HealthCheck 健康检查
func (p *JenkinsProvider) HealthCheck(ctx context.Context) error {
	if p.client == nil {
		return fmt.Errorf("%w: client not initialized", provider.ErrConfig)
	}

	if err := p.client.Connect(ctx); err != nil {
		return err
	}

	logx.Debug("Health check passed, url %s", p.client.URL)
	return nil
}
