package jenkins

import (
	"context"

	"github.com/bndr/gojenkins"
	"github.com/eryajf/jenstat/internal/provider"
)

// Client Jenkins 客户端
type Client struct {
	URL      string
	Username string
	Token    string
	jenkins  *gojenkins.Jenkins
}

// NewClient 创建 Jenkins 客户端
func NewClient(url, username, token string) *Client {
	return &Client{
		URL:      url,
		Username: username,
		Token:    token,
	}
}

// Connect 连接到 Jenkins
// Init 会请求 /api/json,凭证无效时在此处以 ErrAuth 暴露
func (c *Client) Connect(ctx context.Context) error {
	if c.jenkins != nil {
		return nil
	}

	jenkins := gojenkins.CreateJenkins(nil, c.URL, c.Username, c.Token)
	if _, err := jenkins.Init(ctx); err != nil {
		return provider.ClassifyError(err)
	}

	c.jenkins = jenkins
	return nil
}

// GetJenkins 获取 Jenkins 客户端实例
func (c *Client) GetJenkins() *gojenkins.Jenkins {
	return c.jenkins
}
