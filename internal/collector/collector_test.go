package collector

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/eryajf/jenstat/internal/config"
	"github.com/eryajf/jenstat/internal/model"
	"github.com/eryajf/jenstat/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture 预置的 controller 数据,被所有 fake 实例共享
type fixture struct {
	healthErr map[string]error
	jobs      map[string][]*model.Job
	builds    map[string][]*model.Build // key: url + "/" + jobName
	buildsErr map[string]error
}

// fakeProvider 按 controller 地址返回预置数据或错误
type fakeProvider struct {
	fx  *fixture
	url string
}

func (f *fakeProvider) GetName() string { return "jenkins" }

func (f *fakeProvider) Initialize(cfg map[string]any) error {
	url, ok := cfg["url"].(string)
	if !ok || url == "" {
		return fmt.Errorf("%w: url is required", provider.ErrConfig)
	}
	f.url = url
	return nil
}

func (f *fakeProvider) HealthCheck(ctx context.Context) error {
	return f.fx.healthErr[f.url]
}

func (f *fakeProvider) ListJobs(ctx context.Context, opts *provider.QueryOptions) ([]*model.Job, error) {
	return f.fx.jobs[f.url], nil
}

func (f *fakeProvider) GetJob(ctx context.Context, jobName string) (*model.Job, error) {
	return nil, provider.ErrNotFound
}

func (f *fakeProvider) GetJobBuilds(ctx context.Context, jobName string, limit int) ([]*model.Build, error) {
	key := f.url + "/" + jobName
	if err := f.fx.buildsErr[key]; err != nil {
		return nil, err
	}
	builds := f.fx.builds[key]
	if limit < len(builds) {
		builds = builds[:limit]
	}
	return builds, nil
}

// registerFake 将 fake 注册为 jenkins provider
func registerFake(t *testing.T, fx *fixture) {
	t.Helper()
	provider.UnregisterAll()
	t.Cleanup(provider.UnregisterAll)
	provider.Register("jenkins", func() provider.CICDProvider {
		return &fakeProvider{fx: fx}
	})
}

func testConfig(controllers ...string) *config.Config {
	return &config.Config{
		Controllers: controllers,
		Username:    "admin",
		Token:       "tok",
		Days:        30,
		MaxBuilds:   200,
		TopN:        25,
		SortBy:      "builds",
		OutCSV:      "out.csv",
	}
}

func successBuilds(n int, durationSec float64) []*model.Build {
	builds := make([]*model.Build, n)
	for i := range builds {
		builds[i] = &model.Build{
			Result:    "SUCCESS",
			Timestamp: time.Now(),
			Duration:  int64(durationSec * 1000),
		}
	}
	return builds
}

func TestRun_CombinesControllers(t *testing.T) {
	a, b := "https://jenkins-a.example.com", "https://jenkins-b.example.com"
	registerFake(t, &fixture{
		jobs: map[string][]*model.Job{
			a: {{Name: "app", FullName: "app", URL: a + "/job/app/"}},
			b: {{Name: "deploy", FullName: "deploy", URL: b + "/job/deploy/"}},
		},
		builds: map[string][]*model.Build{
			a + "/app":    successBuilds(3, 10),
			b + "/deploy": successBuilds(5, 20),
		},
	})

	result, err := Run(context.Background(), testConfig(a, b))

	require.NoError(t, err)
	require.Len(t, result.Stats, 2)
	assert.Empty(t, result.Errors)
	assert.Equal(t, a, result.Stats[0].Controller)
	assert.Equal(t, 3, result.Stats[0].Builds)
	assert.Equal(t, b, result.Stats[1].Controller)
	assert.Equal(t, 5, result.Stats[1].Builds)
}

// 一个 controller 认证失败时,只产出另一个的结果,错误被记录而不中断运行
func TestRun_SkipsFailedController(t *testing.T) {
	a, b := "https://jenkins-a.example.com", "https://jenkins-b.example.com"
	registerFake(t, &fixture{
		healthErr: map[string]error{a: provider.ErrAuth},
		jobs: map[string][]*model.Job{
			b: {{Name: "deploy", FullName: "deploy", URL: b + "/job/deploy/"}},
		},
		builds: map[string][]*model.Build{
			b + "/deploy": successBuilds(2, 10),
		},
	})

	result, err := Run(context.Background(), testConfig(a, b))

	require.NoError(t, err)
	require.Len(t, result.Stats, 1)
	assert.Equal(t, b, result.Stats[0].Controller)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, a, result.Errors[0].Controller)
	assert.Empty(t, result.Errors[0].Job)
	assert.ErrorIs(t, result.Errors[0].Err, provider.ErrAuth)
}

// 任务在运行期间消失只跳过该任务,其余任务照常统计
func TestRun_SkipsMissingJob(t *testing.T) {
	a := "https://jenkins-a.example.com"
	registerFake(t, &fixture{
		jobs: map[string][]*model.Job{
			a: {
				{Name: "gone", FullName: "gone", URL: a + "/job/gone/"},
				{Name: "app", FullName: "app", URL: a + "/job/app/"},
			},
		},
		builds: map[string][]*model.Build{
			a + "/app": successBuilds(1, 10),
		},
		buildsErr: map[string]error{
			a + "/gone": provider.ErrNotFound,
		},
	})

	result, err := Run(context.Background(), testConfig(a))

	require.NoError(t, err)
	require.Len(t, result.Stats, 1)
	assert.Equal(t, "app", result.Stats[0].JobName)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "gone", result.Errors[0].Job)
	assert.ErrorIs(t, result.Errors[0].Err, provider.ErrNotFound)
}

// 构建列表途中出现传输故障时放弃该 controller 剩余的任务
func TestRun_AbandonsControllerOnNetworkError(t *testing.T) {
	a := "https://jenkins-a.example.com"
	registerFake(t, &fixture{
		jobs: map[string][]*model.Job{
			a: {
				{Name: "first", FullName: "first", URL: a + "/job/first/"},
				{Name: "broken", FullName: "broken", URL: a + "/job/broken/"},
				{Name: "after", FullName: "after", URL: a + "/job/after/"},
			},
		},
		builds: map[string][]*model.Build{
			a + "/first": successBuilds(1, 10),
			a + "/after": successBuilds(1, 10),
		},
		buildsErr: map[string]error{
			a + "/broken": provider.ErrNetwork,
		},
	})

	result, err := Run(context.Background(), testConfig(a))

	require.NoError(t, err)
	require.Len(t, result.Stats, 1)
	assert.Equal(t, "first", result.Stats[0].JobName)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0].Err, provider.ErrNetwork)
}

// 没有构建的任务也产出全零记录
func TestRun_EmitsZeroStatForIdleJob(t *testing.T) {
	a := "https://jenkins-a.example.com"
	registerFake(t, &fixture{
		jobs: map[string][]*model.Job{
			a: {{Name: "idle", FullName: "idle", URL: a + "/job/idle/"}},
		},
	})

	result, err := Run(context.Background(), testConfig(a))

	require.NoError(t, err)
	require.Len(t, result.Stats, 1)
	assert.Equal(t, 0, result.Stats[0].Builds)
	assert.Zero(t, result.Stats[0].AvgRuntimeSeconds)
	assert.Zero(t, result.Stats[0].FailureRate)
}
