package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/eryajf/jenstat/internal/stats"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config 一次运行的完整配置
// 优先级: 命令行参数 > 环境变量 > 配置文件 > 默认值
type Config struct {
	Controllers []string // Jenkins controller 地址列表
	Username    string
	Token       string
	Days        int    // 统计窗口天数,<= 0 表示不限
	MaxBuilds   int    // 每个任务最多拉取的构建数
	TopN        int    // 排名截断条数
	SortBy      string // 排序指标
	OutCSV      string // CSV 输出路径
	OutJSON     string // JSON 输出路径,为空则不输出
}

// Load 加载配置
// flags 为 nil 时只使用环境变量、配置文件和默认值
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.jenstat")
		v.AddConfigPath("/etc/jenstat")
	}

	// 凭证支持从环境变量读取
	v.BindEnv("user", "JENKINS_USER")
	v.BindEnv("token", "JENKINS_API_TOKEN")

	setDefaults(v)

	// 显式传入的命令行参数覆盖环境变量和配置文件
	if flags != nil {
		for _, key := range []string{"controllers", "user", "token", "days", "max-builds", "top", "sort", "out", "json"} {
			if f := flags.Lookup(key); f != nil {
				v.BindPFlag(key, f)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// 找不到配置文件时使用默认配置
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Controllers: splitControllers(v.GetStringSlice("controllers")),
		Username:    os.ExpandEnv(v.GetString("user")),
		Token:       os.ExpandEnv(v.GetString("token")),
		Days:        v.GetInt("days"),
		MaxBuilds:   v.GetInt("max-builds"),
		TopN:        v.GetInt("top"),
		SortBy:      v.GetString("sort"),
		OutCSV:      v.GetString("out"),
		OutJSON:     v.GetString("json"),
	}

	return config, nil
}

// Validate 校验配置,任何错误都在发起网络请求之前返回
func (c *Config) Validate() error {
	if len(c.Controllers) == 0 {
		return fmt.Errorf("no controllers provided, use --controllers")
	}
	if c.Username == "" || c.Token == "" {
		return fmt.Errorf("username and api token are required, use flags or env vars JENKINS_USER and JENKINS_API_TOKEN")
	}
	if !stats.ValidMetric(c.SortBy) {
		return fmt.Errorf("invalid sort metric %q, must be one of %v", c.SortBy, stats.Metrics)
	}
	if c.OutCSV == "" {
		return fmt.Errorf("csv output path is required, use --out")
	}
	return nil
}

// setDefaults 设置默认配置值
func setDefaults(v *viper.Viper) {
	v.SetDefault("days", 30)
	v.SetDefault("max-builds", 200)
	v.SetDefault("top", 25)
	v.SetDefault("sort", stats.MetricBuilds)
	v.SetDefault("out", "top_jobs.csv")
}

// splitControllers 展开逗号分隔的地址并去掉末尾的斜杠
func splitControllers(raw []string) []string {
	var result []string
	for _, item := range raw {
		for _, c := range strings.Split(item, ",") {
			c = strings.TrimRight(strings.TrimSpace(c), "/")
			if c != "" {
				result = append(result, c)
			}
		}
	}
	return result
}
