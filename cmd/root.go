package cmd

import (
	"os"

	"github.com/spf13/cobra"

	// 注册 jenkins provider
	_ "github.com/eryajf/jenstat/internal/provider/jenkins"
)

var configFile string

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "jenstat",
	Short: "统计 Jenkins 任务构建情况并输出排行报告",
	Long:  `查询一个或多个 Jenkins controller,统计时间窗口内每个任务的构建次数、运行时长和失败率,排序后输出 CSV/JSON 报告。`,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "配置文件路径 (默认搜索 ./config.yaml, ~/.jenstat, /etc/jenstat)")
}
