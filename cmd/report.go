package cmd

import (
	"context"
	"fmt"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/eryajf/jenstat/internal/collector"
	"github.com/eryajf/jenstat/internal/config"
	"github.com/eryajf/jenstat/internal/report"
	"github.com/eryajf/jenstat/internal/stats"
	"github.com/spf13/cobra"
)

// reportCmd 生成任务排行报告
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "采集构建统计并生成排行报告",
	Long: `依次扫描所有 controller,统计窗口内每个任务的构建情况,
按指定指标排序后在终端预览前 N 名,并写出 CSV (可选 JSON) 报告。
单个 controller 认证失败或网络故障只影响其自身,其余结果照常输出。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx := context.Background()

		result, err := collector.Run(ctx, cfg)
		if err != nil {
			return err
		}

		for _, unitErr := range result.Errors {
			if unitErr.Job == "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "controller %s skipped: %v\n", unitErr.Controller, unitErr.Err)
			}
		}

		ranked, err := stats.Rank(result.Stats, cfg.SortBy, cfg.TopN)
		if err != nil {
			return err
		}

		if len(ranked) == 0 {
			fmt.Println("No job data found in the selected window.")
			return nil
		}

		fmt.Println(report.RenderTable(ranked))

		if err := report.WriteCSV(ranked, cfg.OutCSV); err != nil {
			return err
		}
		logx.Info("Wrote CSV report, path %s, rows %d", cfg.OutCSV, len(ranked))

		if cfg.OutJSON != "" {
			if err := report.WriteJSON(ranked, cfg.OutJSON); err != nil {
				return err
			}
			logx.Info("Wrote JSON report, path %s", cfg.OutJSON)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("controllers", "", "逗号分隔的 Jenkins controller 地址 (必填)")
	reportCmd.Flags().String("user", "", "Jenkins 用户名 (或环境变量 JENKINS_USER)")
	reportCmd.Flags().String("token", "", "Jenkins API Token (或环境变量 JENKINS_API_TOKEN)")
	reportCmd.Flags().Int("days", 30, "只统计最近 N 天的构建,<= 0 表示不限")
	reportCmd.Flags().Int("max-builds", 200, "每个任务最多拉取的构建数")
	reportCmd.Flags().Int("top", 25, "排行榜条数")
	reportCmd.Flags().String("sort", stats.MetricBuilds, fmt.Sprintf("排序指标 %v", stats.Metrics))
	reportCmd.Flags().String("out", "top_jobs.csv", "CSV 输出路径")
	reportCmd.Flags().String("json", "", "JSON 输出路径 (可选)")
}
