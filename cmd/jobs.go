package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/eryajf/jenstat/internal/config"
	"github.com/eryajf/jenstat/internal/provider"
	"github.com/spf13/cobra"
)

var (
	jobsOutputType string
	jobsPageSize   int
	jobsPageNum    int
)

// jobsCmd 列出所有 Job
var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "列出 controller 上的所有 Job",
	Long:  `列出每个 controller 上的所有 Job,文件夹会递归展开。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile, cmd.Flags())
		if err != nil {
			return err
		}
		if len(cfg.Controllers) == 0 {
			return fmt.Errorf("no controllers provided, use --controllers")
		}
		if cfg.Username == "" || cfg.Token == "" {
			return fmt.Errorf("username and api token are required, use flags or env vars JENKINS_USER and JENKINS_API_TOKEN")
		}

		ctx := context.Background()

		for _, controller := range cfg.Controllers {
			p, err := provider.New("jenkins")
			if err != nil {
				return err
			}

			providerConfig := map[string]any{
				"url":      controller,
				"username": cfg.Username,
				"token":    cfg.Token,
			}

			if err := p.Initialize(providerConfig); err != nil {
				return fmt.Errorf("failed to initialize jenkins provider: %w", err)
			}

			opts := &provider.QueryOptions{
				PageSize: jobsPageSize,
				PageNum:  jobsPageNum,
			}

			jobs, err := p.ListJobs(ctx, opts)
			if err != nil {
				logx.Warn("Failed to list jobs, controller %s, error %v", controller, err)
				fmt.Fprintf(cmd.ErrOrStderr(), "controller %s skipped: %v\n", controller, err)
				continue
			}

			if jobsOutputType == "json" {
				data, _ := json.MarshalIndent(jobs, "", "  ")
				fmt.Println(string(data))
				continue
			}

			rows := [][]string{}
			for _, job := range jobs {
				buildable := "✓"
				if !job.Buildable {
					buildable = "✗"
				}

				lastBuild := "-"
				if job.LastBuild != nil {
					lastBuild = fmt.Sprintf("#%d", job.LastBuild.Number)
				}

				rows = append(rows, []string{
					job.FullName,
					lastBuild,
					buildable,
				})
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
				Headers("Job", "Last Build", "Buildable").
				Rows(rows...)

			fmt.Printf("Controller: %s\n", controller)
			fmt.Println(t)
			fmt.Println()
			logx.Info("Query completed, controller %s, count %d", controller, len(jobs))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.Flags().String("controllers", "", "逗号分隔的 Jenkins controller 地址 (必填)")
	jobsCmd.Flags().String("user", "", "Jenkins 用户名 (或环境变量 JENKINS_USER)")
	jobsCmd.Flags().String("token", "", "Jenkins API Token (或环境变量 JENKINS_API_TOKEN)")
	jobsCmd.Flags().IntVar(&jobsPageSize, "page-size", 0, "分页大小,0 表示不分页")
	jobsCmd.Flags().IntVar(&jobsPageNum, "page-num", 1, "页码")
	jobsCmd.Flags().StringVarP(&jobsOutputType, "output", "o", "table", "输出格式 (table, json)")
}
