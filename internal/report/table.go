package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/eryajf/jenstat/internal/model"
)

// RenderTable 渲染终端预览表格,运行时长显示为人类可读格式
func RenderTable(stats []*model.JobStat) string {
	rows := [][]string{}

	for _, stat := range stats {
		rows = append(rows, []string{
			stat.Controller,
			stat.JobName,
			fmt.Sprintf("%d", stat.Builds),
			fmt.Sprintf("%d", stat.Failures),
			fmt.Sprintf("%.2f%%", stat.FailureRate*100),
			FmtSeconds(stat.AvgRuntimeSeconds),
			FmtSeconds(stat.LongestRuntimeSeconds),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers("Controller", "Job", "Builds", "Failures", "Failure Rate", "Avg Runtime", "Longest Runtime").
		Rows(rows...)

	return t.String()
}

// FmtSeconds 将秒数格式化为 "1h 2m 3s" 形式
func FmtSeconds(seconds float64) string {
	if seconds <= 0 {
		return "0s"
	}

	total := int(seconds)
	h := total / 3600
	m := total % 3600 / 60
	s := total % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
