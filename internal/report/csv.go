package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/eryajf/jenstat/internal/model"
)

// Columns CSV 报告的固定列,与 JobStat 字段一一对应
var Columns = []string{
	"controller",
	"job_name",
	"job_url",
	"builds",
	"failures",
	"failure_rate",
	"total_runtime_seconds",
	"avg_runtime_seconds",
	"longest_runtime_seconds",
}

// WriteCSV 将统计结果写为 CSV 文件
// 运行时长保留两位小数,失败率保留四位小数
func WriteCSV(stats []*model.JobStat, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, stat := range stats {
		row := []string{
			stat.Controller,
			stat.JobName,
			stat.JobURL,
			strconv.Itoa(stat.Builds),
			strconv.Itoa(stat.Failures),
			fmt.Sprintf("%.4f", stat.FailureRate),
			fmt.Sprintf("%.2f", stat.TotalRuntimeSeconds),
			fmt.Sprintf("%.2f", stat.AvgRuntimeSeconds),
			fmt.Sprintf("%.2f", stat.LongestRuntimeSeconds),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
