package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/eryajf/jenstat/internal/model"
)

// WriteJSON 将统计结果写为 JSON 文件,字段集合与 CSV 一致,数值保持原生类型
func WriteJSON(stats []*model.JobStat, path string) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write json file: %w", err)
	}

	return nil
}
