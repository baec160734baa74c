package model

import "time"

// Job Jenkins 任务模型
type Job struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"` // 含文件夹路径,如 "folder/job"
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Buildable   bool   `json:"buildable"`
	LastBuild   *Build `json:"last_build,omitempty"`
}

// Build 构建模型
type Build struct {
	Number    int       `json:"number"`
	Result    string    `json:"result"` // SUCCESS, FAILURE, ABORTED, UNSTABLE, 构建中为空
	Building  bool      `json:"building"`
	Timestamp time.Time `json:"timestamp"`
	Duration  int64     `json:"duration"` // 毫秒
	URL       string    `json:"url"`
}
