package provider

import (
	"context"
	"errors"
	"strings"
)

// 错误分类,编排层据此决定跳过 controller、跳过 job 还是终止运行
var (
	// ErrConfig 配置错误,在发起任何网络请求之前返回
	ErrConfig = errors.New("invalid provider config")
	// ErrAuth 认证失败 (401/403)
	ErrAuth = errors.New("authentication failed")
	// ErrNotFound 资源不存在 (404),如任务在运行期间被删除
	ErrNotFound = errors.New("resource not found")
	// ErrNetwork 网络传输失败
	ErrNetwork = errors.New("network error")
)

// ClassifyError 将 gojenkins 返回的错误归入统一分类
// gojenkins 对非 2xx 响应返回仅含状态码的错误字符串 (如 "401"),
// 传输层错误则原样透出 *url.Error 或 context 取消
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrAuth) || errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrNetwork) || errors.Is(err, ErrConfig) {
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "403"):
		return errors.Join(ErrAuth, err)
	case strings.Contains(msg, "404"):
		return errors.Join(ErrNotFound, err)
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return errors.Join(ErrNetwork, err)
	default:
		return errors.Join(ErrNetwork, err)
	}
}
