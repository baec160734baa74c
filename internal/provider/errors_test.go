package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		// gojenkins 对非 2xx 响应返回仅含状态码的错误字符串
		{"unauthorized", errors.New("401"), ErrAuth},
		{"forbidden", errors.New("403"), ErrAuth},
		{"not found", errors.New("404"), ErrNotFound},
		{"wrapped status", fmt.Errorf("failed to get job 'x': %w", errors.New("404")), ErrNotFound},
		{"canceled", context.Canceled, ErrNetwork},
		{"transport", errors.New("dial tcp: connection refused"), ErrNetwork},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, ClassifyError(tc.in), tc.want)
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.NoError(t, ClassifyError(nil))
}

// 已分类的错误不再二次包装
func TestClassifyError_Idempotent(t *testing.T) {
	classified := ClassifyError(errors.New("401"))

	assert.Equal(t, classified, ClassifyError(classified))
}
