package provider

import (
	"fmt"
	"sync"
)

// Factory 创建一个新的 CICD Provider 实例
// 注册工厂而不是单例,因为一次运行会连接多个 controller
type Factory func() CICDProvider

var (
	// factories 存储所有已注册的 Provider 工厂
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register 注册一个 Provider 工厂
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if factory == nil {
		panic("provider: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("provider: Register called twice for provider " + name)
	}
	factories[name] = factory
}

// New 创建指定名称的 Provider 实例
func New(name string) (CICDProvider, error) {
	mu.RLock()
	defer mu.RUnlock()
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("provider %s not found", name)
	}
	return factory(), nil
}

// ListProviders 列出所有已注册的 Provider 名称
func ListProviders() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// UnregisterAll 清空所有已注册的 Provider (用于测试)
func UnregisterAll() {
	mu.Lock()
	defer mu.Unlock()
	factories = make(map[string]Factory)
}
