package tools

// go-github 的请求结构大量使用指针字段
// 这里提供取地址的辅助方法

func (g getFunctions) String(source string) *string {
	return &source
}
