package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 客户端业务码。响应体 {code, msg, data} 里的 code 取这些值。
const (
	OK           = 0
	InvalidParam = 1
	Unauthorized = 2
	NotFound     = 3
	Conflict     = 4
	Rejected     = 5

	SystemError = 500
	Unavailable = 503
	Timeout     = 504
)
