package errx

// 系统类错误码。业务码（例如 SESSION_NOT_FOUND）由各业务包自行定义。
const (
	CodeInternal        Code = "INTERNAL_ERROR"
	CodeUnavailable     Code = "SERVICE_UNAVAILABLE"
	CodeTimeout         Code = "TIMEOUT"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeUnauthorized    Code = "UNAUTHORIZED"
)

var (
	ErrInternal    = NewSys(CodeInternal, "服务器内部错误")
	ErrUnavailable = NewSys(CodeUnavailable, "服务不可用")
	ErrTimeout     = NewSys(CodeTimeout, "请求超时")
	// 参数错误属于客户端问题，按业务错误处理
	ErrInvalidArgument = NewBiz(CodeInvalidArgument, "请求参数错误")
	ErrUnauthorized    = NewBiz(CodeUnauthorized, "未授权")
)
