package middleware

import (
	"net/http"

	"FoodChain/internal/shared/transport"
	"FoodChain/modules/kit/logx"

	"github.com/gin-gonic/gin"
)

// AccessLog 每个请求一条访问日志。业务码由 handler 通过 transport.SetBizCode 写入，
// 没写的按 HTTP 状态推断：4xx/5xx 记系统错误，其余记成功。
func AccessLog(log logx.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		ctx := transport.NewContextWithParent(c.Request.Context(), c.Request.Method+" "+route)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if !transport.HasBizCode(ctx) {
			code := transport.OK
			if c.Writer.Status() >= http.StatusBadRequest {
				code = transport.SystemError
			}
			transport.SetBizCode(ctx, transport.BizCode(code))
		}
		transport.WriteAccessLog(ctx, log)
	}
}
