package http

import (
	"strconv"
	"strings"

	"FoodChain/internal/game/app/model"
	"FoodChain/internal/shared/security"
	"FoodChain/internal/shared/transport"
	"FoodChain/modules/kit/errx"

	"github.com/gin-gonic/gin"
)

const callerKey = "caller"

var (
	errMissingToken  = errx.ErrUnauthorized.WithMsg("缺少令牌")
	errInvalidToken  = errx.ErrUnauthorized.WithMsg("令牌无效")
	errSessionDenied = errx.ErrUnauthorized.WithMsg("令牌不属于该会话")
)

// auth 校验 Bearer 令牌，并要求令牌里的会话和路径上的 :sid 一致。
func (h *HttpHandler) auth(c *gin.Context) {
	ctx := c.Request.Context()

	raw := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(raw, "Bearer ")
	if !found || token == "" {
		h.error(ctx, c, errMissingToken)
		c.Abort()
		return
	}
	claims, err := security.ParseToken(token)
	if err != nil {
		h.error(ctx, c, errInvalidToken.WithCause(err))
		c.Abort()
		return
	}

	sid, err := strconv.ParseInt(c.Param("sid"), 10, 64)
	if err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		c.Abort()
		return
	}
	if sid != claims.SessionID {
		h.error(ctx, c, errSessionDenied)
		c.Abort()
		return
	}

	transport.SetCaller(ctx, claims.SessionID, claims.PlayerID)
	c.Set(callerKey, model.Caller{SessionID: claims.SessionID, PlayerID: claims.PlayerID})
	c.Next()
}

func caller(c *gin.Context) model.Caller {
	v, _ := c.Get(callerKey)
	cl, _ := v.(model.Caller)
	return cl
}
