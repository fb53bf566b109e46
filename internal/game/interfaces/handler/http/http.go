package http

import (
	"context"
	nethttp "net/http"
	"strconv"

	"FoodChain/internal/game/app/model"
	"FoodChain/internal/game/interfaces/handler"
	"FoodChain/internal/game/interfaces/handler/http/dto"
	"FoodChain/internal/shared/transport"

	"github.com/gin-gonic/gin"
)

type HttpHandler struct {
	game *handler.Game
}

func NewHttpHandler(g *handler.Game) *HttpHandler {
	return &HttpHandler{game: g}
}

func (h *HttpHandler) RegisterRoutes(group *gin.RouterGroup) {
	sessions := group.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.POST("/:sid/players", h.Join)

	s := sessions.Group("/:sid", h.auth)
	s.GET("/board", h.Board)

	s.POST("/placement", h.BeginPlacement)
	s.POST("/placement/preview", h.PreviewPlacement)
	s.POST("/placement/rotate", h.RotatePlacement)
	s.POST("/placement/commit", h.CommitPlacement)
	s.DELETE("/placement", h.CancelPlacement)

	s.POST("/stock", h.AddStock)
	s.POST("/drinks", h.CollectDrinks)
	s.POST("/demand", h.AddDemand)
	s.POST("/marketing", h.RunMarketing)

	s.POST("/dinner-time/enable", h.EnableDinnerTime)
	s.POST("/dinner-time", h.StartDinner)
	s.DELETE("/dinner-time", h.CancelDinner)
}

// ============ Session ============

func (h *HttpHandler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	var req model.CreateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	resp, err := h.game.GameService.CreateSession(ctx, req)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, resp)
}

func (h *HttpHandler) Join(c *gin.Context) {
	ctx := c.Request.Context()

	sid, err := strconv.ParseInt(c.Param("sid"), 10, 64)
	if err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	resp, err := h.game.GameService.Join(ctx, model.JoinReq{SessionID: sid, Name: body.Name})
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, resp)
}

func (h *HttpHandler) Board(c *gin.Context) {
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.Board(ctx, cl)
	})
}

// ============ Placement ============

func (h *HttpHandler) BeginPlacement(c *gin.Context) {
	var req model.PlacementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.BeginPlacement(ctx, cl, req)
	})
}

func (h *HttpHandler) PreviewPlacement(c *gin.Context) {
	var req model.PointReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.PreviewPlacement(ctx, cl, req)
	})
}

func (h *HttpHandler) RotatePlacement(c *gin.Context) {
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.RotatePlacement(ctx, cl)
	})
}

func (h *HttpHandler) CommitPlacement(c *gin.Context) {
	var req model.PointReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.CommitPlacement(ctx, cl, req)
	})
}

func (h *HttpHandler) CancelPlacement(c *gin.Context) {
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.CancelPlacement(ctx, cl)
	})
}

// ============ Economy ============

func (h *HttpHandler) AddStock(c *gin.Context) {
	var req model.StockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.AddStock(ctx, cl, req)
	})
}

func (h *HttpHandler) CollectDrinks(c *gin.Context) {
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.CollectDrinks(ctx, cl)
	})
}

func (h *HttpHandler) AddDemand(c *gin.Context) {
	var req model.DemandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.AddDemand(ctx, cl, req)
	})
}

func (h *HttpHandler) RunMarketing(c *gin.Context) {
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.RunMarketing(ctx, cl)
	})
}

// ============ Dinner time ============

func (h *HttpHandler) EnableDinnerTime(c *gin.Context) {
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.EnableDinnerTime(ctx, cl)
	})
}

func (h *HttpHandler) StartDinner(c *gin.Context) {
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.StartDinner(ctx, cl)
	})
}

func (h *HttpHandler) CancelDinner(c *gin.Context) {
	h.reply(c, func(ctx context.Context, cl model.Caller) (any, error) {
		return h.game.GameService.CancelDinner(ctx, cl)
	})
}

// ============ Response Helpers ============

func (h *HttpHandler) reply(c *gin.Context, call func(ctx context.Context, cl model.Caller) (any, error)) {
	ctx := c.Request.Context()
	data, err := call(ctx, caller(c))
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, data)
}

func (h *HttpHandler) ok(c *gin.Context, data any) {
	transport.SetBizCode(c.Request.Context(), transport.OK)
	c.JSON(nethttp.StatusOK, dto.Success(transport.OK, data))
}

func (h *HttpHandler) fail(c *gin.Context, code int, msg string) {
	transport.SetBizCode(c.Request.Context(), transport.BizCode(code))
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}

func (h *HttpHandler) error(ctx context.Context, c *gin.Context, err error) {
	code, msg := handler.HandleError(ctx, err)
	h.fail(c, code, msg)
}
