package interfaces

import (
	"FoodChain/internal/game/app"
	"FoodChain/internal/game/interfaces/handler"
	"FoodChain/internal/game/interfaces/handler/http"
	ws2 "FoodChain/internal/game/interfaces/handler/ws"
	"FoodChain/internal/shared/session"
	transporthttp "FoodChain/internal/shared/transport/http"
	"FoodChain/internal/shared/transport/ws"

	"github.com/gin-gonic/gin"
)

type Module struct {
	wsHandler   *ws2.WsHandler
	httpHandler *http.HttpHandler
}

func New(s session.Manager, svc *app.GameService) *Module {
	game := handler.NewGame(s, svc)
	return &Module{
		wsHandler:   ws2.NewWsHandler(game),
		httpHandler: http.NewHttpHandler(game),
	}
}

func (m *Module) WsRegister(r *ws.Router) {
	m.wsHandler.RegisterRoutes(r)
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.httpHandler.RegisterRoutes(g)
}

var _ ws.Registrar = (*Module)(nil)
var _ transporthttp.Registrar = (*Module)(nil)
