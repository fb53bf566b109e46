package main

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"FoodChain/internal/board/domain"
	"FoodChain/internal/delivery/narrate"
	"FoodChain/internal/delivery/service"
	gameactor "FoodChain/internal/game/actor"
	"FoodChain/internal/game/actors"
	"FoodChain/internal/game/app"
	"FoodChain/internal/game/entity"
	"FoodChain/internal/game/interfaces"
	"FoodChain/internal/shared/gameconfig/layout"
	"FoodChain/internal/shared/logs"
	"FoodChain/internal/shared/serverconfig"
	"FoodChain/internal/shared/session"
	transporthttp "FoodChain/internal/shared/transport/http"
	"FoodChain/internal/shared/transport/ws"
	"FoodChain/internal/shared/utils"
	"FoodChain/modules/kit/logx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	conf, err := serverconfig.Load("")
	if err != nil {
		panic(err)
	}
	if _, err := logs.Init("foodchain", conf.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()
	logs.Info("conf", zap.Any("conf", conf))

	host := conf.HTTPServer.Host
	if host == "" {
		host = "0.0.0.0"
	}
	addr := fmt.Sprintf("%s:%d", host, conf.HTTPServer.Port)

	l, err := layout.LoadOrDefault(conf.Game.Layout)
	if err != nil {
		logs.Fatal("load layout failed", zap.String("path", conf.Game.Layout), zap.Error(err))
	}
	nodeID, err := utils.NodeIDFromEnv()
	if err != nil {
		logs.Fatal("read node id failed", zap.Error(err))
	}
	ids, err := utils.NewSnowflake(nodeID)
	if err != nil {
		logs.Fatal("init snowflake failed", zap.Error(err))
	}

	baseLogger := logx.NewZapLogger(logs.Logger())
	sessMgr := session.NewSessMgr()
	narrator := narrate.NewPlayer(narrate.Multi(
		narrate.NewLogSink(baseLogger),
		narrate.NewPushSink(sessMgr),
	))

	runtime := gameactor.NewRuntime(actors.Deps{
		Layout:   l,
		Rules:    rulesFromConfig(conf.Game),
		Narrator: narrator,
		Pusher:   sessMgr,
		IDs:      ids,
		Log:      baseLogger,
	}, conf.Actor.AskTimeout)
	defer runtime.Shutdown()

	gameModule := interfaces.New(sessMgr, app.NewGameService(runtime, nil))

	wsRouter := ws.NewRouter(baseLogger)
	wsRouter.Register(gameModule)

	httpServer := transporthttp.NewHttpServer(addr, nil, baseLogger)
	httpServer.Register(gameModule)

	wsServer := ws.NewServer(wsRouter, conf.HTTPServer.NeedSecret, baseLogger)
	httpServer.Engine().Any("/ws", gin.WrapH(wsServer))
	httpServer.Engine().Any("/ws/*any", gin.WrapH(wsServer))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logs.Info("server listening", zap.String("addr", addr))
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("server start failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		if err != nil {
			logs.Error("服务异常退出", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
}

func rulesFromConfig(g serverconfig.GameConfig) entity.Rules {
	n := g.Narration
	return entity.Rules{
		Board: domain.Rules{
			HouseCapacity: g.HouseCapacity,
			DinerWidth:    g.DinerWidth,
			DinerHeight:   g.DinerHeight,
		},
		UnitPrice:  g.UnitPrice,
		DrinkRange: g.DrinkRange,
		StartCash:  g.StartCash,
		MaxPlayers: g.MaxPlayers,
		Timings: service.Timings{
			Tick:       n.Tick,
			FirstPause: n.FirstPause,
			Step:       n.Step,
			TurnPause:  n.TurnPause,
			FinalPause: n.FinalPause,
			ShortPause: n.ShortPause,
		},
	}
}
