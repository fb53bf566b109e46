package http

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	gameactor "FoodChain/internal/game/actor"
	"FoodChain/internal/game/actors"
	"FoodChain/internal/game/app"
	"FoodChain/internal/game/entity"
	"FoodChain/internal/game/interfaces/handler"
	"FoodChain/internal/shared/gameconfig/layout"
	"FoodChain/internal/shared/session"
	"FoodChain/internal/shared/transport"
	"FoodChain/internal/shared/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const strip = `
chunk_width: 8
chunk_height: 4
chunks_wide: 1
chunks:
  - - [b, e, e, e, e, e, e, e]
    - [r3, r13, r13, r13, r13, r13, r13, r1]
    - [e, e, e, h2-1, e, e, e, e]
    - [e, e, e, e, e, e, e, e]
`

type result struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

type server struct {
	t      *testing.T
	engine *gin.Engine
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	l, err := layout.Parse([]byte(strip))
	require.NoError(t, err)
	ids, err := utils.NewSnowflake(1)
	require.NoError(t, err)

	rt := gameactor.NewRuntime(actors.Deps{
		Layout: l,
		Rules:  entity.DefaultRules(),
		IDs:    ids,
	}, time.Second)
	t.Cleanup(rt.Shutdown)

	game := handler.NewGame(session.NewSessMgr(), app.NewGameService(rt, nil))
	engine := gin.New()
	NewHttpHandler(game).RegisterRoutes(engine.Group(""))
	return &server{t: t, engine: engine}
}

func (s *server) do(method, path, token string, body any) result {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	require.Equal(s.t, nethttp.StatusOK, w.Code)

	var r result
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &r))
	return r
}

type created struct {
	SID   string `json:"sid"`
	PID   int    `json:"pid"`
	Token string `json:"token"`
}

func (s *server) create(name string) created {
	s.t.Helper()
	r := s.do(nethttp.MethodPost, "/sessions", "", gin.H{"name": name})
	require.Equal(s.t, transport.OK, r.Code, r.Msg)
	var c created
	require.NoError(s.t, json.Unmarshal(r.Data, &c))
	require.NotEmpty(s.t, c.Token)
	return c
}

func TestHttp_创建会话并查看棋盘(t *testing.T) {
	s := newServer(t)
	c := s.create("alice")
	require.Equal(t, 1, c.PID)

	r := s.do(nethttp.MethodGet, "/sessions/"+c.SID+"/board", "", nil)
	require.Equal(t, transport.Unauthorized, r.Code)

	r = s.do(nethttp.MethodGet, "/sessions/"+c.SID+"/board", c.Token, nil)
	require.Equal(t, transport.OK, r.Code, r.Msg)
	var snap struct {
		Width  int `json:"width"`
		Height int `json:"height"`
		Roads  []struct {
			Dirs []string `json:"dirs"`
		} `json:"roads"`
	}
	require.NoError(t, json.Unmarshal(r.Data, &snap))
	require.Equal(t, 8, snap.Width)
	require.Equal(t, 4, snap.Height)
	require.Len(t, snap.Roads, 8)
	require.Equal(t, []string{"east"}, snap.Roads[0].Dirs)
}

func TestHttp_令牌和会话不匹配(t *testing.T) {
	s := newServer(t)
	a := s.create("alice")
	b := s.create("bob")

	r := s.do(nethttp.MethodGet, "/sessions/"+a.SID+"/board", b.Token, nil)
	require.Equal(t, transport.Unauthorized, r.Code)

	r = s.do(nethttp.MethodGet, "/sessions/"+a.SID+"/board", "garbage", nil)
	require.Equal(t, transport.Unauthorized, r.Code)
}

func TestHttp_摆放与晚餐(t *testing.T) {
	s := newServer(t)
	c := s.create("alice")
	base := "/sessions/" + c.SID

	r := s.do(nethttp.MethodPost, base+"/placement", c.Token, gin.H{"kind": "diner", "menu": []string{"burger"}})
	require.Equal(t, transport.OK, r.Code, r.Msg)

	r = s.do(nethttp.MethodPost, base+"/placement/preview", c.Token, gin.H{"i": 3, "j": 1})
	require.Equal(t, transport.OK, r.Code, r.Msg)
	var pv struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(r.Data, &pv))
	require.False(t, pv.Valid)

	r = s.do(nethttp.MethodPost, base+"/placement/commit", c.Token, gin.H{"i": 3, "j": 1})
	require.Equal(t, transport.Rejected, r.Code)

	r = s.do(nethttp.MethodPost, base+"/placement/commit", c.Token, gin.H{"i": 0, "j": 2})
	require.Equal(t, transport.OK, r.Code, r.Msg)

	r = s.do(nethttp.MethodPost, base+"/placement/commit", c.Token, gin.H{"i": 5, "j": 2})
	require.Equal(t, transport.NotFound, r.Code)

	r = s.do(nethttp.MethodPost, base+"/stock", c.Token, gin.H{"kind": "burger", "amount": 1})
	require.Equal(t, transport.OK, r.Code, r.Msg)
	r = s.do(nethttp.MethodPost, base+"/demand", c.Token, gin.H{"house": 1, "kind": "burger"})
	require.Equal(t, transport.OK, r.Code, r.Msg)

	r = s.do(nethttp.MethodPost, base+"/dinner-time", c.Token, nil)
	require.Equal(t, transport.Conflict, r.Code)

	r = s.do(nethttp.MethodPost, base+"/dinner-time/enable", c.Token, nil)
	require.Equal(t, transport.OK, r.Code, r.Msg)
	r = s.do(nethttp.MethodPost, base+"/dinner-time", c.Token, nil)
	require.Equal(t, transport.OK, r.Code, r.Msg)
	var info entity.RoundInfo
	require.NoError(t, json.Unmarshal(r.Data, &info))
	require.Equal(t, 1, info.Units)
}

func TestHttp_参数错误(t *testing.T) {
	s := newServer(t)
	r := s.do(nethttp.MethodPost, "/sessions", "", gin.H{})
	require.Equal(t, transport.InvalidParam, r.Code)

	c := s.create("alice")
	r = s.do(nethttp.MethodPost, "/sessions/"+c.SID+"/stock", c.Token, gin.H{"kind": "caviar", "amount": 1})
	require.Equal(t, transport.InvalidParam, r.Code)
}
