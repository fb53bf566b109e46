package ws

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"FoodChain/internal/shared/utils"
	"FoodChain/modules/kit/logx"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const outChanSize = 1000

type WsServer struct {
	conn     *websocket.Conn
	router   *Router
	outChan  chan *WsMsgResp
	Seq      int64
	property map[string]any
	sync.RWMutex
	needSecret bool
	writeMu    sync.Mutex
	done       chan struct{}
	closeOnce  sync.Once
	log        logx.Logger
}

func NewWsServer(wsConn *websocket.Conn, needSecret bool, l logx.Logger) *WsServer {
	return &WsServer{
		conn:       wsConn,
		outChan:    make(chan *WsMsgResp, outChanSize),
		property:   make(map[string]any),
		Seq:        0,
		needSecret: needSecret,
		done:       make(chan struct{}),
		log:        logx.OrNop(l),
	}
}

func (s *WsServer) Router(router *Router) {
	s.router = router
}

func (s *WsServer) SetProperty(key string, value any) {
	s.Lock()
	defer s.Unlock()
	s.property[key] = value
}

func (s *WsServer) GetProperty(key string) any {
	s.RLock()
	defer s.RUnlock()
	return s.property[key]
}

func (s *WsServer) RemoveProperty(key string) {
	s.Lock()
	defer s.Unlock()
	delete(s.property, key)
}

func (s *WsServer) Addr() string {
	return s.conn.RemoteAddr().String()
}

// Push 连接关闭后或发送队列满时丢弃，不阻塞调用方。
func (s *WsServer) Push(name string, data any) {
	rsp := &WsMsgResp{
		Body: &RespBody{
			Seq:  0,
			Name: name,
			Msg:  data,
		},
	}
	s.enqueue(rsp)
}

func (s *WsServer) enqueue(rsp *WsMsgResp) {
	select {
	case <-s.done:
	case s.outChan <- rsp:
	default:
		s.log.Warn("ws_server out chan full, drop msg", zap.String("name", rsp.Body.Name))
	}
}

func (s *WsServer) Run() {
	go s.readMsgLoop()
	go s.writeMsgLoop()
}

func (s *WsServer) secretKey() string {
	key, _ := s.GetProperty(SecretKey).(string)
	return key
}

func (s *WsServer) readMsgLoop() {
	defer func() {
		if err := recover(); err != nil {
			e := fmt.Sprintf("%v", err)
			s.log.Error("ws readMsgLoop error", zap.String("err", e))
		}
		s.Close()
	}()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.log.Info("ws_server read msg", zap.Error(err))
			return
		}

		key := s.secretKey()
		if s.needSecret && key == "" {
			s.log.Error("ws_server readMsgLoop not found secretKey")
			continue
		}

		// 1.解压并解密
		plain, err := DecodeFrame(data, key)
		if err != nil {
			s.log.Error("ws_server readMsgLoop decode error", zap.Error(err))
			// 出错后，重新握手
			s.handshake()
			continue
		}

		// 2.转为 json
		reqBody := ReqBody{}
		if err := json.Unmarshal(plain, &reqBody); err != nil {
			s.log.Error("ws_server readMsgLoop unmarshal json error", zap.Error(err))
			continue
		}

		// 3.分发消息，req 和 resp 的 Seq 必须一致
		req := WsMsgReq{Body: &reqBody, Conn: s}
		resp := WsMsgResp{Body: &RespBody{Seq: req.Body.Seq, Name: reqBody.Name, Msg: reqBody.Msg}}
		if reqBody.Name == HeartbeatMsg {
			h := &Heartbeat{}
			if err := mapstructure.Decode(reqBody.Msg, h); err != nil {
				s.log.Debug("ws_server heartbeat decode", zap.Error(err))
			}
			h.STime = time.Now().UnixMilli()
			resp.Body.Msg = h
		} else {
			s.log.Debug("ws_server read msg", zap.String("name", reqBody.Name), zap.Int64("seq", reqBody.Seq))
			s.router.Dispatch(&req, &resp)
		}

		s.enqueue(&resp)
	}
}

func (s *WsServer) writeMsgLoop() {
	for {
		select {
		case msg, ok := <-s.outChan:
			if ok {
				s.write(msg)
			}
		case <-s.done:
			return
		}
	}
}

func (s *WsServer) Close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
		close(s.done)
	})
}

func (s *WsServer) Done() <-chan struct{} {
	return s.done
}

func (s *WsServer) write(msg *WsMsgResp) {
	marshal, err := json.Marshal(msg.Body)
	if err != nil {
		s.log.Error("ws_server write marshal json error", zap.Error(err))
		return
	}

	key := s.secretKey()
	if s.needSecret && key == "" {
		s.log.Error("ws_server write not found secretKey", zap.String("name", msg.Body.Name))
		return
	}

	frame, err := EncodeFrame(marshal, key)
	if err != nil {
		s.log.Error("ws_server write encode error", zap.Error(err))
		return
	}

	if err := s.writeFrame(frame); err != nil {
		s.log.Error("ws_server write error", zap.Error(err))
	}
}

// writeFrame gorilla 连接同一时刻只允许一个写者，握手和写循环共用这把锁。
func (s *WsServer) writeFrame(frame []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	// 压缩后的密文是二进制字节流，必须走 BinaryMessage，不能走 TextMessage
	return s.conn.WriteMessage(websocket.BinaryMessage, frame)
}

// handshake 下发密钥。握手帧本身只压缩不加密，need_secret 关闭时密钥为空。
func (s *WsServer) handshake() {
	secretKey := ""
	if s.needSecret {
		secretKey = s.secretKey()
		if secretKey == "" {
			secretKey = utils.RandSeq(16)
		}
		s.SetProperty(SecretKey, secretKey)
	}

	body := &RespBody{Name: HandshakeMsg, Msg: &Handshake{Key: secretKey}}
	data, err := json.Marshal(body)
	if err != nil {
		s.log.Error("ws_server handshake marshal json error", zap.Error(err))
		return
	}

	frame, err := EncodeFrame(data, "")
	if err != nil {
		s.log.Error("ws_server handshake zip error", zap.Error(err))
		return
	}
	if err := s.writeFrame(frame); err != nil {
		s.log.Error("ws_server handshake write error", zap.Error(err))
	}
}
