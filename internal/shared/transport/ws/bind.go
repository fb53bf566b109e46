package ws

import (
	"errors"

	"github.com/go-viper/mapstructure/v2"
)

var errEmptyBody = errors.New("ws request body is nil")

// Scope 连接当前绑定的会话和玩家，session.join 成功后才有。
type Scope struct {
	SessionID int64
	PlayerID  int
}

// ScopeOf 从连接属性里取 Scope。
func ScopeOf(conn WSConn) (Scope, bool) {
	if conn == nil {
		return Scope{}, false
	}
	sid, _ := conn.GetProperty(ConnKeySession).(int64)
	pid, _ := conn.GetProperty(ConnKeyPlayer).(int)
	if sid == 0 || pid == 0 {
		return Scope{}, false
	}
	return Scope{SessionID: sid, PlayerID: pid}, true
}

// BindMsg 把 Body.Msg 解到 dst。沿用 json 标签，字符串形式的数字和
// 实现了 TextUnmarshaler 的枚举都能直接解。
func BindMsg(req *WsMsgReq, dst any) error {
	if req == nil || req.Body == nil {
		return errEmptyBody
	}
	if req.Body.Msg == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		Result:           dst,
	})
	if err != nil {
		return err
	}
	return dec.Decode(req.Body.Msg)
}
