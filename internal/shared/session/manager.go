package session

import (
	"sync"

	"FoodChain/internal/shared/transport/ws"
)

// Key 一条连接代表某局游戏里的某个玩家。
type Key struct {
	SessionID int64
	PlayerID  int
}

type Manager interface {
	Bind(key Key, conn ws.WSConn)
	UnbindConn(conn ws.WSConn)
	GetConn(key Key) (ws.WSConn, bool)
	GetKey(conn ws.WSConn) (Key, bool)
	// PushSession 推给该局所有在线玩家，返回推送的连接数
	PushSession(sessionID int64, name string, data any) int
}

type SessMgr struct {
	sync.RWMutex
	key2conn map[Key]ws.WSConn
	conn2key map[ws.WSConn]Key
	watched  map[ws.WSConn]struct{}
}

func NewSessMgr() *SessMgr {
	return &SessMgr{
		key2conn: make(map[Key]ws.WSConn),
		conn2key: make(map[ws.WSConn]Key),
		watched:  make(map[ws.WSConn]struct{}),
	}
}

func (s *SessMgr) Bind(key Key, conn ws.WSConn) {
	if conn == nil {
		return
	}
	s.Lock()
	defer s.Unlock()

	// 为每条连接只启动一次 watcher：连接关闭后自动解绑，避免 conn2key 逐步膨胀
	if _, ok := s.watched[conn]; !ok {
		s.watched[conn] = struct{}{}
		go s.watchConnDone(conn)
	}

	// 一条连接只对应一个玩家，换绑时清掉旧的
	if old, ok := s.conn2key[conn]; ok && old != key && s.key2conn[old] == conn {
		delete(s.key2conn, old)
	}

	oldConn := s.key2conn[key]
	// 同一玩家重复登录，踢掉原来的那个
	if oldConn != nil && oldConn != conn {
		oldConn.Push(ws.RobLoginMsg, nil)
		clearScope(oldConn)
		oldConn.Close()
		delete(s.conn2key, oldConn)
	}
	s.key2conn[key] = conn
	s.conn2key[conn] = key
	conn.SetProperty(ws.ConnKeySession, key.SessionID)
	conn.SetProperty(ws.ConnKeyPlayer, key.PlayerID)
}

func (s *SessMgr) watchConnDone(conn ws.WSConn) {
	<-conn.Done()
	s.UnbindConn(conn)
}

func (s *SessMgr) UnbindConn(conn ws.WSConn) {
	s.Lock()
	defer s.Unlock()
	delete(s.watched, conn)
	key, ok := s.conn2key[conn]
	if !ok {
		return
	}
	delete(s.conn2key, conn)
	clearScope(conn)
	if s.key2conn[key] == conn {
		delete(s.key2conn, key)
	}
}

func clearScope(conn ws.WSConn) {
	conn.RemoveProperty(ws.ConnKeySession)
	conn.RemoveProperty(ws.ConnKeyPlayer)
}

func (s *SessMgr) GetConn(key Key) (ws.WSConn, bool) {
	s.RLock()
	defer s.RUnlock()
	conn, ok := s.key2conn[key]
	return conn, ok
}

func (s *SessMgr) GetKey(conn ws.WSConn) (Key, bool) {
	s.RLock()
	defer s.RUnlock()
	key, ok := s.conn2key[conn]
	return key, ok
}

func (s *SessMgr) PushSession(sessionID int64, name string, data any) int {
	s.RLock()
	conns := make([]ws.WSConn, 0, 4)
	for key, conn := range s.key2conn {
		if key.SessionID == sessionID {
			conns = append(conns, conn)
		}
	}
	s.RUnlock()

	for _, conn := range conns {
		conn.Push(name, data)
	}
	return len(conns)
}

var _ Manager = (*SessMgr)(nil)
