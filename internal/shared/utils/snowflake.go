package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// 2025-01-01 00:00:00 UTC，毫秒
	epochMilli int64 = 1735689600000

	nodeBits uint8 = 10
	seqBits  uint8 = 12

	maxNodeID int64 = -1 ^ (-1 << nodeBits)
	maxSeq    int64 = -1 ^ (-1 << seqBits)
)

// Snowflake 生成对局 ID：时间戳 | 节点 | 序号，单调递增。
type Snowflake struct {
	mu     sync.Mutex
	nodeID int64
	lastTS int64
	seq    int64
	now    func() int64
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	if nodeID < 0 || nodeID > maxNodeID {
		return nil, fmt.Errorf("snowflake node id out of range: %d", nodeID)
	}
	return &Snowflake{nodeID: nodeID, now: func() int64 { return time.Now().UnixMilli() }}, nil
}

func (s *Snowflake) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now()
	if ts < s.lastTS {
		// 时钟回拨时沿用上一个时间戳
		ts = s.lastTS
	}
	if ts == s.lastTS {
		s.seq = (s.seq + 1) & maxSeq
		if s.seq == 0 {
			for ts <= s.lastTS {
				ts = s.now()
			}
		}
	} else {
		s.seq = 0
	}
	s.lastTS = ts
	return ((ts - epochMilli) << (nodeBits + seqBits)) | (s.nodeID << seqBits) | s.seq
}

// NodeIDFromEnv 读取 SNOWFLAKE_NODE_ID，未设置时为 1。
func NodeIDFromEnv() (int64, error) {
	raw := strings.TrimSpace(os.Getenv("SNOWFLAKE_NODE_ID"))
	if raw == "" {
		return 1, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid SNOWFLAKE_NODE_ID: %w", err)
	}
	return id, nil
}
