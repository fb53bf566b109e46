package app

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{
		Code:    c,
		Message: m,
	}
}

var (
	// 技术错误 reason，写进 access 日志。
	ReasonActorUnavailable = NewReason("ACTOR_UNAVAILABLE", "会话服务不可用")
	ReasonActorTimeout     = NewReason("ACTOR_TIMEOUT", "会话服务超时")
	ReasonActorInternal    = NewReason("ACTOR_INTERNAL", "会话服务内部错误")
	ReasonBadReply         = NewReason("ACTOR_BAD_REPLY", "会话服务返回异常")
	ReasonTokenIssue       = NewReason("TOKEN_ISSUE_FAILED", "令牌签发失败")
)
