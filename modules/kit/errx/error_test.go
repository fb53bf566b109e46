package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is_只按code比较(t *testing.T) {
	e1 := NewBiz("ROUND_IN_FLIGHT", "a").WithData("round", "r1").WithCause(errors.New("c1"))
	e2 := NewBiz("ROUND_IN_FLIGHT", "b")
	if !errors.Is(e1, e2) {
		t.Fatalf("期望同 code 的错误 errors.Is 为 true, e1=%v e2=%v", e1, e2)
	}
	if errors.Is(e1, NewBiz("OTHER", "a")) {
		t.Fatalf("不同 code 不应相等")
	}
}

func TestError_业务错误不捕获栈(t *testing.T) {
	cause := errors.New("out of stock")
	err := NewBiz("FEED_REJECTED", "").WithCause(cause)
	if err.Stack() != nil {
		t.Fatalf("业务错误不应捕获栈")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause 链丢失, err=%v", err)
	}
	if !err.IsBiz() || !IsBiz(fmt.Errorf("wrap: %w", err)) {
		t.Fatalf("期望识别为业务错误")
	}
}

func TestError_系统错误只捕获一次栈(t *testing.T) {
	sys := NewSys("ACTOR_DOWN", "").WithCause(errors.New("dead letter"))
	if len(sys.Stack()) == 0 {
		t.Fatalf("期望系统错误捕获栈")
	}
	outer := NewSys("GATEWAY", "").WithCause(sys)
	if outer.Stack() != nil {
		t.Fatalf("cause 链已有栈，外层不应重复捕获")
	}
}

func TestError_Data_派生不共享(t *testing.T) {
	m := map[string]any{"house": 4}
	err := ErrInvalidArgument.WithDataMap(m)
	m["house"] = 5
	if got := err.Data()["house"]; got != 4 {
		t.Fatalf("期望构造时复制 data, got=%v", got)
	}
	if ErrInvalidArgument.Data() != nil {
		t.Fatalf("哨兵错误不应被派生修改")
	}
}

type reason string

func (r reason) ReasonCode() string { return string(r) }

func TestError_WithReason_与Msgf(t *testing.T) {
	err := ErrInternal.WithReason(reason("ACTOR_TIMEOUT")).WithMsgf("会话 %d 超时", 7)
	if err.Reason() != "ACTOR_TIMEOUT" {
		t.Fatalf("reason 不符: %q", err.Reason())
	}
	if err.Msg() != "会话 7 超时" {
		t.Fatalf("msg 不符: %q", err.Msg())
	}
	got, ok := As(fmt.Errorf("x: %w", err))
	if !ok || got.Code() != CodeInternal {
		t.Fatalf("As 未取到 *Error")
	}
}
