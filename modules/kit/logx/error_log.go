package logx

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorLog 是从错误链中提取出的可读结构。
type ErrorLog struct {
	Error      string
	Code       string
	Msg        string
	Reason     string
	Data       map[string]any
	CauseChain []string
	Origin     string
	Stack      string
}

// BuildErrorLog 通过鸭子类型接口提取信息，不依赖 errx 的具体类型。
func BuildErrorLog(err error) ErrorLog {
	if err == nil {
		return ErrorLog{}
	}
	out := ErrorLog{Error: err.Error()}

	var cp interface{ CodeText() string }
	if errors.As(err, &cp) {
		out.Code = cp.CodeText()
	}
	var mp interface{ Msg() string }
	if errors.As(err, &mp) {
		out.Msg = mp.Msg()
	}
	var dp interface{ Data() map[string]any }
	if errors.As(err, &dp) {
		out.Data = dp.Data()
	}
	var rp interface{ Reason() string }
	if errors.As(err, &rp) {
		out.Reason = rp.Reason()
	}
	if pcs := firstStack(err); len(pcs) != 0 {
		out.Origin, out.Stack = formatStack(pcs, 32)
	}
	for cur, i := errors.Unwrap(err), 0; cur != nil && i < 20; cur, i = errors.Unwrap(cur), i+1 {
		out.CauseChain = append(out.CauseChain, fmt.Sprintf("%T: %v", cur, cur))
	}
	return out
}

// firstStack 沿 cause 链找到第一个非空栈。
func firstStack(err error) []uintptr {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		if sp, ok := cur.(interface{ Stack() []uintptr }); ok {
			if pcs := sp.Stack(); len(pcs) != 0 {
				return pcs
			}
		}
	}
	return nil
}

func formatStack(pcs []uintptr, maxFrames int) (origin string, stack string) {
	frames := runtime.CallersFrames(pcs)
	lines := make([]string, 0, maxFrames)
	for i := 0; i < maxFrames; i++ {
		f, more := frames.Next()
		if f.Function == "" && f.File == "" {
			break
		}
		line := fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
		if origin == "" {
			origin = line
		}
		lines = append(lines, line)
		if !more {
			break
		}
	}
	return origin, strings.Join(lines, "\n")
}
