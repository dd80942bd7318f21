// SPDX-License-Identifier: MPL-2.0

package cmdtree

import "fmt"

// ResultOK and the other ResultKind values classify what an Action returned.
const (
	ResultOK ResultKind = iota
	ResultError
	ResultAbnormal
)

// KeyShowUsage asks the executor to show the usage of the matched chain.
const KeyShowUsage AbnormalKey = "usage"

type (
	// ResultKind distinguishes the variants of Result.
	ResultKind int

	// AbnormalKey identifies an abnormal outcome. It is interpreted by the
	// executor's AbnormalHandler, not treated as a failure of the command.
	AbnormalKey string

	// Result is the outcome of running an Action: OK, Fail(err) or Abnormal(key).
	Result struct {
		Kind ResultKind
		// Err is set for ResultError.
		Err error
		// Key is set for ResultAbnormal.
		Key AbnormalKey
	}

	// Action is the executable logic of a command node.
	Action func(inv *Invocation) Result
)

// OK is the result of a successful action.
func OK() Result {
	return Result{Kind: ResultOK}
}

// Fail wraps err as a failed result. A nil err yields OK.
func Fail(err error) Result {
	if err == nil {
		return OK()
	}
	return Result{Kind: ResultError, Err: err}
}

// Abnormal returns a result that the executor hands to its AbnormalHandler.
func Abnormal(key AbnormalKey) Result {
	return Result{Kind: ResultAbnormal, Key: key}
}

// Nop is the action used by nodes that do nothing, such as grouping nodes and roots.
func Nop(*Invocation) Result {
	return OK()
}

// String returns a short description of the result, for logs.
func (r Result) String() string {
	switch r.Kind {
	case ResultOK:
		return "ok"
	case ResultError:
		return fmt.Sprintf("error: %v", r.Err)
	case ResultAbnormal:
		return fmt.Sprintf("abnormal: %s", r.Key)
	default:
		return fmt.Sprintf("unknown result kind %d", r.Kind)
	}
}

// String returns the kind name.
func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultError:
		return "error"
	case ResultAbnormal:
		return "abnormal"
	default:
		return "unknown"
	}
}
