package resolve

import (
	"fmt"

	"deskmate/internal/classify"
)

// Response pairs a resolver Result with the conversational summary the chat
// surface shows.
type Response struct {
	Result  Result
	Summary string
}

const apology = "I'm not sure what you mean. Can you rephrase?"

// Dispatch routes a classified request to the matching resolver and composes
// the user-facing summary. Unknown operation codes or targets produce a
// graceful "couldn't understand" response; Dispatch itself never touches
// store state.
func (r *Resolver) Dispatch(req *classify.Request, raw string) Response {
	if req == nil {
		return Response{
			Result:  Result{Status: StatusFailed, Message: "I couldn't understand your request. Please try again."},
			Summary: apology,
		}
	}

	if _, ok := r.storeFor(req.Target); !ok {
		return Response{
			Result:  Result{Status: StatusFailed, Message: "I couldn't understand your request. Please try again."},
			Summary: apology,
		}
	}

	var res Result
	var summary string
	switch req.Operation {
	case classify.OpAdd:
		res = r.Add(req.Target, req.Parameters, raw)
		summary = fmt.Sprintf("Successfully added to %s.", req.Target)
	case classify.OpEdit:
		res = r.Edit(req.Target, req.Parameters, raw)
		summary = fmt.Sprintf("Changes have been made to %s.", req.Target)
	case classify.OpDelete:
		res = r.Delete(req.Target, req.Parameters, raw)
		summary = fmt.Sprintf("The requested %s entry has been removed.", req.Target)
	case classify.OpView:
		res = r.View(req.Target, req.Parameters)
		if req.Target == classify.TargetTasks {
			summary = "Here are the tasks assigned to the requested person:"
		} else {
			summary = fmt.Sprintf("Here is the requested information about %s.", req.Target)
		}
	default:
		return Response{
			Result:  Result{Status: StatusFailed, Message: "I couldn't understand your request. Please try again."},
			Summary: apology,
		}
	}

	if !res.OK() {
		summary = res.Message
	}
	return Response{Result: res, Summary: summary}
}
