package resolve

import (
	"errors"
	"fmt"
	"strings"
)

// Result statuses. "failed" is a recognized, expected condition (validation,
// duplicate, dangling reference, nothing matched); "error" is an unexpected
// failure such as storage I/O.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusError   = "error"
)

// Result is what every resolver hands back to the presentation layer.
type Result struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Data    []map[string]string `json:"data,omitempty"`
}

func (r Result) OK() bool { return r.Status == StatusSuccess }

func success(format string, args ...any) Result {
	return Result{Status: StatusSuccess, Message: fmt.Sprintf(format, args...)}
}

// fail converts a tagged error into a Result: storage failures become
// "error", every recognized condition becomes "failed". The sentinel prefix
// added by %w wrapping is stripped so the user sees only the human part.
func fail(err error) Result {
	status := StatusFailed
	if errors.Is(err, ErrStorage) {
		status = StatusError
	}
	return Result{Status: status, Message: humanMessage(err)}
}

func humanMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrDuplicate, ErrReference, ErrNotFound, ErrStorage} {
		prefix := sentinel.Error() + ": "
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
