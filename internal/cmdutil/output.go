package cmdutil

import (
	"errors"
	"fmt"
	"sort"

	oerrors "github.com/opmodel/create-vue/internal/errors"
	"github.com/opmodel/create-vue/internal/output"
)

// PrintError reports err through the logger. A DetailError is printed as
// its type and message with location and context as key/value pairs and
// the hint on its own line. Cancellation is a warning, not an error.
func PrintError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, oerrors.ErrCancelled) {
		output.Warn("operation cancelled")
		return
	}

	var detail *oerrors.DetailError
	if !errors.As(err, &detail) {
		output.Error(err.Error())
		return
	}

	var keyvals []interface{}
	if detail.Location != "" {
		keyvals = append(keyvals, "location", detail.Location)
	}
	keys := make([]string, 0, len(detail.Context))
	for k := range detail.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		keyvals = append(keyvals, k, detail.Context[k])
	}

	output.Error(fmt.Sprintf("%s: %s", detail.Type, detail.Message), keyvals...)
	if detail.Hint != "" {
		output.Info(detail.Hint)
	}
}
