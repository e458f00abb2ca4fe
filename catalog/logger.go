// Package catalog: badger log adapter.

package catalog

import (
	"fmt"
	"strings"

	"github.com/plan-systems/klog"
)

// badgerLogger forwards badger's internal logging to klog: errors and
// warnings at their native severities, info and debug chatter behind
// verbosity 2 and 3.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...interface{}) {
	klog.ErrorDepth(1, sprintfTrim(format, args...))
}

func (badgerLogger) Warningf(format string, args ...interface{}) {
	klog.WarningDepth(1, sprintfTrim(format, args...))
}

func (badgerLogger) Infof(format string, args ...interface{}) {
	klog.V(2).Info(sprintfTrim(format, args...))
}

func (badgerLogger) Debugf(format string, args ...interface{}) {
	klog.V(3).Info(sprintfTrim(format, args...))
}

// sprintfTrim drops badger's trailing newline; klog terminates lines
// itself.
func sprintfTrim(format string, args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
}
