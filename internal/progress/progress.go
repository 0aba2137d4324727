package progress

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// Tracer logs backtracking progress at the attempt interval configured on
// the solver. Variables, when set, adds a filled percentage to each line.
type Tracer[V comparable] struct {
	Log       logrus.FieldLogger
	Variables int
}

func (t Tracer[V]) Trace(p csp.SearchPosition[V]) {
	assigned := len(p.Assignment())
	entry := t.Log.WithFields(logrus.Fields{
		"attempts": p.Attempts(),
		"assigned": assigned,
		"depth":    p.Depth(),
	})
	if t.Variables > 0 {
		entry = entry.WithField("filled", fmt.Sprintf("%.1f%%", float64(assigned)/float64(t.Variables)*100))
	}
	entry.Info("searching")
}
