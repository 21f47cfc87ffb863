package intersect

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/intersect/dbg"
)

// Debug string forms. Upward edges keep the interior to their west and are
// drawn green; downward edges keep it to their east and are drawn red, which
// makes a dumped edge soup much easier to eyeball.

func (e *OutputEdge) String() string {
	arrow := aurora.Red("⬇").String()
	if e.Up {
		arrow = aurora.Green("⬆").String()
	}
	return fmt.Sprintf("OutputEdge %s %s x=%d [%d, %d)", dbg.Name(e), arrow, e.X, e.Lo, e.Hi)
}

func (e *loopEdge) String() string {
	arrow := aurora.Red("⬇").String()
	if e.up {
		arrow = aurora.Green("⬆").String()
	}
	return fmt.Sprintf("loop edge %s %s x=%d (%d..%d)", dbg.Name(e), arrow, e.tail.x, e.tail.y, e.head.y)
}

func (e VerticalEdge) String() string {
	kind := "closes"
	if e.Opens {
		kind = "opens"
	}
	return fmt.Sprintf("vertical edge of polygon %d at x=%d, %s [%d, %d)", e.Poly, e.X, kind, e.Lo, e.Hi)
}
