package tactile

import (
	"fmt"
	"os"

	"github.com/petermattis/goid"
)

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("tactile debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[tactile] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// ownerCheck pins an object to the goroutine that first touched it in debug
// mode. Scale writes are unsynchronized, so a second goroutine is a bug.
type ownerCheck struct {
	gid int64
}

func (o *ownerCheck) check(op, name string) {
	if !globalDebug {
		return
	}
	id := goid.Get()
	if o.gid == 0 {
		o.gid = id
		return
	}
	if o.gid != id {
		panic(fmt.Sprintf("tactile debug: %s on %q from goroutine %d, owned by goroutine %d",
			op, name, id, o.gid))
	}
}
