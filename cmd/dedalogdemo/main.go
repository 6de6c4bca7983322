// Command dedalogdemo loads a small ancestry program and runs the
// sibling/ancestor queries against it, printing every answer. It
// exists to exercise the package end to end, not as a general-purpose
// REPL or CLI (out of scope per spec §1).
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/halfvar/dedalog"
)

const program = `
parent(a, aa).
parent(a, ab).
parent(aa, aaa).
parent(aa, aab).
parent(aaa, aaaa).

ancestor(X,Y) :- parent(X,Y).
ancestor(X,Y) :- parent(X,Z), ancestor(Z,Y).

sibling(A,B) :- parent(P,A), parent(P,B), A <> B.
`

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	db := dedalog.NewDatabase(dedalog.WithLogger(logger))

	if _, err := db.ExecuteAll(program); err != nil {
		fmt.Fprintln(os.Stderr, "load failed:", err)
		os.Exit(1)
	}
	if err := db.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "validate failed:", err)
		os.Exit(1)
	}

	siblings, err := db.ExecuteAll("sibling(A,B)?")
	if err != nil {
		fmt.Fprintln(os.Stderr, "query failed:", err)
		os.Exit(1)
	}
	fmt.Println("siblings:")
	for _, a := range siblings {
		fmt.Printf("  A=%s B=%s\n", a["A"], a["B"])
	}

	descendants, err := db.Query(dedalog.NewExpression("ancestor", []dedalog.Term{"aa", "X"}, false))
	if err != nil {
		fmt.Fprintln(os.Stderr, "query failed:", err)
		os.Exit(1)
	}
	fmt.Println("descendants of aa:")
	for _, a := range descendants {
		fmt.Printf("  X=%s\n", a["X"])
	}
}
