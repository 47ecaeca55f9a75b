// survive-lint is a custom static analyzer for survive-core invariants.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/survive-core/tools/survive-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
