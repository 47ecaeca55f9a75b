// Package analyzers provides all custom static analyzers for survive-core.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/survive-core/tools/survive-lint/analyzers/loopcall"
	"github.com/ersonp/survive-core/tools/survive-lint/analyzers/statwrite"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loopcall.Analyzer,
		statwrite.Analyzer,
	}
}
