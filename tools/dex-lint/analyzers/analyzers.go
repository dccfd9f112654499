// Package analyzers provides all custom static analyzers for dex.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/ersonp/dex/tools/dex-lint/analyzers/ctxroot"
	"github.com/ersonp/dex/tools/dex-lint/analyzers/httpnoctx"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		ctxroot.Analyzer,
		httpnoctx.Analyzer,
	}
}
