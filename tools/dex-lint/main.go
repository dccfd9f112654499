// dex-lint is a custom static analyzer for dex cancellation rules.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/ersonp/dex/tools/dex-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
