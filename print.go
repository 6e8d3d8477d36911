package ronmigrate

import (
	"github.com/fatih/color"
)

// PrintResult prints the per-file completion notice for res.
func PrintResult(res FileResult) {
	var labelAttrs = []color.Attribute{color.FgHiGreen, color.Bold}
	var nameAttrsChanged = []color.Attribute{color.FgHiWhite}
	var nameAttrsUnchanged = []color.Attribute{color.FgHiBlack}

	color.New(labelAttrs...).Print("Transformed ")
	if res.Changed {
		color.New(nameAttrsChanged...).Println(res.Name)
	} else {
		color.New(nameAttrsUnchanged...).Println(res.Name)
	}
}

// PrintSummary prints the batch completion notice along with file and
// fragment totals.
func PrintSummary(results []FileResult, totalMatches int) {
	color.New(color.FgHiGreen, color.Bold).Println("Transformation complete.")
	color.New(color.FgHiWhite).Printf("%d file(s) processed, %d node(s) rewritten\n",
		len(results), totalMatches)
}
