package pixorder

import (
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// A TableRow is one line of a results table.
type TableRow struct {
	Label         string
	LogLikelihood float64
}

// TransformRows converts transform scores to table rows.
func TransformRows(scores []TransformScore) []TableRow {
	res := make([]TableRow, len(scores))
	for i, s := range scores {
		res[i] = TableRow{Label: s.Label + " " + s.Selection.String(), LogLikelihood: s.LogLikelihood}
	}
	return res
}

// RankingRows converts ranked triples to table rows
// labeled like "#3 (405,406,407)".
func RankingRows(results []RankedTriple) []TableRow {
	res := make([]TableRow, len(results))
	for i, r := range results {
		res[i] = TableRow{
			Label:         "#" + strconv.Itoa(r.Rank) + " " + r.Triple.String(),
			LogLikelihood: r.LogLikelihood,
		}
	}
	return res
}

// FormatScore formats a log-likelihood, printing -Inf for
// impossible outcomes.
func FormatScore(x float64) string {
	if math.IsInf(x, -1) {
		return "-Inf"
	}
	return strconv.FormatFloat(x, 'f', 3, 64)
}

// WriteMarkdownTable writes rows as a markdown table.
func WriteMarkdownTable(w io.Writer, rows []TableRow) error {
	if _, err := fmt.Fprintln(w, "| ordering | log-likelihood |\n|---|---:|"); err != nil {
		return errors.Wrap(err, "write markdown table")
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "| %s | %s |\n", r.Label, FormatScore(r.LogLikelihood)); err != nil {
			return errors.Wrap(err, "write markdown table")
		}
	}
	return nil
}

var htmlTable = template.Must(template.New("table").Funcs(template.FuncMap{
	"score": FormatScore,
}).Parse(`<table>
<tr><th>ordering</th><th>log-likelihood</th></tr>
{{range .}}<tr><td>{{.Label}}</td><td>{{score .LogLikelihood}}</td></tr>
{{end}}</table>
`))

// WriteHTMLTable writes rows as an HTML table.
func WriteHTMLTable(w io.Writer, rows []TableRow) error {
	if err := htmlTable.Execute(w, rows); err != nil {
		return errors.Wrap(err, "write html table")
	}
	return nil
}
