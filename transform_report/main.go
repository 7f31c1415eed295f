// Command transform_report scores pixel-order transforms
// and ranks the triples around a reference triple, then
// writes a markdown/HTML report with illustrative images.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/pixorder"
)

const (
	GridDigits = 16
	GridCols   = 8
	GridScale  = 3
	ZoneScale  = 16
)

func main() {
	var flags pixorder.Flags
	flags.AddToSet(flag.CommandLine)
	flag.Parse()

	ds, err := flags.LoadDataset()
	essentials.Must(err)
	g := ds.Geometry()
	log.Printf("loaded %d images (%dx%d)", ds.Len(), g.Width, g.Height)

	ref, err := flags.ReferenceSelection(g)
	essentials.Must(err)
	zone, err := flags.Zone(g, ref)
	essentials.Must(err)

	scores, err := pixorder.ScoreTransforms(ds, ref, applicableTransforms(g, ref))
	essentials.Must(err)
	for _, s := range scores {
		log.Printf("%s %v: log_likelihood=%s", s.Label, s.Selection,
			pixorder.FormatScore(s.LogLikelihood))
	}

	log.Printf("ranking %d triples in a zone of %d pixels", pixorder.NumTriples(len(zone)),
		len(zone))
	start := time.Now()
	ranker := &pixorder.Ranker{Workers: flags.Workers}
	ranking, err := ranker.Rank(ds, ref, zone)
	essentials.Must(err)
	log.Printf("ranked in %v", time.Since(start))

	essentials.Must(os.MkdirAll(flags.OutDir, 0755))
	essentials.Must(ranking.Save(filepath.Join(flags.OutDir, "ranking.json")))
	SaveImages(flags.OutDir, ds, zone, ref)
	SaveReport(flags.OutDir, ref, scores, ranking, flags.Top)
}

// applicableTransforms drops geometric transforms which
// move the reference off the image.
func applicableTransforms(g pixorder.Geometry, ref pixorder.Selection) []pixorder.NamedTransform {
	var res []pixorder.NamedTransform
	for _, t := range pixorder.DefaultTransforms() {
		if _, err := t.Transform.Apply(g, ref); err != nil {
			log.Printf("skipping %s: %v", t.Label, err)
			continue
		}
		res = append(res, t)
	}
	return res
}

func SaveImages(dir string, ds *pixorder.Dataset, zone []int, ref pixorder.Selection) {
	rows := make([]int, essentials.MinInt(GridDigits, ds.Len()))
	for i := range rows {
		rows[i] = i
	}
	grid, err := pixorder.RenderGrid(ds, rows, GridCols, GridScale)
	essentials.Must(err)
	essentials.Must(pixorder.SavePNG(filepath.Join(dir, "digits.png"), grid))

	zoneImg, err := pixorder.RenderSelection(ds.Geometry(), zone, ref, ZoneScale)
	essentials.Must(err)
	essentials.Must(pixorder.SavePNG(filepath.Join(dir, "zone.png"), zoneImg))
}

func SaveReport(dir string, ref pixorder.Selection, scores []pixorder.TransformScore,
	ranking *pixorder.Ranking, top int) {
	var md, html bytes.Buffer
	fmt.Fprintf(&md, "# Pixel order likelihoods for %v\n\n", ref)
	fmt.Fprintln(&md, "![digits](digits.png)\n\n![zone](zone.png)")
	fmt.Fprintf(&html, "<h1>Pixel order likelihoods for %v</h1>\n", ref)
	fmt.Fprintln(&html, `<img src="digits.png"><img src="zone.png">`)

	sections := []struct {
		title string
		rows  []pixorder.TableRow
	}{
		{"Transforms", pixorder.TransformRows(scores)},
		{"Most likely triples", pixorder.RankingRows(ranking.Top(top))},
		{"Least likely triples", pixorder.RankingRows(ranking.Reverse().Top(top))},
	}
	for _, s := range sections {
		fmt.Fprintf(&md, "\n## %s\n\n", s.title)
		essentials.Must(pixorder.WriteMarkdownTable(&md, s.rows))
		fmt.Fprintf(&html, "<h2>%s</h2>\n", s.title)
		essentials.Must(pixorder.WriteHTMLTable(&html, s.rows))
	}

	essentials.Must(os.WriteFile(filepath.Join(dir, "report.md"), md.Bytes(), 0644))
	essentials.Must(os.WriteFile(filepath.Join(dir, "report.html"), html.Bytes(), 0644))
	log.Printf("wrote report to %s", dir)
}
