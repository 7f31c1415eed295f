package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/pixorder"
)

func main() {
	if len(os.Args) != 2 && len(os.Args) != 3 {
		essentials.Die("Usage: analysis <ranking.json> [count]")
	}
	ranking, err := pixorder.LoadRanking(os.Args[1])
	essentials.Must(err)

	count := 10
	if len(os.Args) == 3 {
		count, err = strconv.Atoi(os.Args[2])
		if err != nil {
			essentials.Die("Invalid count:", os.Args[2])
		}
	}

	fmt.Println("reference:", ranking.Reference, "candidates:", len(ranking.Results))
	if r, ok := ranking.Find(reversedTriple(ranking.Reference)); ok {
		fmt.Println("reversed reference:", r.Rank, pixorder.FormatScore(r.LogLikelihood))
	}
	fmt.Println("most likely:")
	PrintResults(ranking.Top(count))
	fmt.Println("least likely:")
	PrintResults(ranking.Reverse().Top(count))
}

func PrintResults(results []pixorder.RankedTriple) {
	for _, r := range results {
		fmt.Println(r.Rank, r.Triple, pixorder.FormatScore(r.LogLikelihood), r.Correlation)
	}
}

func reversedTriple(ref pixorder.Selection) pixorder.Triple {
	var res pixorder.Triple
	if len(ref) == 3 {
		copy(res[:], ref.Reverse())
	}
	return res
}
