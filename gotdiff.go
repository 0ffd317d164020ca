// Package gotdiff computes reviewable, line-anchored diffs between two
// rich-text (HTML) documents.
//
// The diff runs on the visible text of each document, so hunk boundaries never
// fall inside a tag. Every hunk reports 1-based line numbers in both HTML
// sources and carries plain-text context from the old document, which lets a
// caller re-locate the hunk after the document has been reformatted. Adjacent
// character-level changes are coalesced into coherent edit regions.
//
// Basic usage:
//
//	import (
//	    "github.com/ZaguanLabs/gotdiff"
//	    "github.com/ZaguanLabs/gotdiff/cache"
//	)
//
//	func main() {
//	    d := gotdiff.NewDiffer(
//	        gotdiff.WithCache(cache.NewInMemoryCache(3600)),
//	        gotdiff.WithContextBudget(100),
//	    )
//
//	    diffs, err := d.CalculateDiff("<p>Hello world</p>", "<p>Hello brave world</p>")
//	    if err != nil {
//	        log.Fatal(err) // only *gotdiff.TooLargeError
//	    }
//	    for _, h := range diffs {
//	        fmt.Println(h.DiffType, h.OriginalStartLine, h.NewCode) // Insertion 1 brave
//	    }
//	}
package gotdiff
