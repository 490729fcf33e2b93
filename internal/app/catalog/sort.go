package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
)

// SortGames orders games featured-first, then by title using Unicode
// collation. The sort is stable and done in place.
func SortGames(list []games.Game, tag language.Tag) {
	// collate.Collator is not safe for concurrent use.
	col := collate.New(tag)
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Featured() != b.Featured() {
			return a.Featured()
		}
		return col.CompareString(a.Title, b.Title) < 0
	})
}
