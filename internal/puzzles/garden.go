package puzzles

import (
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/region"
)

// FencePrice totals fencing cost over every plant region.
type FencePrice struct {
	Regions int
	// Full is Σ area×perimeter.
	Full int
	// Bulk is Σ area×sides.
	Bulk int
}

// PriceFences partitions the garden by plant letter and prices each region.
func PriceFences(g *grid.Grid[rune], opts ...region.Option) FencePrice {
	var p FencePrice
	for _, r := range region.Partition(g, func(a, b rune) bool { return a == b }, opts...) {
		p.Regions++
		p.Full += r.Area() * region.Perimeter(r)
		p.Bulk += r.Area() * region.Sides(r)
	}
	return p
}
