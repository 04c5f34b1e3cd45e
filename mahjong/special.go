package mahjong

import (
	"fmt"
	"slices"
)

// SpecialHand 特殊牌型，固定组成，固定得分
type SpecialHand struct {
	Name  string
	Score int
	tiles []Tile // 已排序
}

func NewSpecialHand(name string, score int, tiles []Tile) *SpecialHand {
	return &SpecialHand{
		Name:  name,
		Score: score,
		tiles: SortTiles(tiles),
	}
}

func (s *SpecialHand) RequiredTiles() []Tile {
	return slices.Clone(s.tiles)
}

// Match 多重集合完全相等才算匹配
func (s *SpecialHand) Match(tiles []Tile) bool {
	if len(tiles) != len(s.tiles) {
		return false
	}
	return slices.Equal(SortTiles(tiles), s.tiles)
}

func (s *SpecialHand) String() string {
	return fmt.Sprintf("%s(%d)", s.Name, s.Score)
}

// Catalog 特殊牌型表，按定义顺序匹配，创建后只读
type Catalog struct {
	hands []*SpecialHand
}

func NewCatalog(hands ...*SpecialHand) *Catalog {
	return &Catalog{hands: slices.Clone(hands)}
}

func (c *Catalog) Hands() []*SpecialHand {
	return slices.Clone(c.hands)
}

func (c *Catalog) Len() int {
	return len(c.hands)
}

// Match 返回第一个匹配的特殊牌型，没有则返回nil
func (c *Catalog) Match(h *Hand) *SpecialHand {
	if c == nil || h.IsEmpty() {
		return nil
	}
	for _, sh := range c.hands {
		if sh.Match(h.tiles) {
			return sh
		}
	}
	return nil
}

const (
	ThirteenOrphans       = "thirteen orphans"
	NineGatesBamboo       = "nine gates bamboo"
	NineGatesCircles      = "nine gates circles"
	NineGatesCharacters   = "nine gates characters"
	AllFlowersAndSeasons  = "all flowers and seasons"
	defaultLimitScore     = 500
	defaultAllPrettyScore = 100
)

var defaultCatalog = NewCatalog(
	NewSpecialHand(ThirteenOrphans, defaultLimitScore, thirteenOrphansTiles()),
	NewSpecialHand(NineGatesBamboo, defaultLimitScore, nineGatesTiles(SuitBamboo)),
	NewSpecialHand(NineGatesCircles, defaultLimitScore, nineGatesTiles(SuitCircles)),
	NewSpecialHand(NineGatesCharacters, defaultLimitScore, nineGatesTiles(SuitCharacters)),
	NewSpecialHand(AllFlowersAndSeasons, defaultAllPrettyScore, allPrettyTiles()),
)

func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// MatchSpecialHand 使用默认牌型表匹配
func MatchSpecialHand(h *Hand) *SpecialHand {
	return defaultCatalog.Match(h)
}

// 十三幺：三种数牌的一和九，四风，三元
func thirteenOrphansTiles() []Tile {
	var tiles []Tile
	for s := SuitBamboo; s <= SuitCharacters; s++ {
		tiles = append(tiles, MakeTile(s, 1), MakeTile(s, MaxPoint))
	}
	for _, w := range Winds {
		tiles = append(tiles, WindTile(w))
	}
	return append(tiles, TileRed, TileGreen, TileWhite)
}

// 九莲宝灯：1112345678999
func nineGatesTiles(suit Suit) []Tile {
	tiles := MakeTiles(MakeTile(suit, 1), 3)
	for n := 2; n < MaxPoint; n++ {
		tiles = append(tiles, MakeTile(suit, n))
	}
	return append(tiles, MakeTiles(MakeTile(suit, MaxPoint), 3)...)
}

// 八张花牌
func allPrettyTiles() []Tile {
	var tiles []Tile
	for _, name := range prettyNames {
		for n := 1; n <= MaxPrettyPoint; n++ {
			tiles = append(tiles, PrettyTile(name, n))
		}
	}
	return tiles
}
