package mahjong

import (
	"fmt"
	"slices"
)

// TileSet 牌组（对子、吃、碰、杠），创建后不可修改
type TileSet struct {
	groupType GroupType
	tiles     []Tile
	declared  bool // 明牌（吃碰别人打出的牌）
}

// NewTileSet 创建牌组，不满足牌组规则时返回 ErrInvalidGroup
func NewTileSet(groupType GroupType, tiles []Tile, declared bool) (TileSet, error) {
	set := TileSet{
		groupType: groupType,
		tiles:     slices.Clone(tiles),
		declared:  declared,
	}
	if !set.IsValid() {
		return TileSet{}, fmt.Errorf("%w: %s [%s]", ErrInvalidGroup, groupType, TilesName(tiles))
	}
	return set, nil
}

func (s TileSet) Type() GroupType {
	return s.groupType
}

func (s TileSet) Tiles() []Tile {
	return slices.Clone(s.tiles)
}

func (s TileSet) Declared() bool {
	return s.declared
}

func (s TileSet) Len() int {
	return len(s.tiles)
}

func (s TileSet) IsValid() bool {
	if len(s.tiles) != s.groupType.Size() || !allTiles(s.tiles, Tile.IsValid) {
		return false
	}
	switch s.groupType {
	case GroupTypePair, GroupTypePong, GroupTypeKang:
		return isSameTiles(s.tiles)
	case GroupTypeChi:
		return isSequence(s.tiles)
	}
	return false
}

// 全部是箭牌，或全部是东风/本门风
func (s TileSet) IsHonorOf(wind Wind) bool {
	if len(s.tiles) == 0 {
		return false
	}
	if allTiles(s.tiles, Tile.IsDragon) {
		return true
	}
	return allTiles(s.tiles, func(t Tile) bool {
		return t.IsWind() && (t.SpecialName == string(WindEast) || t.SpecialName == string(wind))
	})
}

func (s TileSet) String() string {
	flag := ""
	if s.declared {
		flag = "*"
	}
	return fmt.Sprintf("%s%s[%s]", s.groupType, flag, TilesName(s.tiles))
}

func isSameTiles(tiles []Tile) bool {
	for _, t := range tiles[1:] {
		if t != tiles[0] {
			return false
		}
	}
	return true
}

// 同花色，点数连续；风牌箭牌不能组成顺子
func isSequence(tiles []Tile) bool {
	sorted := SortTiles(tiles)
	if sorted[0].Suit.IsHonor() {
		return false
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Suit != sorted[0].Suit || sorted[i].Number != sorted[i-1].Number+1 {
			return false
		}
	}
	return true
}

func allTiles(tiles []Tile, f func(Tile) bool) bool {
	for _, t := range tiles {
		if !f(t) {
			return false
		}
	}
	return true
}
