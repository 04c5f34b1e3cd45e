package mahjong

import (
	"fmt"
	"slices"
)

// Hand 玩家手牌及已识别的牌组
type Hand struct {
	tiles []Tile
	pairs []TileSet
	pongs []TileSet
	kangs []TileSet
	chis  []TileSet
}

func NewHand(tiles ...Tile) *Hand {
	return &Hand{
		tiles: slices.Clone(tiles),
	}
}

func (h *Hand) Tiles() []Tile {
	return slices.Clone(h.tiles)
}

func (h *Hand) Len() int {
	if h == nil {
		return 0
	}
	return len(h.tiles)
}

// IsEmpty nil 手牌视为空
func (h *Hand) IsEmpty() bool {
	return h.Len() == 0
}

func (h *Hand) AddTile(t Tile) {
	h.tiles = append(h.tiles, t)
}

func (h *Hand) RemoveTile(t Tile) bool {
	index := slices.Index(h.tiles, t)
	if index < 0 {
		return false
	}
	h.tiles = slices.Delete(h.tiles, index, index+1)
	return true
}

func (h *Hand) Pairs() []TileSet { return slices.Clone(h.pairs) }
func (h *Hand) Pongs() []TileSet { return slices.Clone(h.pongs) }
func (h *Hand) Kangs() []TileSet { return slices.Clone(h.kangs) }
func (h *Hand) Chis() []TileSet  { return slices.Clone(h.chis) }

// Groups 返回全部牌组，顺序为杠、碰、吃、对
func (h *Hand) Groups() []TileSet {
	return slices.Concat(h.kangs, h.pongs, h.chis, h.pairs)
}

// Commit 把牌组加入对应列表
func (h *Hand) Commit(set TileSet) error {
	if !set.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidGroup, set)
	}
	switch set.Type() {
	case GroupTypePair:
		h.pairs = append(h.pairs, set)
	case GroupTypeChi:
		h.chis = append(h.chis, set)
	case GroupTypePong:
		h.pongs = append(h.pongs, set)
	case GroupTypeKang:
		h.kangs = append(h.kangs, set)
	}
	return nil
}

func (h *Hand) ResetGroups() {
	h.pairs, h.pongs, h.kangs, h.chis = nil, nil, nil, nil
}

// 未被已有牌组占用的牌
func (h *Hand) freeTiles() []Tile {
	free := slices.Clone(h.tiles)
	for _, set := range h.Groups() {
		for _, t := range set.tiles {
			free = RemoveElements(free, t, 1)
		}
	}
	return free
}

// Validate 检查手牌张数和牌是否合法，识别牌组不依赖此检查
func (h *Hand) Validate() error {
	if len(h.tiles) > MaxHandCount+len(h.kangs) {
		return fmt.Errorf("%w: %d tiles", ErrHandTooLarge, len(h.tiles))
	}
	for t, count := range countTiles(h.tiles) {
		if !t.IsValid() {
			return fmt.Errorf("%w: %s", ErrInvalidTile, t)
		}
		if count > t.MaxCount() {
			return fmt.Errorf("%w: %s x%d", ErrTileOverflow, t, count)
		}
	}
	return nil
}

func (h *Hand) String() string {
	return fmt.Sprintf("tiles[%s] groups%v", TilesName(h.tiles), h.Groups())
}
