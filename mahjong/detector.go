package mahjong

import "github.com/topfreegames/pitaya/v3/pkg/logger"

type finder func(tiles []Tile) (TileSet, bool)

// FindRun 查找第一个顺子，不修改手牌
func FindRun(h *Hand) (TileSet, bool) {
	if h == nil {
		return TileSet{}, false
	}
	return findRun(h.tiles)
}

// FindTriplet 查找第一个刻子，不修改手牌
func FindTriplet(h *Hand) (TileSet, bool) {
	if h == nil {
		return TileSet{}, false
	}
	return findPong(h.tiles)
}

// FindQuad 查找第一个杠，不修改手牌
func FindQuad(h *Hand) (TileSet, bool) {
	if h == nil {
		return TileSet{}, false
	}
	return findKang(h.tiles)
}

// FindPair 查找第一个对子，不修改手牌
func FindPair(h *Hand) (TileSet, bool) {
	if h == nil {
		return TileSet{}, false
	}
	return findPair(h.tiles)
}

// DetectRun 查找顺子并加入 chis。
// 每次成功都会追加一组，对同一手牌重复调用会得到重复的牌组。
func DetectRun(h *Hand) bool {
	return detect(h, findRun)
}

// DetectTriplet 查找刻子并加入 pongs，重复调用同样会追加重复牌组
func DetectTriplet(h *Hand) bool {
	return detect(h, findPong)
}

// DetectQuad 查找杠并加入 kangs，重复调用同样会追加重复牌组
func DetectQuad(h *Hand) bool {
	return detect(h, findKang)
}

// DetectAll 拆分未被占用的牌，按杠、碰、吃、对的顺序贪心识别，
// 每识别一组就移除对应的牌，返回新增的牌组数
func DetectAll(h *Hand) int {
	if h == nil {
		return 0
	}
	free := h.freeTiles()
	count := 0
	for _, find := range []finder{findKang, findPong, findRun, findPair} {
		for {
			set, ok := find(free)
			if !ok {
				break
			}
			if err := h.Commit(set); err != nil {
				logger.Log.Errorf("commit %s failed: %v", set, err)
				break
			}
			for _, t := range set.tiles {
				free = RemoveElements(free, t, 1)
			}
			count++
		}
	}
	logger.Log.Debugf("detect all: %d groups, rest [%s]", count, TilesName(free))
	return count
}

func detect(h *Hand, find finder) bool {
	if h == nil {
		return false
	}
	set, ok := find(h.tiles)
	if !ok {
		return false
	}
	if err := h.Commit(set); err != nil {
		logger.Log.Errorf("commit %s failed: %v", set, err)
		return false
	}
	return true
}

// 按点数排序后单次扫描：
// 同点数的牌视为重复跳过；点数+1且同花色则延长；否则结束当前顺子并从该牌重新开始
func findRun(tiles []Tile) (TileSet, bool) {
	if len(tiles) == 0 {
		return TileSet{}, false
	}
	sorted := SortTiles(tiles)
	run := []Tile{sorted[0]}
	for _, t := range sorted[1:] {
		last := run[len(run)-1]
		switch {
		case t.Number == last.Number:
			continue
		case t.Number == last.Number+1 && t.Suit == run[0].Suit:
			run = append(run, t)
		default:
			if set, ok := makeChi(run); ok {
				return set, true
			}
			run = []Tile{t}
		}
	}
	return makeChi(run)
}

func makeChi(run []Tile) (TileSet, bool) {
	size := GroupTypeChi.Size()
	if len(run) < size {
		return TileSet{}, false
	}
	set, err := NewTileSet(GroupTypeChi, run[:size], false)
	if err != nil {
		logger.Log.Debugf("run [%s] rejected: %v", TilesName(run), err)
		return TileSet{}, false
	}
	return set, true
}

func findPair(tiles []Tile) (TileSet, bool) {
	return findSame(tiles, GroupTypePair)
}

func findPong(tiles []Tile) (TileSet, bool) {
	return findSame(tiles, GroupTypePong)
}

func findKang(tiles []Tile) (TileSet, bool) {
	return findSame(tiles, GroupTypeKang)
}

// 依次检查每种牌（花色+点数+名字），第一种张数足够的牌组成牌组
func findSame(tiles []Tile, groupType GroupType) (TileSet, bool) {
	size := groupType.Size()
	sorted := SortTiles(tiles)
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i >= size {
			if set, err := NewTileSet(groupType, sorted[i:i+size], false); err == nil {
				return set, true
			}
		}
		i = j
	}
	return TileSet{}, false
}
