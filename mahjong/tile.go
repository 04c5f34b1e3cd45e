package mahjong

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	TileNull  = Tile{Suit: SuitUndefined}
	TileEast  = MakeSpecialTile(SuitWind, 0, string(WindEast))  // 东
	TileSouth = MakeSpecialTile(SuitWind, 0, string(WindSouth)) // 南
	TileWest  = MakeSpecialTile(SuitWind, 0, string(WindWest))  // 西
	TileNorth = MakeSpecialTile(SuitWind, 0, string(WindNorth)) // 北
	TileRed   = MakeSpecialTile(SuitDragon, 0, DragonRed)       // 中
	TileGreen = MakeSpecialTile(SuitDragon, 0, DragonGreen)     // 发
	TileWhite = MakeSpecialTile(SuitDragon, 0, DragonWhite)     // 白
)

// Tile 牌，值类型，三个字段全部相等即为同一张牌
type Tile struct {
	Number      int
	Suit        Suit
	SpecialName string
}

func MakeTile(suit Suit, number int) Tile {
	return Tile{Number: number, Suit: suit}
}

func MakeSpecialTile(suit Suit, number int, name string) Tile {
	return Tile{Number: number, Suit: suit, SpecialName: name}
}

func WindTile(w Wind) Tile {
	return MakeSpecialTile(SuitWind, 0, string(w))
}

func PrettyTile(name string, number int) Tile {
	return MakeSpecialTile(SuitPretty, number, name)
}

func (t Tile) IsValid() bool {
	switch {
	case t.Suit.IsNumbered():
		return t.Number >= 1 && t.Number <= MaxPoint && t.SpecialName == ""
	case t.Suit == SuitWind:
		return t.Number == 0 && Wind(t.SpecialName).IsValid()
	case t.Suit == SuitDragon:
		return t.Number == 0 && slices.Contains(dragonNames, t.SpecialName)
	case t.Suit == SuitPretty:
		return t.Number >= 1 && t.Number <= MaxPrettyPoint && slices.Contains(prettyNames, t.SpecialName)
	}
	return false
}

func (t Tile) IsDragon() bool {
	return t.Suit == SuitDragon
}

func (t Tile) IsWind() bool {
	return t.Suit == SuitWind
}

func (t Tile) IsPretty() bool {
	return t.Suit == SuitPretty
}

// 牌库中同种牌的张数
func (t Tile) MaxCount() int {
	if !t.IsValid() {
		return 0
	}
	if t.IsPretty() {
		return SamePrettyCount
	}
	return SameTileCount
}

func (t Tile) Name() string {
	switch {
	case t.Suit.IsNumbered():
		return strconv.Itoa(t.Number) + t.Suit.String()
	case t.Suit.IsHonor():
		return t.SpecialName
	case t.Suit == SuitPretty:
		return t.SpecialName + strconv.Itoa(t.Number)
	}
	return ""
}

func (t Tile) String() string {
	if name := t.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%s/%d/%s", t.Suit, t.Number, t.SpecialName)
}

// CompareTiles 先按点数，再按花色、名字排序
func CompareTiles(a, b Tile) int {
	if c := cmp.Compare(a.Number, b.Number); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Suit, b.Suit); c != 0 {
		return c
	}
	return cmp.Compare(a.SpecialName, b.SpecialName)
}

// SortTiles 返回排好序的副本
func SortTiles(tiles []Tile) []Tile {
	res := slices.Clone(tiles)
	slices.SortStableFunc(res, CompareTiles)
	return res
}

func TilesName(tiles []Tile) string {
	names := make([]string, len(tiles))
	for i, t := range tiles {
		names[i] = t.Name()
	}
	return strings.Join(names, ",")
}

// 静态表
var honorTileMap = map[string]Tile{
	// 风
	string(WindEast):  TileEast,
	string(WindSouth): TileSouth,
	string(WindWest):  TileWest,
	string(WindNorth): TileNorth,
	// 箭
	DragonRed:   TileRed,
	DragonGreen: TileGreen,
	DragonWhite: TileWhite,
}

// ParseTile 解析牌名，例如 3bamboo、east、red、flowers2
func ParseTile(name string) (Tile, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if t, ok := honorTileMap[name]; ok {
		return t, nil
	}

	for _, pretty := range prettyNames {
		if rest, ok := strings.CutPrefix(name, pretty); ok {
			num, err := strconv.Atoi(rest)
			if err != nil {
				break
			}
			if t := PrettyTile(pretty, num); t.IsValid() {
				return t, nil
			}
		}
	}

	for s := SuitBamboo; s <= SuitCharacters; s++ {
		if prefix, ok := strings.CutSuffix(name, s.String()); ok {
			num, err := strconv.Atoi(prefix)
			if err != nil {
				break
			}
			if t := MakeTile(s, num); t.IsValid() {
				return t, nil
			}
		}
	}
	return TileNull, fmt.Errorf("%w: %q", ErrInvalidTile, name)
}

// ParseTiles 解析逗号分隔的牌名列表
func ParseTiles(names string) ([]Tile, error) {
	if strings.TrimSpace(names) == "" {
		return []Tile{}, nil
	}
	parts := strings.Split(names, ",")
	res := make([]Tile, len(parts))
	for i, name := range parts {
		t, err := ParseTile(name)
		if err != nil {
			return nil, err
		}
		res[i] = t
	}
	return res, nil
}

func MakeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

// RemoveElements 从tiles中移除count张t，返回新切片
func RemoveElements(tiles []Tile, t Tile, count int) []Tile {
	res := make([]Tile, 0, len(tiles))
	for _, v := range tiles {
		if v == t && count > 0 {
			count--
			continue
		}
		res = append(res, v)
	}
	return res
}

// 统计每种牌的张数
func countTiles(tiles []Tile) map[Tile]int {
	counts := make(map[Tile]int, len(tiles))
	for _, t := range tiles {
		counts[t]++
	}
	return counts
}
