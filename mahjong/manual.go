package mahjong

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Manual 从yaml读取预设手牌，格式：
//
//	hands:
//	  name:
//	    wind: east
//	    tiles: 1bamboo,2bamboo,3bamboo
//	    pongs: ["*red,red,red"]   # *开头为明牌
//	    score: 8
type Manual struct {
	vp *viper.Viper
}

func NewManual(file string) (*Manual, error) {
	m := &Manual{
		vp: viper.New(),
	}
	m.vp.SetConfigType("yaml")
	m.vp.SetConfigFile(file)
	if err := m.vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read manual %s: %w", file, err)
	}
	return m, nil
}

// Names 所有预设手牌名，已排序
func (m *Manual) Names() []string {
	names := make([]string, 0)
	for name := range m.vp.GetStringMap("hands") {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Expect 预期得分
func (m *Manual) Expect(name string) int {
	return m.vp.GetInt(m.key(name, "score"))
}

// Player 按预设创建玩家，牌组直接提交到手牌
func (m *Manual) Player(name string) (*Player, error) {
	if !m.vp.IsSet(m.key(name, "tiles")) {
		return nil, fmt.Errorf("hand %q not found", name)
	}
	wind := Wind(m.vp.GetString(m.key(name, "wind")))
	if wind == "" {
		wind = WindEast
	}
	if !wind.IsValid() {
		return nil, fmt.Errorf("hand %q: invalid wind %q", name, wind)
	}

	tiles, err := ParseTiles(m.vp.GetString(m.key(name, "tiles")))
	if err != nil {
		return nil, fmt.Errorf("hand %q: %w", name, err)
	}
	p := NewPlayer(wind, tiles...)

	groups := []struct {
		key       string
		groupType GroupType
	}{
		{"kangs", GroupTypeKang},
		{"pongs", GroupTypePong},
		{"chis", GroupTypeChi},
		{"pairs", GroupTypePair},
	}
	for _, g := range groups {
		for _, value := range m.vp.GetStringSlice(m.key(name, g.key)) {
			set, err := ParseTileSet(g.groupType, value)
			if err != nil {
				return nil, fmt.Errorf("hand %q: %w", name, err)
			}
			if err := p.Hand.Commit(set); err != nil {
				return nil, fmt.Errorf("hand %q: %w", name, err)
			}
		}
	}
	return p, nil
}

func (m *Manual) key(name, field string) string {
	return "hands." + name + "." + field
}

// ParseTileSet 解析牌组，*开头表示明牌
func ParseTileSet(groupType GroupType, value string) (TileSet, error) {
	names, declared := strings.CutPrefix(strings.TrimSpace(value), "*")
	tiles, err := ParseTiles(names)
	if err != nil {
		return TileSet{}, err
	}
	return NewTileSet(groupType, tiles, declared)
}
