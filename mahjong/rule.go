package mahjong

import (
	"fmt"

	"github.com/spf13/viper"
)

// Rule 算分参数
type Rule struct {
	PrettyTile    int `mapstructure:"pretty_tile"`    // 每张花牌
	HonorPair     int `mapstructure:"honor_pair"`     // 箭牌/东风/本门风对子（暗）
	Chi           int `mapstructure:"chi"`            // 顺子
	ConcealedPong int `mapstructure:"concealed_pong"` // 暗刻
	DeclaredPong  int `mapstructure:"declared_pong"`  // 明刻
	ConcealedKang int `mapstructure:"concealed_kang"` // 暗杠
	DeclaredKang  int `mapstructure:"declared_kang"`  // 明杠
	// 全顺加倍是否要求同花色，默认不要求
	SequentialSameSuit bool              `mapstructure:"sequential_same_suit"`
	SpecialHands       []SpecialHandConf `mapstructure:"special_hands"`
}

type SpecialHandConf struct {
	Name  string `mapstructure:"name"`
	Score int    `mapstructure:"score"`
	Tiles string `mapstructure:"tiles"` // 逗号分隔的牌名
}

func DefaultRule() *Rule {
	return &Rule{
		PrettyTile:    4,
		HonorPair:     2,
		Chi:           0,
		ConcealedPong: 4,
		DeclaredPong:  2,
		ConcealedKang: 16,
		DeclaredKang:  8,
	}
}

// LoadRule 读取yaml规则文件，未配置的项使用默认值
func LoadRule(file string) (*Rule, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(file)

	def := DefaultRule()
	vp.SetDefault("pretty_tile", def.PrettyTile)
	vp.SetDefault("honor_pair", def.HonorPair)
	vp.SetDefault("chi", def.Chi)
	vp.SetDefault("concealed_pong", def.ConcealedPong)
	vp.SetDefault("declared_pong", def.DeclaredPong)
	vp.SetDefault("concealed_kang", def.ConcealedKang)
	vp.SetDefault("declared_kang", def.DeclaredKang)
	vp.SetDefault("sequential_same_suit", def.SequentialSameSuit)

	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rule %s: %w", file, err)
	}
	rule := &Rule{}
	if err := vp.Unmarshal(rule); err != nil {
		return nil, fmt.Errorf("unmarshal rule %s: %w", file, err)
	}
	return rule, nil
}

// Catalog 根据配置生成特殊牌型表，没有配置时使用默认表
func (r *Rule) Catalog() (*Catalog, error) {
	if len(r.SpecialHands) == 0 {
		return DefaultCatalog(), nil
	}
	hands := make([]*SpecialHand, 0, len(r.SpecialHands))
	for _, conf := range r.SpecialHands {
		tiles, err := ParseTiles(conf.Tiles)
		if err != nil {
			return nil, fmt.Errorf("special hand %q: %w", conf.Name, err)
		}
		if len(tiles) == 0 {
			return nil, fmt.Errorf("special hand %q: no tiles", conf.Name)
		}
		hands = append(hands, NewSpecialHand(conf.Name, conf.Score, tiles))
	}
	return NewCatalog(hands...), nil
}
