package mahjong

import (
	"fmt"
	"strings"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

type ScoreReason int //算分原因

const (
	ScoreReasonSpecial        ScoreReason = iota // 特殊牌型
	ScoreReasonPretty                            // 花牌
	ScoreReasonHonorPair                         // 箭/风对子
	ScoreReasonChi                               // 顺子
	ScoreReasonPong                              // 刻子
	ScoreReasonKang                              // 杠
	ScoreReasonHonorPong                         // 箭/风刻子加倍
	ScoreReasonHonorKang                         // 箭/风杠加倍
	ScoreReasonAllPretty                         // 全花牌加倍
	ScoreReasonAllSequential                     // 全顺加倍
)

var scoreReasonNames = []string{
	"special", "pretty", "honor_pair", "chi", "pong", "kang",
	"honor_pong", "honor_kang", "all_pretty", "all_sequential",
}

func (r ScoreReason) String() string {
	if r < 0 || int(r) >= len(scoreReasonNames) {
		return "unknown"
	}
	return scoreReasonNames[r]
}

// 加倍项
func (r ScoreReason) IsDouble() bool {
	return r >= ScoreReasonHonorPong
}

type ScoreItem struct {
	Reason ScoreReason
	Value  int // 加分项为分数，加倍项为1
}

// ScoreDetail 算分明细
type ScoreDetail struct {
	Special *SpecialHand
	Base    int
	Doubles int
	Total   int
	Items   []ScoreItem
}

func (d *ScoreDetail) String() string {
	parts := make([]string, len(d.Items))
	for i, item := range d.Items {
		if item.Reason.IsDouble() {
			parts[i] = item.Reason.String() + " x2"
		} else {
			parts[i] = fmt.Sprintf("%s +%d", item.Reason, item.Value)
		}
	}
	return fmt.Sprintf("total %d (base %d, doubles %d) [%s]", d.Total, d.Base, d.Doubles, strings.Join(parts, ", "))
}

func (d *ScoreDetail) add(reason ScoreReason, value int) {
	if value == 0 {
		return
	}
	d.Base += value
	d.Items = append(d.Items, ScoreItem{Reason: reason, Value: value})
}

func (d *ScoreDetail) double(reason ScoreReason) {
	d.Doubles++
	d.Items = append(d.Items, ScoreItem{Reason: reason, Value: 1})
}

// Scorelator 分数计算器
type Scorelator struct {
	rule    *Rule
	catalog *Catalog
}

func NewScorelator(rule *Rule, catalog *Catalog) *Scorelator {
	if rule == nil {
		rule = DefaultRule()
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Scorelator{
		rule:    rule,
		catalog: catalog,
	}
}

var DefaultScorelator = NewScorelator(DefaultRule(), DefaultCatalog())

// CalculateScore 使用默认规则算分，结果累加到玩家分数
func CalculateScore(p *Player) int {
	return DefaultScorelator.Calculate(p)
}

func (s *Scorelator) Rule() *Rule {
	return s.rule
}

func (s *Scorelator) Catalog() *Catalog {
	return s.catalog
}

// Calculate 算分并累加到玩家分数，同一局不要重复调用
func (s *Scorelator) Calculate(p *Player) int {
	if p == nil {
		return 0
	}
	detail := s.Evaluate(p)
	p.AddScore(detail.Total)
	logger.Log.Debugf("player %s score %s", p.Wind, detail)
	return detail.Total
}

// Evaluate 只计算，不修改玩家；没有手牌时得0分
func (s *Scorelator) Evaluate(p *Player) *ScoreDetail {
	detail := &ScoreDetail{}
	if p == nil || p.Hand == nil {
		return detail
	}
	h := p.Hand
	if special := s.catalog.Match(h); special != nil {
		detail.Special = special
		detail.Base = special.Score
		detail.Total = special.Score
		detail.Items = []ScoreItem{{Reason: ScoreReasonSpecial, Value: special.Score}}
		return detail
	}

	s.accumulate(detail, h, p.Wind)
	s.doubling(detail, h, p.Wind)
	detail.Total = detail.Base << detail.Doubles
	return detail
}

func (s *Scorelator) accumulate(detail *ScoreDetail, h *Hand, wind Wind) {
	for _, t := range h.tiles {
		if t.IsPretty() {
			detail.add(ScoreReasonPretty, s.rule.PrettyTile)
		}
	}
	for _, set := range h.pairs {
		if !set.Declared() && set.IsHonorOf(wind) {
			detail.add(ScoreReasonHonorPair, s.rule.HonorPair)
		}
	}
	for range h.chis {
		detail.add(ScoreReasonChi, s.rule.Chi)
	}
	for _, set := range h.pongs {
		detail.add(ScoreReasonPong, pick(set.Declared(), s.rule.DeclaredPong, s.rule.ConcealedPong))
	}
	for _, set := range h.kangs {
		detail.add(ScoreReasonKang, pick(set.Declared(), s.rule.DeclaredKang, s.rule.ConcealedKang))
	}
}

func (s *Scorelator) doubling(detail *ScoreDetail, h *Hand, wind Wind) {
	for _, set := range h.pongs {
		if !set.Declared() && set.IsHonorOf(wind) {
			detail.double(ScoreReasonHonorPong)
		}
	}
	for _, set := range h.kangs {
		if !set.Declared() && set.IsHonorOf(wind) {
			detail.double(ScoreReasonHonorKang)
		}
	}
	if !h.IsEmpty() && allTiles(h.tiles, Tile.IsPretty) {
		detail.double(ScoreReasonAllPretty)
	}
	if s.isAllSequential(h.tiles) {
		detail.double(ScoreReasonAllSequential)
	}
}

// 按点数排序后相邻两张点数依次加一
func (s *Scorelator) isAllSequential(tiles []Tile) bool {
	if len(tiles) < 2 {
		return false
	}
	sorted := SortTiles(tiles)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Number != sorted[i-1].Number+1 {
			return false
		}
		if s.rule.SequentialSameSuit && sorted[i].Suit != sorted[0].Suit {
			return false
		}
	}
	return true
}

func pick(declared bool, declaredValue, concealedValue int) int {
	if declared {
		return declaredValue
	}
	return concealedValue
}
