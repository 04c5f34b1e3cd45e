package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kevin-chtw/tw_mjrule/mahjong"
	"google.golang.org/protobuf/types/known/structpb"
)

var errNilRequest = errors.New("nil request")

var groupFields = []struct {
	key       string
	groupType mahjong.GroupType
}{
	{"kangs", mahjong.GroupTypeKang},
	{"pongs", mahjong.GroupTypePong},
	{"chis", mahjong.GroupTypeChi},
	{"pairs", mahjong.GroupTypePair},
}

// decodePlayer 请求格式：
//
//	{"wind": "east", "tiles": ["1bamboo", ...], "pongs": ["*red,red,red"], ...}
//
// 返回玩家和缓存key，已声明的牌组必须由 tiles 中的牌组成，直接提交
func decodePlayer(req *structpb.Struct) (*mahjong.Player, string, error) {
	fields := req.GetFields()
	wind := mahjong.Wind(fields["wind"].GetStringValue())
	if wind == "" {
		wind = mahjong.WindEast
	}
	if !wind.IsValid() {
		return nil, "", fmt.Errorf("invalid wind %q", wind)
	}

	tiles, err := decodeTiles(fields["tiles"].GetListValue())
	if err != nil {
		return nil, "", err
	}
	p := mahjong.NewPlayer(wind, tiles...)

	var groupKeys []string
	free := tiles
	for _, g := range groupFields {
		for _, v := range fields[g.key].GetListValue().GetValues() {
			set, err := mahjong.ParseTileSet(g.groupType, v.GetStringValue())
			if err != nil {
				return nil, "", err
			}
			for _, t := range set.Tiles() {
				if !slices.Contains(free, t) {
					return nil, "", fmt.Errorf("%w: %s not in tiles", mahjong.ErrInvalidGroup, set)
				}
				free = mahjong.RemoveElements(free, t, 1)
			}
			if err := p.Hand.Commit(set); err != nil {
				return nil, "", err
			}
			groupKeys = append(groupKeys, groupKey(set))
		}
	}
	if err := p.Hand.Validate(); err != nil {
		return nil, "", err
	}

	slices.Sort(groupKeys)
	key := fmt.Sprintf("%s|%s|%s", wind, mahjong.TilesName(mahjong.SortTiles(tiles)), strings.Join(groupKeys, "|"))
	return p, key, nil
}

func decodeTiles(list *structpb.ListValue) ([]mahjong.Tile, error) {
	values := list.GetValues()
	tiles := make([]mahjong.Tile, 0, len(values))
	for _, v := range values {
		t, err := mahjong.ParseTile(v.GetStringValue())
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

func groupKey(set mahjong.TileSet) string {
	flag := ""
	if set.Declared() {
		flag = "*"
	}
	return set.Type().String() + flag + mahjong.TilesName(mahjong.SortTiles(set.Tiles()))
}

func encodeDetail(p *mahjong.Player, d *mahjong.ScoreDetail) (*structpb.Struct, error) {
	items := make([]any, len(d.Items))
	for i, item := range d.Items {
		items[i] = map[string]any{
			"reason": item.Reason.String(),
			"value":  item.Value,
		}
	}
	groups := make([]any, 0)
	for _, set := range p.Hand.Groups() {
		groups = append(groups, groupKey(set))
	}
	special := ""
	if d.Special != nil {
		special = d.Special.Name
	}
	return structpb.NewStruct(map[string]any{
		"wind":    string(p.Wind),
		"total":   d.Total,
		"base":    d.Base,
		"doubles": d.Doubles,
		"special": special,
		"items":   items,
		"groups":  groups,
	})
}

func encodeSpecial(sh *mahjong.SpecialHand) (*structpb.Struct, error) {
	if sh == nil {
		return structpb.NewStruct(map[string]any{"matched": false})
	}
	return structpb.NewStruct(map[string]any{
		"matched": true,
		"name":    sh.Name,
		"score":   sh.Score,
	})
}
