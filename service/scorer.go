package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/kevin-chtw/tw_mjrule/mahjong"
	"github.com/kevin-chtw/tw_mjrule/utils"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// CacheConfig 算分结果缓存，MaxCost<=0 时不缓存
type CacheConfig struct {
	MaxCost int64         `mapstructure:"max_cost"` // 最多缓存条数
	TTL     time.Duration `mapstructure:"ttl"`
}

type handler func(context.Context, proto.Message) (proto.Message, error)

// CatalogSource 特殊牌型表来源，例如 storage.ETCDCatalog
type CatalogSource interface {
	Catalog() *mahjong.Catalog
}

// Scorer 算分服务
type Scorer struct {
	component.Base
	app        pitaya.Pitaya
	scorelator *mahjong.Scorelator
	catalogs   CatalogSource
	cache      *ristretto.Cache
	ttl        time.Duration
	handlers   map[string]handler
}

// NewScorer 创建算分服务
func NewScorer(app pitaya.Pitaya, scorelator *mahjong.Scorelator, conf CacheConfig) (*Scorer, error) {
	s := &Scorer{
		app:        app,
		scorelator: scorelator,
		ttl:        conf.TTL,
		handlers:   make(map[string]handler),
	}
	if s.scorelator == nil {
		s.scorelator = mahjong.DefaultScorelator
	}
	if conf.MaxCost > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: conf.MaxCost * 10,
			MaxCost:     conf.MaxCost,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("create score cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// SetCatalogSource 每次请求从 src 取牌型表，模块 Init 之后加载的牌型表也能生效
func (s *Scorer) SetCatalogSource(src CatalogSource) {
	s.catalogs = src
}

// Init 组件初始化
func (s *Scorer) Init() {
	s.handlers[utils.TypeUrl(&structpb.Struct{})] = func(ctx context.Context, msg proto.Message) (proto.Message, error) {
		return s.Score(ctx, msg.(*structpb.Struct))
	}
	s.handlers[utils.TypeUrl(&structpb.ListValue{})] = func(ctx context.Context, msg proto.Message) (proto.Message, error) {
		return s.Special(ctx, msg.(*structpb.ListValue))
	}
}

// Shutdown 释放缓存
func (s *Scorer) Shutdown() {
	if s.cache != nil {
		s.cache.Close()
	}
}

// Message 按消息类型分发
func (s *Scorer) Message(ctx context.Context, req *anypb.Any) (ack *anypb.Any, err error) {
	defer s.catch(&err)
	if req == nil {
		return nil, errNilRequest
	}

	msg, err := utils.FromAny(req)
	if err != nil {
		return nil, err
	}
	h, ok := s.handlers[req.GetTypeUrl()]
	if !ok {
		return nil, errors.New("invalid request type")
	}
	rsp, err := h(ctx, msg)
	if err != nil {
		return nil, err
	}
	return utils.ToAny(rsp)
}

// Score 计算一手牌的得分明细，未声明的牌自动拆分牌组
func (s *Scorer) Score(ctx context.Context, req *structpb.Struct) (ack *structpb.Struct, err error) {
	defer s.catch(&err)
	if req == nil {
		return nil, errNilRequest
	}

	p, key, err := decodePlayer(req)
	if err != nil {
		return nil, err
	}
	scorelator := s.current()
	key = fmt.Sprintf("%p|%s", scorelator.Catalog(), key)
	if cached, ok := s.get(key); ok {
		return cached, nil
	}

	mahjong.DetectAll(p.Hand)
	detail := scorelator.Evaluate(p)
	logger.Log.Debugf("score %s: %s", key, detail)

	ack, err = encodeDetail(p, detail)
	if err != nil {
		return nil, err
	}
	if s.app != nil {
		ack.Fields["server"] = structpb.NewStringValue(s.app.GetServerID())
	}
	s.set(key, ack)
	return ack, nil
}

// Special 匹配特殊牌型
func (s *Scorer) Special(ctx context.Context, req *structpb.ListValue) (ack *structpb.Struct, err error) {
	defer s.catch(&err)
	if req == nil {
		return nil, errNilRequest
	}

	tiles, err := decodeTiles(req)
	if err != nil {
		return nil, err
	}
	return encodeSpecial(s.current().Catalog().Match(mahjong.NewHand(tiles...)))
}

func (s *Scorer) current() *mahjong.Scorelator {
	if s.catalogs == nil {
		return s.scorelator
	}
	catalog := s.catalogs.Catalog()
	if catalog == nil || catalog == s.scorelator.Catalog() {
		return s.scorelator
	}
	return mahjong.NewScorelator(s.scorelator.Rule(), catalog)
}

func (s *Scorer) get(key string) (*structpb.Struct, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	cached, ok := v.(*structpb.Struct)
	if !ok {
		return nil, false
	}
	return proto.Clone(cached).(*structpb.Struct), true
}

func (s *Scorer) set(key string, ack *structpb.Struct) {
	if s.cache == nil {
		return
	}
	s.cache.SetWithTTL(key, proto.Clone(ack), 1, s.ttl)
}

func (s *Scorer) catch(err *error) {
	if r := recover(); r != nil {
		logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
		*err = fmt.Errorf("panic: %v", r)
	}
}
