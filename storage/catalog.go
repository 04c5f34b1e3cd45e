package storage

// Copyright (c) TFG Co. All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/kevin-chtw/tw_mjrule/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/modules"
	clientv3 "go.etcd.io/etcd/client/v3"
	"go.etcd.io/etcd/client/v3/namespace"
)

const (
	specialHandPrefix  = "special_hands/"
	defaultLoadTimeout = 5 * time.Second
)

// ErrCatalogNotFound is returned when no special hand is stored under the prefix
var ErrCatalogNotFound = errors.New("special hand catalog not found")

// SpecialHandEntry is the json value stored for each special hand
type SpecialHandEntry struct {
	Order int    `json:"order"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Tiles string `json:"tiles"`
}

// CatalogConfig etcd settings for the catalog module
type CatalogConfig struct {
	Endpoints   []string      `mapstructure:"endpoints"`
	Prefix      string        `mapstructure:"prefix"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// ETCDCatalog module that loads the special hand catalog from etcd once at startup
type ETCDCatalog struct {
	modules.Base
	cli             *clientv3.Client
	etcdEndpoints   []string
	etcdPrefix      string
	etcdDialTimeout time.Duration
	catalog         atomic.Pointer[mahjong.Catalog]
}

// NewETCDCatalog returns a new instance of ETCDCatalog
func NewETCDCatalog(conf CatalogConfig) *ETCDCatalog {
	return &ETCDCatalog{
		etcdEndpoints:   conf.Endpoints,
		etcdPrefix:      conf.Prefix,
		etcdDialTimeout: conf.DialTimeout,
	}
}

func getSpecialHandKey(name string) string {
	return fmt.Sprintf("%s%s", specialHandPrefix, name)
}

// Put stores a special hand entry, used by tooling that seeds the catalog
func (c *ETCDCatalog) Put(ctx context.Context, entry SpecialHandEntry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = c.cli.Put(ctx, getSpecialHandKey(entry.Name), string(value))
	return err
}

// Load reads every entry under the prefix and builds the catalog in order
func (c *ETCDCatalog) Load(ctx context.Context) (*mahjong.Catalog, error) {
	etcdRes, err := c.cli.Get(ctx, specialHandPrefix, clientv3.WithPrefix())
	if err != nil {
		return nil, err
	}
	values := make([][]byte, len(etcdRes.Kvs))
	for i, kv := range etcdRes.Kvs {
		values[i] = kv.Value
	}
	return BuildCatalog(values)
}

// BuildCatalog decodes json entries and orders them by their order field
func BuildCatalog(values [][]byte) (*mahjong.Catalog, error) {
	if len(values) == 0 {
		return nil, ErrCatalogNotFound
	}
	entries := make([]SpecialHandEntry, len(values))
	for i, value := range values {
		if err := json.Unmarshal(value, &entries[i]); err != nil {
			return nil, fmt.Errorf("decode special hand: %w", err)
		}
	}
	slices.SortStableFunc(entries, func(a, b SpecialHandEntry) int {
		return cmp.Compare(a.Order, b.Order)
	})

	hands := make([]*mahjong.SpecialHand, len(entries))
	for i, entry := range entries {
		tiles, err := mahjong.ParseTiles(entry.Tiles)
		if err != nil {
			return nil, fmt.Errorf("special hand %q: %w", entry.Name, err)
		}
		if len(tiles) == 0 {
			return nil, fmt.Errorf("special hand %q: no tiles", entry.Name)
		}
		hands[i] = mahjong.NewSpecialHand(entry.Name, entry.Score, tiles)
	}
	return mahjong.NewCatalog(hands...), nil
}

// Catalog returns the loaded catalog, or the default one before Init.
// It satisfies service.CatalogSource and is safe to call while Init runs.
func (c *ETCDCatalog) Catalog() *mahjong.Catalog {
	if catalog := c.catalog.Load(); catalog != nil {
		return catalog
	}
	return mahjong.DefaultCatalog()
}

// Init connects to etcd and loads the catalog
func (c *ETCDCatalog) Init() error {
	if c.cli == nil {
		cli, err := clientv3.New(clientv3.Config{
			Endpoints:   c.etcdEndpoints,
			DialTimeout: c.etcdDialTimeout,
		})
		if err != nil {
			return err
		}
		c.cli = cli
	}
	// namespaced etcd :)
	c.cli.KV = namespace.NewKV(c.cli.KV, c.etcdPrefix)

	timeout := c.etcdDialTimeout
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	catalog, err := c.Load(ctx)
	if errors.Is(err, ErrCatalogNotFound) {
		logger.Log.Warnf("[catalog] no special hands under %s, using default", c.etcdPrefix)
		return nil
	}
	if err != nil {
		return err
	}
	c.catalog.Store(catalog)
	logger.Log.Infof("[catalog] loaded %d special hands", catalog.Len())
	return nil
}

// Shutdown closes the etcd client
func (c *ETCDCatalog) Shutdown() error {
	if c.cli == nil {
		return nil
	}
	return c.cli.Close()
}
