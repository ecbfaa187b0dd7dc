// Package cache keeps compiled matchers around for reuse.
//
// Building an automaton costs time proportional to the total pattern length.
// Callers that see the same pattern sets over and over (one rule file per
// request, say) can look matchers up here instead of rebuilding them.
package cache

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/coregx/flint"
)

// DefaultSize is the capacity used when New is given a non-positive size.
const DefaultSize = 128

// Cache is an LRU cache of compiled matchers keyed by pattern set and
// configuration. It is safe for concurrent use.
type Cache struct {
	lru *lru.Cache[uint64, *entry]
}

type entry struct {
	patterns []string
	config   flint.Config
	matcher  *flint.Matcher
}

// New creates a cache holding up to size matchers.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[uint64, *entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Get returns a matcher for patterns and config, compiling and storing one
// on a miss. Options are only applied when a new matcher is built.
func (c *Cache) Get(patterns []string, config flint.Config, opts ...flint.Option) (*flint.Matcher, error) {
	key := Key(patterns, config)
	if e, ok := c.lru.Get(key); ok && e.config == config && slices.Equal(e.patterns, patterns) {
		return e.matcher, nil
	}

	m, err := flint.NewWithConfig(patterns, config, opts...)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, &entry{
		patterns: slices.Clone(patterns),
		config:   config,
		matcher:  m,
	})
	return m, nil
}

// Len returns the number of cached matchers.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached matcher.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Key hashes a pattern set and configuration. Each pattern is length
// prefixed so that {"ab", "c"} and {"a", "bc"} hash differently.
func Key(patterns []string, config flint.Config) uint64 {
	d := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(len(patterns)))
	_, _ = d.Write(buf[:])
	for _, p := range patterns {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(p)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(p)
	}

	_, _ = d.Write([]byte{byte(config.Comparison), byte(config.MatchMode), boolByte(config.DisablePrefilter)})
	_, _ = d.WriteString(config.Culture.String())
	return d.Sum64()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
