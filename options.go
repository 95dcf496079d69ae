package accessor

import (
	"reflect"

	"github.com/goliatone/go-accessor/pkg/config"
	"github.com/goliatone/go-accessor/pkg/member"
	"github.com/goliatone/go-accessor/pkg/resolve"
	"github.com/goliatone/go-accessor/pkg/shape"
	"github.com/goliatone/go-accessor/pkg/strategies"
	"github.com/goliatone/go-accessor/pkg/truthy"
)

// Option customises engine construction. Options are applied once inside
// New; the resulting engine is immutable configuration as far as compilation
// is concerned.
type Option func(*settings)

type settings struct {
	registry        *resolve.Registry
	registryOptions []resolve.Option
	policy          truthy.Policy
	ignoreCase      bool
	cacheSize       int
}

// WithRegistry injects a fully assembled resolution registry, bypassing the
// builtin bindings and any WithStrategy/WithoutShape options.
func WithRegistry(registry *resolve.Registry) Option {
	return func(s *settings) {
		s.registry = registry
	}
}

// WithStrategy replaces the strategy bound to a shape.
func WithStrategy(sh shape.Shape, strategy strategies.Strategy) Option {
	return func(s *settings) {
		s.registryOptions = append(s.registryOptions, resolve.WithStrategy(sh, strategy))
	}
}

// WithoutShape removes a shape's binding so resolution skips it.
func WithoutShape(sh shape.Shape) Option {
	return func(s *settings) {
		s.registryOptions = append(s.registryOptions, resolve.WithoutShape(sh))
	}
}

// WithIgnoreCase sets the default case mode used by ResolveValue and Get.
func WithIgnoreCase(ignoreCase bool) Option {
	return func(s *settings) {
		s.ignoreCase = ignoreCase
	}
}

// WithTruthiness replaces the section-truthiness policy.
func WithTruthiness(policy truthy.Policy) Option {
	return func(s *settings) {
		s.policy = policy
	}
}

// WithTruthinessExclusions adds concrete types to the truthiness exclusion
// list on top of the current policy.
func WithTruthinessExclusions(types ...reflect.Type) Option {
	return func(s *settings) {
		s.policy = s.policy.WithTypes(types...)
	}
}

// WithMemberCacheSize caps the member-table cache shared by the plain-object
// strategy. Values below 1 keep the builtin default.
func WithMemberCacheSize(size int) Option {
	return func(s *settings) {
		s.cacheSize = size
	}
}

// WithConfig applies a parsed configuration document: default case mode,
// disabled shapes, truthiness overrides and cache sizing.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		s.ignoreCase = cfg.IgnoreCase
		for _, sh := range cfg.Disabled() {
			s.registryOptions = append(s.registryOptions, resolve.WithoutShape(sh))
		}
		s.policy = s.policy.
			WithStrings(!cfg.Truthiness.KeepStrings).
			WithMaps(!cfg.Truthiness.KeepMaps)
		if cfg.MemberCacheSize > 0 {
			s.cacheSize = cfg.MemberCacheSize
		}
	}
}

func newSettings(options ...Option) *settings {
	s := &settings{policy: truthy.Default()}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *settings) buildRegistry() *resolve.Registry {
	if s.registry != nil {
		return s.registry
	}
	opts := s.registryOptions
	if s.cacheSize > 0 {
		tables := member.NewCache(s.cacheSize)
		// Cache sizing applies to the builtin member strategy, so install it
		// ahead of caller overrides.
		opts = append([]resolve.Option{resolve.WithMemberCache(tables)}, opts...)
	}
	return resolve.New(opts...)
}
