package adaptation

import (
	"errors"

	"go.uber.org/zap"

	"adaptation-engine/capability"
)

// Config holds the collaborators of a Manager.
type Config struct {
	// Model answers conformance questions. Defaults to an empty
	// capability.Table.
	Model capability.Model
	// TypeOf returns the runtime capability of an adaptee. Defaults to
	// capability.Of.
	TypeOf func(any) capability.Capability
	// Logger receives debug traces of the search. Defaults to a no-op logger.
	Logger *zap.Logger
	// Metrics records adapt outcomes. May be nil.
	Metrics *Metrics
}

// DefaultConfig returns a configuration backed by a fresh capability.Table.
func DefaultConfig() Config {
	return Config{
		Model:  capability.NewTable(),
		TypeOf: capability.Of,
		Logger: zap.NewNop(),
	}
}

// Manager owns an offer registry and adapts values through it. It is safe
// for concurrent use; each adaptation works on a snapshot of the registry
// taken when it starts.
type Manager struct {
	registry *Registry
	model    capability.Model
	typeOf   func(any) capability.Capability
	logger   *zap.Logger
	metrics  *Metrics
}

// New creates a Manager with DefaultConfig.
func New() *Manager {
	return NewManager(DefaultConfig())
}

// NewManager creates a Manager. Zero fields of cfg fall back to the
// defaults.
func NewManager(cfg Config) *Manager {
	def := DefaultConfig()

	if cfg.Model == nil {
		cfg.Model = def.Model
	}

	if cfg.TypeOf == nil {
		cfg.TypeOf = def.TypeOf
	}

	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}

	return &Manager{
		registry: NewRegistry(),
		model:    cfg.Model,
		typeOf:   cfg.TypeOf,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
}

// Model returns the conformance model used by the manager.
func (m *Manager) Model() capability.Model {
	return m.model
}

// Registry returns the offer registry owned by the manager.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Adapt adapts adaptee to the capability to. If adaptee already satisfies
// to it is returned unchanged. When no chain of offers succeeds, the
// returned error matches ErrNoAdaptation. Unexpected factory errors are
// returned as *FactoryError.
func (m *Manager) Adapt(adaptee any, to capability.Capability) (any, error) {
	result, err := m.adapt(adaptee, to)
	if err != nil {
		m.metrics.adapt(OutcomeError)
		return nil, err
	}

	if result == nil {
		m.metrics.adapt(OutcomeFailed)
		return nil, &Error{Adaptee: adaptee, From: m.typeOf(adaptee), To: to}
	}

	return result, nil
}

// AdaptOr is like Adapt but returns def instead of an ErrNoAdaptation
// error. Unexpected factory errors are still returned.
func (m *Manager) AdaptOr(adaptee any, to capability.Capability, def any) (any, error) {
	result, err := m.adapt(adaptee, to)
	if err != nil {
		m.metrics.adapt(OutcomeError)
		return nil, err
	}

	if result == nil {
		m.metrics.adapt(OutcomeDefault)
		return def, nil
	}

	return result, nil
}

// Supports reports whether obj satisfies to, either directly or through
// adaptation. A factory failing unexpectedly counts as unsupported.
func (m *Manager) Supports(obj any, to capability.Capability) bool {
	result, err := m.AdaptOr(obj, to, nil)
	if err != nil {
		m.logger.Debug("adaptation failed while checking support",
			zap.Stringer("to", to),
			zap.Error(err))

		return false
	}

	return result != nil
}

// Plan returns the chain Adapt would try first for a value of capability
// from, assuming every factory accepts. It reports false when no chain
// exists. An empty chain means no adaptation is needed.
func (m *Manager) Plan(from, to capability.Capability) ([]*Offer, bool) {
	s := &searcher{snap: m.registry.snapshot(), model: m.model}

	_, chain, ok, _ := s.resolve(from, to, func([]*Offer) (any, bool, error) {
		return struct{}{}, true, nil
	})

	m.metrics.expansions(s.stats.expansions)

	return chain, ok
}

// RegisterOffer registers an offer.
func (m *Manager) RegisterOffer(offer *Offer) error {
	if err := m.registry.Register(offer); err != nil {
		return err
	}

	m.logger.Debug("registered adaptation offer", zap.Stringer("offer", offer))

	return nil
}

// RegisterFactory creates an offer from its arguments and registers it.
func (m *Manager) RegisterFactory(factory Factory, from, to capability.Capability) (*Offer, error) {
	offer := &Offer{Factory: factory, From: from, To: to}
	if err := m.RegisterOffer(offer); err != nil {
		return nil, err
	}

	return offer, nil
}

// RegisterProvides registers that values of provider can be used as to
// without any adapter.
func (m *Manager) RegisterProvides(provider, to capability.Capability) (*Offer, error) {
	return m.RegisterFactory(NoAdapterNecessary, provider, to)
}

// Unregister removes an offer. It reports whether the offer was registered.
func (m *Manager) Unregister(offer *Offer) bool {
	return m.registry.Unregister(offer)
}

// adapt returns nil when no adaptation is possible.
func (m *Manager) adapt(adaptee any, to capability.Capability) (any, error) {
	from := m.typeOf(adaptee)

	if m.model.Satisfies(from, to) {
		m.metrics.adapt(OutcomeProvided)
		return adaptee, nil
	}

	s := &searcher{snap: m.registry.snapshot(), model: m.model}
	log := m.logger.With(zap.Stringer("from", from), zap.Stringer("to", to))

	result, chain, ok, err := s.resolve(from, to, func(chain []*Offer) (any, bool, error) {
		out, ok, err := materialize(adaptee, chain)

		switch {
		case err != nil:
			m.metrics.materialization(MaterializedError)
		case !ok:
			m.metrics.materialization(MaterializedDeclined)
			log.Debug("adapter chain declined", zap.Stringers("chain", chain))
		default:
			m.metrics.materialization(MaterializedOK)
		}

		return out, ok, err
	})

	m.metrics.expansions(s.stats.expansions)

	if err != nil {
		var fe *FactoryError
		if errors.As(err, &fe) {
			log.Debug("adapter factory failed", zap.Stringer("offer", fe.Offer), zap.Error(fe.Err))
		}

		return nil, err
	}

	if !ok {
		log.Debug("no adapter chain found",
			zap.Int("expansions", s.stats.expansions),
			zap.Int("refusals", s.stats.refusals))

		return nil, nil
	}

	log.Debug("adapted", zap.Stringers("chain", chain), zap.Int("expansions", s.stats.expansions))
	m.metrics.adapt(OutcomeAdapted)
	m.metrics.chain(len(chain))

	return result, nil
}
