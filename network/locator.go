package network

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"symbol.dev/sdk/sdkerr"
)

type nameKey struct {
	family Family
	name   string
}

type idKey struct {
	family     Family
	identifier byte
}

// Locator finds networks by name or identifier within a family. It is
// immutable once built and safe for concurrent use.
type Locator struct {
	networks []Network
	byName   map[nameKey]Network
	byID     map[idKey]Network
}

// LocatorOption configures NewLocator.
type LocatorOption func(*locatorOptions)

type locatorOptions struct {
	logger *zap.Logger
}

// WithLogger reports each registered network at debug level.
func WithLogger(l *zap.Logger) LocatorOption {
	return func(o *locatorOptions) { o.logger = l }
}

// NewLocator indexes networks. Two networks of the same family may not share
// a name or an identifier.
func NewLocator(networks []Network, opts ...LocatorOption) (*Locator, error) {
	o := locatorOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	l := &Locator{
		byName: make(map[nameKey]Network, len(networks)),
		byID:   make(map[idKey]Network, len(networks)),
	}
	for _, n := range networks {
		if !n.family.Valid() {
			return nil, sdkerr.New(sdkerr.KindConfig, ruleConfig, "locator: uninitialized network")
		}
		nk := nameKey{n.family, n.name}
		if _, exists := l.byName[nk]; exists {
			return nil, sdkerr.New(sdkerr.KindConfig, ruleConfig, fmt.Sprintf("locator: network %s already registered", n))
		}
		ik := idKey{n.family, n.identifier}
		if prev, exists := l.byID[ik]; exists {
			return nil, sdkerr.New(sdkerr.KindConfig, ruleConfig,
				fmt.Sprintf("locator: network %s reuses identifier 0x%02X of %s", n, n.identifier, prev))
		}
		l.byName[nk] = n
		l.byID[ik] = n
		l.networks = append(l.networks, n)
		o.logger.Debug("network registered",
			zap.Stringer("family", n.family),
			zap.String("name", n.name),
			zap.Uint8("identifier", n.identifier),
			zap.Time("epoch", n.epoch))
	}

	sort.Slice(l.networks, func(i, j int) bool {
		if l.networks[i].family != l.networks[j].family {
			return l.networks[i].family < l.networks[j].family
		}
		return l.networks[i].name < l.networks[j].name
	})
	return l, nil
}

// Builtins returns the four public networks.
func Builtins() []Network {
	return []Network{NEMMainnet, NEMTestnet, SymbolMainnet, SymbolTestnet}
}

// DefaultLocator indexes the built-in networks.
func DefaultLocator() *Locator {
	l, err := NewLocator(Builtins())
	if err != nil {
		panic(err)
	}
	return l
}

// FindByName returns the family's network called name.
func (l *Locator) FindByName(family Family, name string) (Network, error) {
	if n, ok := l.byName[nameKey{family, name}]; ok {
		return n, nil
	}
	return Network{}, sdkerr.New(sdkerr.KindLookup, ruleLookup, fmt.Sprintf("no %s network named %q", family, name))
}

// FindByIdentifier returns the family's network using identifier.
func (l *Locator) FindByIdentifier(family Family, identifier byte) (Network, error) {
	if n, ok := l.byID[idKey{family, identifier}]; ok {
		return n, nil
	}
	return Network{}, sdkerr.New(sdkerr.KindLookup, ruleLookup, fmt.Sprintf("no %s network with identifier 0x%02X", family, identifier))
}

// Networks returns every indexed network, sorted by family then name.
func (l *Locator) Networks() []Network {
	return append([]Network(nil), l.networks...)
}
