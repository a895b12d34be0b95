// Package netconfig loads additional network definitions from JSON.
package netconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"symbol.dev/sdk/hashing"
	"symbol.dev/sdk/network"
	"symbol.dev/sdk/sdkerr"
)

const (
	ruleRead    = "SDK-CFG-001"
	ruleSyntax  = "SDK-CFG-002"
	ruleField   = "SDK-CFG-003"
	ruleConvert = "SDK-CFG-004"
	ruleDup     = "SDK-CFG-005"
)

// Config describes networks beyond the built-in mainnets and testnets.
//
// Example:
//
//	{
//	  "networks": [
//	    {
//	      "name": "devnet",
//	      "family": "symbol",
//	      "identifier": 168,
//	      "epoch": "2022-06-01T00:00:00Z",
//	      "generation_hash_seed": "7A56...E2B1"
//	    }
//	  ]
//	}
//
// Epochs are RFC 3339. The generation hash seed is 64 uppercase hex
// characters and only meaningful for the symbol family.
type Config struct {
	Networks []NetworkConfig `json:"networks" validate:"required,min=1,dive"`
}

type NetworkConfig struct {
	Name               string `json:"name" validate:"required,printascii"`
	Family             string `json:"family" validate:"required,oneof=nem symbol"`
	Identifier         uint8  `json:"identifier"`
	Epoch              string `json:"epoch" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	GenerationHashSeed string `json:"generation_hash_seed,omitempty" validate:"omitempty,len=64,hexadecimal,uppercase"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadFile reads and validates the config at path.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, sdkerr.New(sdkerr.KindConfig, ruleRead, "netconfig: empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, sdkerr.Wrap(sdkerr.KindConfig, ruleRead, "netconfig: read "+path, err)
	}
	return Parse(b)
}

// Parse decodes and validates a config document. Unknown fields are
// rejected.
func Parse(b []byte) (Config, error) {
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, sdkerr.Wrap(sdkerr.KindConfig, ruleSyntax, "netconfig: invalid json", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every entry and reports all problems at once. Each
// individual problem is a *sdkerr.Error of kind KindConfig; use
// multierr.Errors to list them.
func (c Config) Validate() error {
	var errs error
	if err := validate.Struct(c); err != nil {
		errs = multierr.Append(errs, fieldErrors(err))
	}

	type key struct {
		family string
		name   string
	}
	names := make(map[key]struct{}, len(c.Networks))
	ids := make(map[string]map[uint8]string, 2)
	for i, n := range c.Networks {
		family := strings.ToLower(n.Family)
		k := key{family, n.Name}
		if _, ok := names[k]; ok {
			errs = multierr.Append(errs, sdkerr.New(sdkerr.KindConfig, ruleDup,
				fmt.Sprintf("netconfig: networks[%d]: duplicate %s network %q", i, family, n.Name)))
		}
		names[k] = struct{}{}

		if ids[family] == nil {
			ids[family] = map[uint8]string{}
		}
		if prev, ok := ids[family][n.Identifier]; ok {
			errs = multierr.Append(errs, sdkerr.New(sdkerr.KindConfig, ruleDup,
				fmt.Sprintf("netconfig: networks[%d]: identifier %d already used by %s network %q", i, n.Identifier, family, prev)))
		} else {
			ids[family][n.Identifier] = n.Name
		}

		if family == "nem" && n.GenerationHashSeed != "" {
			errs = multierr.Append(errs, sdkerr.New(sdkerr.KindConfig, ruleField,
				fmt.Sprintf("netconfig: networks[%d]: nem networks have no generation hash seed", i)))
		}
	}
	return errs
}

func fieldErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return sdkerr.Wrap(sdkerr.KindConfig, ruleField, "netconfig: validation failed", err)
	}
	var errs error
	for _, fe := range verrs {
		msg := fmt.Sprintf("netconfig: %s: failed %q", trimNamespace(fe.Namespace()), fe.Tag())
		if fe.Param() != "" {
			msg += " (" + fe.Param() + ")"
		}
		errs = multierr.Append(errs, sdkerr.New(sdkerr.KindConfig, ruleField, msg))
	}
	return errs
}

// trimNamespace turns "Config.Networks[0].Family" into "Networks[0].Family".
func trimNamespace(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return rest
}

// Build converts the validated entries into network definitions.
func (c Config) Build() ([]network.Network, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	out := make([]network.Network, 0, len(c.Networks))
	for i, n := range c.Networks {
		converted, err := n.network()
		if err != nil {
			return nil, sdkerr.Wrap(sdkerr.KindConfig, ruleConvert, fmt.Sprintf("netconfig: networks[%d]", i), err)
		}
		out = append(out, converted)
	}
	return out, nil
}

func (n NetworkConfig) network() (network.Network, error) {
	family, err := network.ParseFamily(n.Family)
	if err != nil {
		return network.Network{}, err
	}
	epoch, err := time.Parse(time.RFC3339, n.Epoch)
	if err != nil {
		return network.Network{}, err
	}
	var seed *hashing.Hash256
	if n.GenerationHashSeed != "" {
		h, err := hashing.Hash256FromHex(n.GenerationHashSeed)
		if err != nil {
			return network.Network{}, err
		}
		seed = &h
	}
	return network.New(n.Name, n.Identifier, family, epoch, seed)
}

// Locator indexes the configured networks, optionally together with the
// built-in ones. Clashes with a built-in network are reported as errors.
func (c Config) Locator(includeBuiltins bool, opts ...network.LocatorOption) (*network.Locator, error) {
	configured, err := c.Build()
	if err != nil {
		return nil, err
	}
	var all []network.Network
	if includeBuiltins {
		all = append(all, network.Builtins()...)
	}
	all = append(all, configured...)
	return network.NewLocator(all, opts...)
}
