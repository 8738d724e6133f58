package subgraph

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GatewayURLTemplate builds a gateway endpoint from an API key and subgraph id.
const GatewayURLTemplate = "https://gateway.thegraph.com/api/%s/subgraphs/id/%s"

// ErrUnknownNetwork is returned for a network key missing from the catalogue.
var ErrUnknownNetwork = errors.New("unsupported network")

//go:embed networks.yaml
var networksYAML []byte

// Network is one subgraph deployment.
type Network struct {
	Key        string   `yaml:"key"`
	Aliases    []string `yaml:"aliases"`
	Name       string   `yaml:"name"`
	SubgraphID string   `yaml:"subgraph_id"`
}

// Catalogue resolves network keys (and aliases) to deployments.
type Catalogue struct {
	byKey map[string]Network
	keys  []string
}

type catalogueFile struct {
	Networks []Network `yaml:"networks"`
}

// DefaultCatalogue parses the embedded network list.
func DefaultCatalogue() (*Catalogue, error) {
	return ParseCatalogue(networksYAML)
}

// ParseCatalogue builds a Catalogue from YAML.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var f catalogueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse network catalogue: %w", err)
	}
	c := &Catalogue{byKey: make(map[string]Network)}
	for _, n := range f.Networks {
		if n.Key == "" || n.SubgraphID == "" {
			return nil, fmt.Errorf("parse network catalogue: entry %q missing key or subgraph_id", n.Name)
		}
		c.keys = append(c.keys, n.Key)
		c.byKey[strings.ToLower(n.Key)] = n
		for _, a := range n.Aliases {
			c.byKey[strings.ToLower(a)] = n
		}
	}
	sort.Strings(c.keys)
	return c, nil
}

// Lookup finds a network by key or alias, case-insensitively.
func (c *Catalogue) Lookup(key string) (Network, error) {
	n, ok := c.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Network{}, fmt.Errorf("%w: %s. Supported networks: %s", ErrUnknownNetwork, key, strings.Join(c.keys, ", "))
	}
	return n, nil
}

// Endpoint returns the URL to query for network. A non-empty override wins.
func (c *Catalogue) Endpoint(key, apiKey, override string) (string, Network, error) {
	n, err := c.Lookup(key)
	if err != nil {
		return "", Network{}, err
	}
	if override != "" {
		return override, n, nil
	}
	return fmt.Sprintf(GatewayURLTemplate, apiKey, n.SubgraphID), n, nil
}

// Keys lists the canonical network keys.
func (c *Catalogue) Keys() []string {
	return append([]string(nil), c.keys...)
}
