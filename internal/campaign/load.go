package campaign

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed default.yaml
var defaultYAML []byte

// Load builds a Campaign by layering configuration sources.
// Order of precedence (low -> high):
//  1. embedded default campaign
//  2. YAML file at path, if path is non-empty
//  3. env vars with prefix GONGU_CAMPAIGN_ (flat keys, e.g.
//     GONGU_CAMPAIGN_GOAL_AMOUNT -> goal_amount)
//
// The result is validated before being returned.
func Load(path string) (Campaign, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultYAML), yaml.Parser()); err != nil {
		return Campaign{}, fmt.Errorf("load embedded campaign: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Campaign{}, fmt.Errorf("load campaign file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("GONGU_CAMPAIGN_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "gongu_campaign_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Campaign{}, fmt.Errorf("load campaign env overrides: %w", err)
	}

	var c Campaign
	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Campaign{}, fmt.Errorf("unmarshal campaign: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Campaign{}, err
	}
	return c, nil
}

// Default returns the embedded campaign definition. It panics if the
// embedded YAML is invalid, which can only happen at build time.
func Default() Campaign {
	c, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("embedded campaign is invalid: %v", err))
	}
	return c
}
