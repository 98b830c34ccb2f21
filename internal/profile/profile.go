package profile

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// EnvPrefix selects which environment variables a profile can see.
const EnvPrefix = "MINIGREP_"

// Profile holds the settings decoded from a profile file. Empty fields were
// not set by the file.
type Profile struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// Load parses and decodes the profile at path, exposing the MINIGREP_*
// entries of env to its expressions as attributes of `env`.
func Load(path string, env map[string]string) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(env),
		},
	}

	var p Profile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &p)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, diags)
	}

	p.LogLevel = strings.ToLower(strings.TrimSpace(p.LogLevel))
	p.LogFormat = strings.ToLower(strings.TrimSpace(p.LogFormat))
	return &p, nil
}

func envObject(env map[string]string) cty.Value {
	attrs := make(map[string]cty.Value)
	for name, v := range env {
		if strings.HasPrefix(name, EnvPrefix) {
			attrs[name] = cty.StringVal(v)
		}
	}
	if len(attrs) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attrs)
}
