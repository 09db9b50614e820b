package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaDoc is the part of a reflected schema used for verification
type schemaDoc struct {
	Ref  string                `json:"$ref"`
	Defs map[string]schemaNode `json:"$defs"`
}

type schemaNode struct {
	Ref        string                `json:"$ref"`
	Properties map[string]schemaNode `json:"properties"`
}

// VerifyAgainstEmbeddedSchema checks that every section and key of the config is described by
// the embedded JSON schema and that required fields are set
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema schemaDoc
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	root, ok := schema.resolve(schema.Ref)
	if !ok {
		return fmt.Errorf("schema root %q not found", schema.Ref)
	}
	if unknown := schema.unknownKeys("", root, configMap); len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("keys missing from schema: %s", strings.Join(unknown, ", "))
	}

	// basic validation - check required fields match
	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

func (s schemaDoc) resolve(ref string) (schemaNode, bool) {
	node, ok := s.Defs[strings.TrimPrefix(ref, "#/$defs/")]
	return node, ok
}

func (s schemaDoc) unknownKeys(prefix string, node schemaNode, values map[string]any) []string {
	var res []string
	for key, val := range values {
		prop, ok := node.Properties[key]
		if !ok {
			res = append(res, prefix+key)
			continue
		}
		nested, isMap := val.(map[string]any)
		if !isMap {
			continue
		}
		if prop.Ref != "" {
			if prop, ok = s.resolve(prop.Ref); !ok {
				res = append(res, prefix+key)
				continue
			}
		}
		res = append(res, s.unknownKeys(prefix+key+".", prop, nested)...)
	}
	return res
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	// check server config
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.Portal.BaseURL == "" {
		return fmt.Errorf("portal.base_url is required")
	}

	// check smtp config if enabled
	if cfg.SMTP.Enabled() {
		if cfg.SMTP.From == "" {
			return fmt.Errorf("smtp.from is required when smtp is enabled")
		}
		if cfg.SMTP.Timeout == 0 {
			return fmt.Errorf("smtp.timeout is required when smtp is enabled")
		}
	}

	// check chat config if enabled
	if cfg.Chat.Enabled() && cfg.Chat.Model == "" {
		return fmt.Errorf("chat.model is required when chat is enabled")
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
