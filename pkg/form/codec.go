package form

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec encodes snapshots for persistence.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
}

var (
	// JSONCodec is the default codec.
	JSONCodec Codec = jsonCodec{}
	// YAMLCodec encodes snapshots as YAML documents.
	YAMLCodec Codec = yamlCodec{}
)

// CodecByName returns the codec registered under name ("json" or "yaml").
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSONCodec, nil
	case "yaml", "yml":
		return YAMLCodec, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string                  { return "json" }
func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

type yamlCodec struct{}

func (yamlCodec) Name() string                  { return "yaml" }
func (yamlCodec) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }
