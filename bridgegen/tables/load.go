package tables

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/broady/objcgo"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads an override file and overlays it on the defaults. The format is
// chosen by extension: .yaml and .yml are YAML, .toml is TOML. Maps merge key
// by key; lists and scalars present in the file replace the default.
// The result is validated.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables %s: %w", path, err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	override, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing tables %s: %w", path, err)
	}

	t := Default()
	t.Overlay(override)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tables %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a tables document without applying defaults.
func Parse(data []byte, format string) (*Tables, error) {
	t := &Tables{}
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, err
		}
	case "toml":
		if err := toml.Unmarshal(data, t); err != nil {
			return nil, err
		}
	default:
		return nil, objcgo.Errorf(objcgo.CodeInvalidArgument, "unsupported tables format %q", format)
	}
	return t, nil
}

// Overlay copies every field set in o onto t.
func (t *Tables) Overlay(o *Tables) {
	if o.Version != 0 {
		t.Version = o.Version
	}

	overlayString(&t.VoidEncoding, o.VoidEncoding)
	overlayString(&t.ObjectEncoding, o.ObjectEncoding)
	overlayString(&t.RootClass, o.RootClass)
	overlayString(&t.ErrorClass, o.ErrorClass)
	overlayString(&t.Qualifiers, o.Qualifiers)
	overlayString(&t.ConstQualifier, o.ConstQualifier)
	overlayString(&t.ReceiverSuffix, o.ReceiverSuffix)
	overlayString(&t.ConstructorSelector, o.ConstructorSelector)
	overlayString(&t.ConstructorPrefix, o.ConstructorPrefix)
	overlayString(&t.DeprecatedMarker, o.DeprecatedMarker)

	overlayList(&t.DeniedTypes, o.DeniedTypes)
	overlayList(&t.DeniedMethods, o.DeniedMethods)
	overlayList(&t.DeprecatedEnumConstants, o.DeprecatedEnumConstants)
	overlayList(&t.ReservedIdentifiers, o.ReservedIdentifiers)
	overlayList(&t.BoxedTypes, o.BoxedTypes)

	t.Encodings = overlayMap(t.Encodings, o.Encodings)
	t.HostTypes = overlayMap(t.HostTypes, o.HostTypes)
	t.ShimTypes = overlayMap(t.ShimTypes, o.ShimTypes)
}

func overlayString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func overlayList(dst *[]string, src []string) {
	if src != nil {
		*dst = append([]string(nil), src...)
	}
}

func overlayMap(dst, src map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Encode writes the tables in the given format ("yaml" or "toml").
func (t *Tables) Encode(w io.Writer, format string) error {
	var buf bytes.Buffer
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(t); err != nil {
			return err
		}
	default:
		return objcgo.Errorf(objcgo.CodeInvalidArgument, "unsupported tables format %q", format)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
