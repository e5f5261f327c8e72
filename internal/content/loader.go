package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
)

// ErrIncompatible is returned when a pack requires a newer application.
var ErrIncompatible = errors.New("content pack requires a newer app version")

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func packValidator() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// Round-trip so the compiler sees plain JSON values.
		raw, err := json.Marshal(packSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal pack schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse pack schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(packSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(packSchemaURL)
	})
	return compiled, compileErr
}

// LoadFile reads and validates a content pack from path.
func LoadFile(path, appVersion string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content pack: %w", err)
	}
	defer f.Close()
	return Load(f, appVersion)
}

// Load decodes a content pack, validates it against the pack schema and the
// structural rules, and checks that appVersion satisfies min_app_version.
// Development builds (appVersion not a valid semver) skip the version gate.
func Load(r io.Reader, appVersion string) (*Pack, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content pack: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := packValidator()
	if err != nil {
		return nil, fmt.Errorf("compile pack schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var pack Pack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("decode content pack: %w", err)
	}

	if err := checkVersion(pack.MinAppVersion, appVersion); err != nil {
		return nil, err
	}
	if err := Validate(&pack); err != nil {
		return nil, err
	}
	return &pack, nil
}

func checkVersion(minVersion, appVersion string) error {
	if minVersion == "" {
		return nil
	}
	minV := canonical(minVersion)
	if !semver.IsValid(minV) {
		return fmt.Errorf("invalid min_app_version %q", minVersion)
	}
	appV := canonical(appVersion)
	if !semver.IsValid(appV) {
		return nil
	}
	if semver.Compare(appV, minV) < 0 {
		return fmt.Errorf("%w: have %s, need %s", ErrIncompatible, appV, minV)
	}
	return nil
}

func canonical(v string) string {
	if v != "" && v[0] != 'v' {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// Export writes p as indented JSON.
func Export(w io.Writer, p *Pack) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode content pack: %w", err)
	}
	return nil
}
