package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kolah/swagdecl/internal/model"
	"github.com/pb33f/libopenapi"
	"go.yaml.in/yaml/v4"
)

var ErrUnsupportedVersion = errors.New("unsupported Swagger version")

type Result struct {
	Document *model.Document
	Version  string
	Warnings []string
	RawData  []byte
}

func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Load(data)
}

// Load parses a Swagger 2.0 document given as JSON or YAML.
func Load(data []byte) (*Result, error) {
	info, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing Swagger document: %w", err)
	}

	version := info.GetVersion()
	if !strings.HasPrefix(version, "2.") {
		return nil, fmt.Errorf("%w: %s (only 2.0 supported)", ErrUnsupportedVersion, version)
	}

	var doc model.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding Swagger document: %w", err)
	}

	return &Result{
		Document: &doc,
		Version:  version,
		Warnings: collectWarnings(&doc),
		RawData:  data,
	}, nil
}

// collectWarnings reports what the tree builder is going to leave out.
func collectWarnings(doc *model.Document) []string {
	declared := make(map[string]bool, len(doc.Tags))
	for _, t := range doc.Tags {
		declared[t.Name] = true
	}

	var warnings []string
	for path, item := range doc.Paths.All() {
		methods := item.Methods()
		if len(methods) > 1 {
			warnings = append(warnings, fmt.Sprintf("%s declares %d methods; only %s is processed unless all-methods is set",
				path, len(methods), strings.ToUpper(string(methods[0]))))
		}
		for _, m := range methods {
			if !hasDeclaredTag(item.Operation(m).Tags, declared) {
				warnings = append(warnings, fmt.Sprintf("%s %s has no declared tag", strings.ToUpper(string(m)), path))
			}
		}
	}

	for name, def := range doc.Definitions.All() {
		for _, ref := range danglingRefs(def, doc) {
			warnings = append(warnings, fmt.Sprintf("definition %s references missing definition %s", name, ref))
		}
	}

	return warnings
}

func hasDeclaredTag(tags []string, declared map[string]bool) bool {
	for _, t := range tags {
		if declared[t] {
			return true
		}
	}
	return false
}

func danglingRefs(def *model.Schema, doc *model.Document) []string {
	if def == nil {
		return nil
	}
	var missing []string
	check := func(ref string) {
		if ref != "" && doc.Definition(ref) == nil {
			missing = append(missing, ref)
		}
	}
	for _, prop := range def.Properties.All() {
		if prop == nil {
			continue
		}
		check(prop.RefName())
		if elem := prop.Items.ElementSchema(); elem != nil {
			check(elem.RefName())
		}
	}
	return missing
}
