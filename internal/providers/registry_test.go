package providers

import (
	"sort"
	"strings"
	"testing"

	"github.com/rangekit/rangefetch/internal/parsers"
)

func TestGet_KnownProvider(t *testing.T) {
	p, ok := Get("aws")
	if !ok {
		t.Fatal("Expected aws to be a known provider")
	}
	if p.Parser != parsers.KindJSONPrefixList {
		t.Errorf("Expected aws parser to be json-prefix-list, got %s", p.Parser)
	}
	if p.URL == "" || p.OutputFile == "" {
		t.Error("Expected aws to have a URL and output file")
	}
}

func TestGet_UnknownProvider(t *testing.T) {
	if _, ok := Get("nonexistent"); ok {
		t.Error("Expected unknown provider lookup to fail")
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()

	if len(names) != len(Registry) {
		t.Errorf("Expected %d names, got %d", len(Registry), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected names to be sorted, got %v", names)
	}
}

func TestRegistry_NoDuplicatesAndValidParsers(t *testing.T) {
	seen := make(map[string]bool)
	outputs := make(map[string]bool)

	for _, p := range Registry {
		if seen[p.Name] {
			t.Errorf("Duplicate provider name: %s", p.Name)
		}
		seen[p.Name] = true

		if outputs[p.OutputFile] {
			t.Errorf("Duplicate output file: %s", p.OutputFile)
		}
		outputs[p.OutputFile] = true

		// Every registered parser kind must be a named format.
		if strings.HasPrefix(p.Parser.String(), "unknown") {
			t.Errorf("Provider %s has unknown parser kind %d", p.Name, p.Parser)
		}
	}
}

func TestManualNames_Sorted(t *testing.T) {
	names := ManualNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected manual names to be sorted, got %v", names)
	}
	if len(names) != len(Manual) {
		t.Errorf("Expected %d manual names, got %d", len(Manual), len(names))
	}
}
