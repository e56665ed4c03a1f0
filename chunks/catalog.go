package chunks

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"teehistorian-gen/internal/match"
)

// Descriptor is the registry entry of one surface name.
type Descriptor struct {
	// Name is the surface name.
	Name string
	// Category is the documentation category; it is not stored on records.
	Category string
	// Fields are the local field names in declaration order.
	Fields []string
	build  func(values []any) (Chunk, error)
}

// New builds a record from values given in field order. Each value is
// coerced to the declared field type.
func (d *Descriptor) New(values ...any) (Chunk, error) {
	if len(values) != len(d.Fields) {
		return nil, fmt.Errorf("%s: %w: want %d values (%s), got %d",
			d.Name, ErrInvalidArgument, len(d.Fields), strings.Join(d.Fields, ", "), len(values))
	}

	return d.build(values)
}

func descriptor(name, category string, build func([]any) (Chunk, error), fields ...string) Descriptor {
	return Descriptor{Name: name, Category: category, Fields: fields, build: build}
}

var registry = map[string]*Descriptor{}

func init() {
	for _, table := range [][]Descriptor{generated, auxiliary} {
		for i := range table {
			d := &table[i]
			if _, ok := registry[d.Name]; ok {
				panic(fmt.Sprintf("chunks: duplicate surface name %q", d.Name))
			}

			registry[d.Name] = d
		}
	}
}

// Names returns every surface name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup returns the descriptor registered under name.
func Lookup(name string) (*Descriptor, error) {
	d, ok := registry[name]
	if !ok {
		return nil, unknownChunkError(name)
	}

	return d, nil
}

// New builds the record registered under name from values in field order.
func New(name string, values ...any) (Chunk, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	return d.New(values...)
}

// Categories returns surface names grouped by category. Both the category
// keys and the names inside a group are sorted.
func Categories() map[string][]string {
	res := make(map[string][]string)
	for name, d := range registry {
		res[d.Category] = append(res[d.Category], name)
	}

	for _, names := range res {
		slices.Sort(names)
	}

	return res
}

func unknownChunkError(name string) error {
	best := match.Suggest(name, Names()).WithinDistance(match.DefaultMaxDistance).Best()
	if best == nil {
		return fmt.Errorf("%w: %q", ErrUnknownChunk, name)
	}

	return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownChunk, name, best.Name)
}
