package importer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cleared-dev/spendview/internal/ledger"
	"github.com/cleared-dev/spendview/internal/model"
)

// Parser converts a CSV file into Transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names in sorted order.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&StandardParser{})
	r.Register(&ChaseParser{})
	return r
}

// LoadFile opens path and parses it with the named format.
func (r *Registry) LoadFile(path, format string) ([]model.Transaction, error) {
	p := r.Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(r.Formats(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return txns, nil
}

// StandardParser reads the Date, Category, Amount, Note format.
type StandardParser struct{}

// Format returns the parser name.
func (p *StandardParser) Format() string { return "standard" }

// Parse reads a standard transactions CSV.
func (p *StandardParser) Parse(r io.Reader) ([]model.Transaction, error) {
	return ledger.ReadTransactions(r)
}
