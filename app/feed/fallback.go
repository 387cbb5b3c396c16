package feed

import (
	"errors"
	"fmt"
	"log/slog"
)

// FallbackParser composes parsing strategies: each is tried in order on
// the same raw text, and the first success wins. The default chain is
// strict (standards-based) then resilient (tag scanning), because the
// upstream feed is not always well-formed for a compliant parser.
type FallbackParser struct {
	chain []Parser
}

func NewFallbackParser(chain ...Parser) *FallbackParser {
	if len(chain) == 0 {
		chain = []Parser{NewStrictParser(), NewResilientParser()}
	}

	return &FallbackParser{chain: chain}
}

func (p *FallbackParser) Run(data []byte) ([]Entry, error) {
	var errs []error

	for i, parser := range p.chain {
		entries, err := parser.Run(data)
		if err == nil {
			if i > 0 {
				slog.Info("Feed parsed by fallback strategy", "strategy", i+1)
			}
			return entries, nil
		}

		slog.Warn("Parse strategy failed", "strategy", i+1, "error", err)
		errs = append(errs, err)
	}

	return nil, fmt.Errorf("all parse strategies failed: %w", errors.Join(errs...))
}
