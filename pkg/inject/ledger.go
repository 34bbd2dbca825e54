// Package inject provides a supporting in-memory record of vocabulary
// injected at runtime (§3.3's InjectionRequest/InjectionStatus), so a
// dialogue-manager-side component can answer "what has been injected
// since start" without replaying the hermes/injection/perform topic.
//
// This is not itself a facade: it is plain bookkeeping a component wires
// into its InjectionBackend implementation (see [facade.InjectionBackend]).
package inject

import (
	"context"
	"strings"
	"sync"

	"github.com/hermesvox/hermesvox/pkg/ontology"
)

// NormalizePronunciation lower-cases and trims a lexicon pronunciation
// entry before it is stored, matching the original implementation's
// normalize_pronunciation (see DESIGN.md).
func NormalizePronunciation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ledger tracks the cumulative set of injected [ontology.EntityValue]s and
// lexicon entries per entity name, plus the timestamp of the last
// injection applied. The zero value is not ready to use; call [NewLedger].
//
// All methods are safe for concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	values   map[string][]ontology.EntityValue
	lexicon  map[string][]string
	lastTime *ontology.Timestamp
}

// NewLedger returns an empty, ready-to-use [Ledger].
func NewLedger() *Ledger {
	return &Ledger{
		values:  make(map[string][]ontology.EntityValue),
		lexicon: make(map[string][]string),
	}
}

// Apply records req as having been successfully injected at at. Values for
// an entity accumulate across calls; [ontology.InjectionKindAddFromVanilla]
// is recorded the same way as [ontology.InjectionKindAdd] — the ledger
// tracks cumulative vocabulary, not the baseline it was added from.
// Lexicon pronunciations are normalized via [NormalizePronunciation]
// before being stored.
func (l *Ledger) Apply(ctx context.Context, req ontology.InjectionRequest, at ontology.Timestamp) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, op := range req.Operations {
		for entity, values := range op.Values {
			l.values[entity] = append(l.values[entity], values...)
		}
	}
	for value, prons := range req.Lexicon {
		normalized := make([]string, len(prons))
		for i, p := range prons {
			normalized[i] = NormalizePronunciation(p)
		}
		l.lexicon[value] = append(l.lexicon[value], normalized...)
	}
	l.lastTime = &at
}

// Reset discards every recorded value and lexicon entry and clears the
// last-injection timestamp, mirroring an [ontology.InjectionResetRequest].
func (l *Ledger) Reset(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = make(map[string][]ontology.EntityValue)
	l.lexicon = make(map[string][]string)
	l.lastTime = nil
}

// Status returns the current [ontology.InjectionStatus] for this ledger:
// the timestamp of the last applied injection, or a nil timestamp if none
// has ever been applied.
func (l *Ledger) Status(ctx context.Context) ontology.InjectionStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return ontology.InjectionStatus{LastInjectionDate: l.lastTime}
}

// ValuesFor returns the accumulated [ontology.EntityValue]s injected for
// entity, or nil if none have been injected.
func (l *Ledger) ValuesFor(entity string) []ontology.EntityValue {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if vs, ok := l.values[entity]; ok {
		out := make([]ontology.EntityValue, len(vs))
		copy(out, vs)
		return out
	}
	return nil
}

// PronunciationsFor returns the accumulated, normalized pronunciations
// registered for value, or nil if none have been injected.
func (l *Ledger) PronunciationsFor(value string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if ps, ok := l.lexicon[value]; ok {
		out := make([]string, len(ps))
		copy(out, ps)
		return out
	}
	return nil
}
