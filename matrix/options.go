// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the graph→adjacency adapter.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options are plain flags; resolution is last-writer-wins.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultUndirected forces every edge to be mirrored into A[v,u].
	// When false, each edge follows its own Edge.Directed flag.
	DefaultUndirected = false

	// DefaultBinaryWeights exports 1 for every edge instead of its weight.
	DefaultBinaryWeights = false

	// DefaultAllowLoops keeps self-loops on the diagonal; when false they
	// are skipped.
	DefaultAllowLoops = false
)

// Option mutates Options prior to building an adjacency matrix.
type Option func(*Options)

// Options holds the resolved adapter configuration. Fields are unexported;
// callers compose WithX setters.
type Options struct {
	undirected    bool
	binaryWeights bool
	allowLoops    bool
}

// WithUndirected mirrors every edge (u,v) into (v,u), regardless of the
// per-edge Directed flag. Used by cost-model adapters that need symmetric
// couplings.
func WithUndirected() Option {
	return func(o *Options) { o.undirected = true }
}

// WithBinaryWeights writes 1 for every edge, ignoring edge weights.
func WithBinaryWeights() Option {
	return func(o *Options) { o.binaryWeights = true }
}

// WithAllowLoops keeps self-loops on the diagonal instead of skipping them.
func WithAllowLoops() Option {
	return func(o *Options) { o.allowLoops = true }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins; pure function.
func NewMatrixOptions(opts ...Option) Options {
	o := Options{
		undirected:    DefaultUndirected,
		binaryWeights: DefaultBinaryWeights,
		allowLoops:    DefaultAllowLoops,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

