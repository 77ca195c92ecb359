// Package pkg provides the core libraries for syntaxdiagrams, a railroad
// (syntax) diagram layout engine.
//
// # Overview
//
// syntaxdiagrams turns a grammar expression tree into a laid-out railroad
// diagram and emits it through a chosen backend (SVG or a character grid).
// The pkg directory is organized by pipeline stage:
//
//  1. [diagram] - The expression tree: Sequence, Stack, Choice, Optional,
//     OneOrMore, ZeroOrMore, Barrier, Group, Terminal, NonTerminal, Comment,
//     Skip, and their shared Node interface.
//  2. [dgerrors] - Structured loading/embedding errors shared across stages.
//  3. [transform] - Tree-to-tree passes that run before layout: Wrap (splitting
//     long sequences across lines) and Optimize (fusing runs of adjacent
//     same-side bypasses).
//  4. [layout] - Measure and Place: computes each node's footprint and then its
//     final coordinates.
//  5. [metric] - Settings and the Profile/Surface abstraction backends
//     implement to turn a placed tree into concrete output.
//  6. [render] - The Vector (SVG, via ajstarks/svgo) and Text (character grid)
//     backends, plus their Debug variants.
//  7. [load] - Decodes the generic JSON/TOML data-literal shape produced by
//     internal/cli into a [diagram.Node] tree.
//  8. [cache] - Content-addressed response caching for the serve command
//     (file-backed and Redis-backed implementations).
//  9. [buildinfo] - Version/commit/date metadata threaded through by
//     ldflags at build time.
//
// # Architecture
//
// The typical data flow through syntaxdiagrams:
//
//	JSON/TOML diagram literal
//	         ↓
//	    [load] package (decode into a diagram.Node tree)
//	         ↓
//	    [transform] package (Wrap, then Optimize)
//	         ↓
//	    [layout] package (Measure, then Place)
//	         ↓
//	    [render] package (Vector or Text backend)
//	         ↓
//	    SVG or text-grid output
//
// # Quick Start
//
//	import (
//	    "github.com/flowshape/syntaxdiagrams/pkg/load"
//	    "github.com/flowshape/syntaxdiagrams/pkg/metric"
//	    "github.com/flowshape/syntaxdiagrams/pkg/render"
//	)
//
//	tree, _ := load.Load(decoded)
//	svg, _ := render.Vector(tree, metric.DefaultSettings())
//
// # Testing
//
//	go test ./pkg/...   # All tests
package pkg
