// Package parser provides an error-tolerant, incrementally re-parsable
// parser for an XML-flavored documentation language.
//
// # Overview
//
// The parser produces a full-fidelity syntax tree: every byte of the
// source lands in exactly one token's text or trivia, so concatenating
// the tree's tokens reconstructs the input. Nodes store widths rather
// than absolute positions, which makes an unmodified subtree reusable
// verbatim after an edit has shifted the text underneath it.
//
// # Incremental re-parsing
//
// When the source text changes, re-parsing does not start from
// scratch. A Blender walks the previous tree in lock-step with a lexer
// over the edited text:
//
//	┌───────────┐   ReadNode / ReadToken    ┌───────────┐
//	│  Parser   │◀──────BlendedNode─────────│  Blender  │
//	└───────────┘                           └─────┬─────┘
//	                                              │
//	                        ┌─────────────────────┼─────────┐
//	                        ▼                     ▼         ▼
//	                  ┌───────────┐        ┌───────────┐ ┌───────┐
//	                  │ Navigator │        │  Reuse    │ │ Lexer │
//	                  │ (old tree)│        │  policy   │ │ (new  │
//	                  └───────────┘        └───────────┘ │ text) │
//	                                                     └───────┘
//
// Each blender step yields either a whole subtree of the old tree, a
// single old token, or one freshly scanned token, together with the
// blender state to continue from. The reuse policy approves a unit
// only when its old text range is provably outside the region the edit
// may have influenced and its position lines up exactly with the new
// text; anything doubtful is relexed. After scanning past the edited
// region the blender resynchronizes the old-tree cursor, so the cost
// of an edit is proportional to the size of the affected region, not
// to the document.
//
// # Entry points
//
//	// Parse builds a tree from scratch.
//	root, err := parser.Parse(text, parser.DefaultParseOptions())
//
//	// ParseIncremental re-parses after one edit.
//	root2, stats, err := parser.ParseIncremental(root, newText, edit, opts)
//
// Multiple simultaneous edits are merged into one covering EditDelta
// with MergeDeltas before blending.
//
// # Error recovery
//
// Malformed input always yields a tree. Lexical problems (unterminated
// quoted values, comments, CDATA sections, bad entity references)
// become diagnostics attached to best-effort tokens; structural
// problems (missing closers, stray end tags) become zero-width missing
// tokens or diagnostics on the offending tokens. Units carrying
// diagnostics are never reused across edits.
//
// # Thread safety
//
// Trees, tokens and blender values are immutable once produced; any
// number of blending passes may read the same previous tree
// concurrently. A single Parser instance is not safe for concurrent
// use.
package parser
