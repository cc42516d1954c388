// Package frechetdistance is your toolkit for nearest-neighbor and range
// queries over planar polygonal curves under the Fréchet distance.
//
// 🚀 What is this?
//
//	A pure-Go engine that brings together:
//
//	  • geom/curve   — point/segment geometry, curves, continuous positions
//	  • pst          — a static priority search tree for certificate mining
//	  • frechet      — the free-space decider, filter pipeline, and certificates
//	  • kdtree/query — candidate pruning and range queries over a curve database
//	  • curveio      — curve/dataset/query file formats
//
// ✨ Why choose it?
//
//   - Rock-solid    — every decision is backed by a sound filter or a
//     fully-decomposed free-space diagram; certificates make the answer
//     independently checkable.
//   - Pure Go       — no cgo, no hidden dependencies.
//   - Extensible    — pruning rules, filters, and memory strategies are
//     all configured through small Options structs.
//
// Dive into SPEC_FULL.md and DESIGN.md for the full design rationale.
package frechetdistance
