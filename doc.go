// Package docseg is a from-scratch page-layout and word-segmentation
// toolkit: it takes an edge extractor's chain-coded outlines and turns
// them into words, rows and blocks ready for a recognizer.
//
// 🚀 What is docseg?
//
//	A modern, dependency-embracing rework of a classic OCR document
//	analysis pipeline, organized as independent, composable packages:
//
//	  • geometry/container — boxes, points and an arena-backed ring list
//	  • outline            — chain-coded & polygonal outlines, chopping
//	  • denorm             — baseline/x-height normalization chains
//	  • seam               — blob split/join/insert bookkeeping
//	  • structunit         — Werd/Row/Block structural units
//	  • ratings/associate  — segmentation search and its cost model
//	  • paramsmodel        — linear hypothesis scoring
//	  • superscript        — superscript/subscript detection and fixup
//	  • wordres/batch      — end-to-end word-result assembly, concurrent
//	  • eval/debugrender   — baseline-alignment scoring and PNG dumps
//
// ✨ Why docseg?
//
//   - Immutable-ish core types, explicit sentinel errors
//   - Generics where the teacher reached for them (Arena, Matrix, Cursor)
//   - A thin cmd/docseg front door running one synthetic word through
//     outline, wordres, paramsmodel and debugrender
//
// Dive into SPEC_FULL.md for the full module-by-module specification
// and DESIGN.md for how each package traces back to its grounding.
package docseg
