// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric sequences, with optional alignment path and memory
// optimizations. Within docseg it backs package eval's baseline-curve
// alignment: sampling two rows' fitted baselines at matching x
// positions and warping one onto the other surfaces a skewed or
// misfit row even when the two curves were sampled at slightly
// different point counts.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping one axis
//	to minimize cumulative distance.  It’s widely used in:
//	  • Speech recognition & audio alignment
//	  • Gesture / motion matching
//	  • Signature & handwriting verification
//	  • Sampled-curve comparison (e.g. two baselines, or a baseline
//	    against ground truth)
//
// ✨ Key features:
//   - FullMatrix mode: exact O(N·M) time & memory, supports backtrace
//   - TwoRows mode: O(M) memory, M = len(b) (choose via MemoryMode)
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//   - on-demand alignment path (ReturnPath=true, requires FullMatrix)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/docseg/dtw"
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10        // Sakoe–Chiba band ±10
//	opts.SlopePenalty = 0.5 // penalty for 1×2 vs 2×1 steps
//
//	dist, _, err := dtw.DTW(a, b, &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
//
// See package eval for the baseline-alignment use built on top of this.
package dtw
