// Package axisep separates finite sets of 2D points with axis-parallel
// lines, using a greedy heuristic that always commits the line cutting
// the most still-linked point pairs.
//
// 🚀 What is axisep?
//
//	A small, deterministic separation engine plus the batch glue around it:
//		• pointset  — immutable point storage with its two sorted index orders
//		• linkgraph — the pairwise-connectivity relation (complete at birth,
//		  links only ever removed)
//		• separate  — candidate-line generation and the greedy commit loop
//		• instance  — numbered instance-file reading/writing and the
//		  directory runner
//		• cmd/axisep — the CLI that walks input/instanceNN.txt and emits
//		  output_greedy/greedy_solutionNN.txt
//
// ✨ Why axisep?
//
//   - Reproducible — identical input always yields byte-identical output;
//     tie-breaks are fixed by candidate enumeration order
//   - Bounded — at most 2·(n−1) lines for n points, usually far fewer
//   - Honest — a heuristic, not an optimality proof; see separate's docs
//
// Quick ASCII example (four points, two committed lines):
//
//	  ·     │    ·
//	──────────────
//	  ·     │    ·
//
// Start with separate.Separate for the engine, or instance.Runner for
// batch processing.
package axisep
