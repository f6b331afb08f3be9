// SPDX-License-Identifier: MIT

// Package setops implements set algebra over two sequences sorted by the
// same strict order: Union, Intersection, Difference, SymmetricDifference,
// Includes and the plain stable Merge.
//
// Every operation is a single merge pass, O(len(a)+len(b)) comparisons, and
// resolves ties the same way every time:
//
//	union                 take b when less(b, a); otherwise take a, and skip b too when they tie
//	intersection          keep a only when a and b tie
//	difference            keep a when less(a, b); drop it when they tie
//	symmetric difference  keep the smaller side; drop both on a tie
//
// Results carry the shape of the first operand. The ...In forms work on the
// windows a[lo1:hi1) and b[lo2:hi2) and return only the merged window.
package setops
