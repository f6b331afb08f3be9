// SPDX-License-Identifier: MIT

// Package kernel holds the in-place slice routines shared by partition,
// sorting and combin. Public packages clone a sequence once, run these on
// the private copy and rebuild the result, so nothing here validates bounds:
// callers check ranges before they get here.
package kernel
