// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors with remediation hints and a
// catalog of markdown issue explanations rendered with glamour.
package issue
