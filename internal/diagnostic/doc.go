// Package diagnostic collects structured errors and warnings produced while
// validating an adaptation manifest.
//
// Each diagnostic carries a stable code, the manifest entry it concerns and
// optional suggestions ("did you mean uk_to_eu?").
package diagnostic
