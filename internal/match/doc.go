// Package match finds near-miss names for diagnostics.
//
// Manifest validation uses it to suggest registered factories and declared
// capabilities when a name does not resolve:
//   - NormalizeIdent folds case and separators ("uk_to_eu" == "UKToEU").
//   - Levenshtein computes the edit distance used for scoring.
//   - Suggest ranks candidates by normalized similarity.
package match
