// Package profile implements the Profile Aggregator (design doc §4.1): it folds
// every event's optional profile fields into one last-write-wins record per
// actor, normalizes and unions links from both the explicit Links field and
// the bio text, and builds the inverted index that finds links shared
// across actors.
//
// Malformed link strings are dropped silently and an empty bio contributes
// nothing, per the component's failure semantics — this package never
// returns an error for well-typed input.
package profile
