// Package behavior implements the Behavioral Detectors (design doc §4.6): target
// entropy, circadian pattern, action n-gram repetition, session structure,
// shared-funder overlap, cross-platform activity, transaction-amount
// variance, reciprocity, bio similarity, handle-pattern reuse, link risk,
// and account novelty.
//
// Every detector is a pure function of []model.Event (plus, where noted,
// the profile.Result the Profile Aggregator already computed) and returns
// its slice of the per-actor Signals record that scoring.Score consumes.
// The four functions named as "auxiliary pure helpers" in design doc §6 —
// DetectSharedWallets, DetectCrossAppLinking, DetectSessionMetrics, and
// DetectFraudulentTransactions — are exported directly off []model.Event so
// an ingestion collaborator can call them without building a full
// model.Settings.
package behavior
