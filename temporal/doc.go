// Package temporal implements the fixed-bin wave detector, the
// sliding-window burst detector, and the per-actor velocity and rapid-rate
// signals (design doc §4.5). Events whose timestamp failed to parse
// (!Event.TimeValid) are skipped entirely here, per the "malformed
// timestamps do not abort" failure semantic (design doc §7) — they still
// contribute structurally elsewhere (graph, profile) but never to a wave,
// a burst, or a velocity/rapid-rate computation.
package temporal
