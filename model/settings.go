package model

// Settings configures every detector in the Analysis Engine. A zero-value
// Settings is not usable; start from DefaultSettings and override only the
// fields a caller cares about, mirroring the reference builderConfig
// pattern of "defaults first, then apply overrides" but as a plain struct
// since every field here is caller-visible configuration, not an internal
// construction detail.
type Settings struct {
	// Threshold, in [0,1], flags an actor whose SybilScore exceeds it.
	Threshold float64 `yaml:"threshold"`

	// MinClusterSize drops connected components smaller than this from
	// Clusters (and from ClusterIsolationScore consideration).
	MinClusterSize int `yaml:"minClusterSize"`

	// TimeBinMinutes is the fixed-bin wave width.
	TimeBinMinutes int `yaml:"timeBinMinutes"`
	// WaveMinCount and WaveMinActors gate a fixed-bin wave.
	WaveMinCount  int `yaml:"waveMinCount"`
	WaveMinActors int `yaml:"waveMinActors"`

	// PositiveActions is the set of actions that materialize a graph edge.
	PositiveActions map[string]bool `yaml:"positiveActions,omitempty"`
	// ChurnActions is the set of actions counted as churn/reversal signals.
	ChurnActions map[string]bool `yaml:"churnActions,omitempty"`

	RapidActionsPerMinuteThreshold int `yaml:"rapidActionsPerMinuteThreshold"`

	EntropyMinTotalActions int `yaml:"entropyMinTotalActions"`

	BurstWindowSeconds int `yaml:"burstWindowSeconds"`
	BurstMinCount      int `yaml:"burstMinCount"`
	BurstMinActors     int `yaml:"burstMinActors"`

	VelocityWindowSeconds      int `yaml:"velocityWindowSeconds"`
	VelocityMaxActionsInWindow int `yaml:"velocityMaxActionsInWindow"`

	SessionGapMinutes int `yaml:"sessionGapMinutes"`

	// ActionNgramSize must be in [2,5].
	ActionNgramSize int `yaml:"actionNgramSize"`

	// SuspiciousDomains and TyposquatBrands extend the built-in link-risk
	// block/brand lists (§4.6); both are additive to the defaults, not a
	// replacement, so a caller narrowing scope never has to restate them.
	SuspiciousDomains []string `yaml:"suspiciousDomains,omitempty"`
	TyposquatBrands   []string `yaml:"typosquatBrands,omitempty"`
}

// DefaultSettings returns the reference configuration used throughout the
// scenario suite in §8 of the design document.
func DefaultSettings() Settings {
	return Settings{
		Threshold:      0.6,
		MinClusterSize: 3,

		TimeBinMinutes: 5,
		WaveMinCount:   5,
		WaveMinActors:  3,

		PositiveActions: map[string]bool{"follow": true},
		ChurnActions:    map[string]bool{"unfollow": true, "unlike": true, "downvote": true},

		RapidActionsPerMinuteThreshold: 30,

		EntropyMinTotalActions: 10,

		BurstWindowSeconds: 120,
		BurstMinCount:      5,
		BurstMinActors:     3,

		VelocityWindowSeconds:      60,
		VelocityMaxActionsInWindow: 20,

		SessionGapMinutes: 30,

		ActionNgramSize: 3,
	}
}

// IsPositiveAction reports whether action materializes a graph edge.
func (s Settings) IsPositiveAction(action string) bool { return s.PositiveActions[action] }

// IsChurnAction reports whether action counts as a churn/reversal signal.
func (s Settings) IsChurnAction(action string) bool { return s.ChurnActions[action] }
