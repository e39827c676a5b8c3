package model

import "github.com/google/uuid"

// Node is one graph-visualization vertex: an actor or a target.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Edge is one positive-action edge, kept distinct from graph.Graph's
// interned adjacency lists because elements are a caller-facing
// rendering view, not the engine's working structure.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Action string `json:"action"`
}

// Elements is the opaque graph-visualization set: nodes = unique actors ∪
// targets, edges = one record per positive-action occurrence (§3).
type Elements struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ClusterID is a dense, monotonically increasing identifier assigned in
// component-discovery order, starting at 0.
type ClusterID int

// Cluster is one connected component of the undirected positive-action
// graph with at least Settings.MinClusterSize members.
type Cluster struct {
	ID            ClusterID `json:"id"`
	Members       []string  `json:"members"`
	Density       float64   `json:"density"`
	Conductance   float64   `json:"conductance"`
	ExternalEdges int       `json:"externalEdges"`
	InternalEdges int       `json:"internalEdges"`
}

// WaveMethod distinguishes the two coordination-burst detectors that share
// one output shape but disjoint key namespaces (§9, legacy-coexistence note).
type WaveMethod string

const (
	WaveMethodBin    WaveMethod = "bin"
	WaveMethodWindow WaveMethod = "window"
)

// Wave is one coordinated-timing signal: either a fixed-bin wave or a
// sliding-window burst, distinguished by Method.
type Wave struct {
	WindowStart int64      `json:"windowStart"` // unix seconds
	WindowEnd   int64      `json:"windowEnd"`   // unix seconds
	Action      string     `json:"action"`
	Target      string     `json:"target"`
	Actors      []string   `json:"actors"`
	ZScore      float64    `json:"zScore"`
	Method      WaveMethod `json:"method"`
}

// Scorecard is the complete per-actor report: every scalar score, every
// set-valued signal, and the ordered, human-readable reasons that fired.
type Scorecard struct {
	Actor string `json:"actor"`

	SybilScore float64 `json:"sybilScore"`

	CoordinationScore    float64 `json:"coordinationScore"`
	ChurnScore           int     `json:"churnScore"`
	ClusterIsolationScore float64 `json:"clusterIsolationScore"`
	NewAccountScore      float64 `json:"newAccountScore"`
	LowDiversityScore    float64 `json:"lowDiversityScore"`
	ProfileAnomalyScore  float64 `json:"profileAnomalyScore"`

	RapidActionScore         float64 `json:"rapidActionScore"`
	LowEntropyScore          float64 `json:"lowEntropyScore"`
	VelocityScore            float64 `json:"velocityScore"`
	ActionSequenceRepeatScore float64 `json:"actionSequenceRepeatScore"`
	CircadianScore           float64 `json:"circadianScore"`
	SharedWalletScore        float64 `json:"sharedWalletScore"`
	CrossAppScore            float64 `json:"crossAppScore"`
	BottySessionScore        float64 `json:"bottySessionScore"`
	FraudTxScore             float64 `json:"fraudTxScore"`

	BioSimilarityScore float64 `json:"bioSimilarityScore"`
	HandlePatternScore float64 `json:"handlePatternScore"`
	PhishingLinkScore  float64 `json:"phishingLinkScore"`
	LinkDiversity      float64 `json:"linkDiversity"`

	PageRank        float64 `json:"pagerank"`
	EigenCentrality float64 `json:"eigenCentrality"`
	Betweenness     float64 `json:"betweenness"`

	TargetEntropy float64 `json:"targetEntropy"`
	ActiveHours   int     `json:"activeHours"`
	HourEntropy   float64 `json:"hourEntropy"`

	TotalActions        int     `json:"totalActions"`
	UniqueTargets        int     `json:"uniqueTargets"`
	BurstActions         int     `json:"burstActions"`
	MaxActionsPerMinute  int     `json:"maxActionsPerMinute"`
	MaxActionsPerVelocityWindow int `json:"maxActionsPerVelocityWindow"`
	MaxPerSecond         float64 `json:"maxPerSecond"`

	TopActionNgramCount int `json:"topActionNgramCount"`

	SessionCount      int     `json:"sessionCount"`
	AvgSessionMinutes float64 `json:"avgSessionMinutes"`
	AvgGapMinutes     float64 `json:"avgGapMinutes"`
	MaxGapMinutes     float64 `json:"maxGapMinutes"`

	ReciprocalRate float64 `json:"reciprocalRate"`

	Links            []string `json:"links"`
	SuspiciousLinks  []string `json:"suspiciousLinks"`
	SharedLinks      []string `json:"sharedLinks"`

	SharedWallets     []string `json:"sharedWallets"`
	CrossAppPlatforms []string `json:"crossAppPlatforms"`

	ClusterIDs []ClusterID `json:"clusterIds"`

	Reasons []string `json:"reasons"`
}

// AnalysisResult is the complete, self-contained output of engine.Analyze.
// The engine holds no reference to it after returning; callers own it.
type AnalysisResult struct {
	RunID      uuid.UUID   `json:"runId"`
	Elements   Elements    `json:"elements"`
	Clusters   []Cluster   `json:"clusters"`
	Waves      []Wave      `json:"waves"`
	Scorecards []Scorecard `json:"scorecards"`
}
