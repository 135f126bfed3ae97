package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrProvider = "provider"
	AttrArtifact = "artifact"
	AttrReason   = "reason"
	AttrOutcome  = "outcome"
)

// Publish outcomes.
const (
	OutcomeWritten   = "written"
	OutcomeUnchanged = "unchanged"
	OutcomeError     = "error"
)
