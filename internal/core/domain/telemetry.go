package domain

// VertexStatus is the outcome of a unit of work (Vertex) in a run.
type VertexStatus string

const (
	// VertexStatusCompleted indicates the vertex executed successfully.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the vertex execution failed.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached indicates the vertex work was skipped because its inputs were unchanged.
	VertexStatusCached VertexStatus = "cached"
)
