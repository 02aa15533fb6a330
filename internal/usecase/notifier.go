package usecase

// Notifier signals connected clients that entities of a kind changed. Called
// after a successful commit; delivery is fire-and-forget and must never
// surface an error into the completed operation.
type Notifier interface {
	EntityChanged(kind string)
}

// Entity kinds sent through the Notifier.
const (
	KindProject      = "project"
	KindSolution     = "solution"
	KindSubcomponent = "subcomponent"
	KindPhase        = "phase"
)
