package life

// Config holds the engine dimensions and the epoch limit.
type Config struct {
	Width  int
	Height int
	Epochs int
}
