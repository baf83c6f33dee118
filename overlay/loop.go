package overlay

// Loop is the platform event loop that owns every window. Do schedules fn
// on the loop thread without blocking the caller; OnStarted registers the
// callback run once the loop is live (the resume event). Run blocks the
// calling thread, which must be the main thread, until Quit.
type Loop interface {
	Do(fn func())
	OnStarted(fn func())
	Run()
	Quit()
}
