package slots

// Executor runs spawned handler tasks. A task must eventually be run exactly
// once; the emitter's scope counts it as outstanding until it returns.
type Executor interface {
	Go(task func())
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(task func())

func (f ExecutorFunc) Go(task func()) {
	f(task)
}

var (
	// GoroutineExecutor starts one goroutine per task.
	GoroutineExecutor Executor = ExecutorFunc(func(task func()) { go task() })

	// InlineExecutor runs the task on the spawning goroutine.
	InlineExecutor Executor = ExecutorFunc(func(task func()) { task() })
)
