package types

// Hooks defines optional callbacks invoked by the Engine around decisions.
//
// All hooks are optional and invoked synchronously, in the calling
// goroutine, after the corresponding result has been computed. Hook errors
// are logged and never propagated to the caller; the returned result is
// already final when a hook runs.
//
// Best practices for hook implementations:
//   - Complete quickly; the caller is blocked while hooks run
//   - Don't perform long I/O; enqueue and return instead
//   - Handle errors gracefully (return error for logging only)
//
// Example:
//
//	hooks := &fairhold.Hooks{
//	    OnOverloadAlert: func(alert fairhold.OverloadAlert) error {
//	        return dispatcher.Enqueue(alert)
//	    },
//	}
type Hooks struct {
	// OnAssignmentDecided is called after every single-task selection,
	// including no-candidate outcomes and batch-internal selections.
	// assigned is false when no eligible candidate was found.
	OnAssignmentDecided func(taskID, memberID string, assigned bool) error

	// OnOverloadAlert is called when the burnout monitor emits an alert.
	OnOverloadAlert func(alert OverloadAlert) error

	// OnError is called when a recoverable internal condition occurs.
	OnError func(err error) error
}
