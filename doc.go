// Package fairhold distributes household mental-load tasks among members
// and keeps the distribution fair over time.
//
// The engine is a synchronous, single-process computation library: it reads
// caller-supplied snapshots (tasks, members, the historical completion log,
// rotation state) and returns new values without mutating its inputs or
// performing any I/O. Persistence, notification delivery and rendering are
// the caller's business.
//
// # Capabilities
//
//   - Task weighting: converts task attributes into a numeric load weight
//   - Candidate scoring: six-factor fairness score per eligible member
//   - Assignment selection: single-task and batch placement with rationale
//   - Fairness metrics: balance score and Gini coefficient over load vectors
//   - Burnout monitoring: health classification, alerts, recovery plans and
//     automatic rebalancing proposals
//   - Workload forecasting: periodic pattern detection, trend fitting,
//     point prediction and anomaly detection
//
// # Basic usage
//
//	engine, err := fairhold.NewEngine(fairhold.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	decision, err := engine.SelectAssignee(task, members, tracker, history,
//	    time.Time{}, "")
//	if err != nil {
//	    return err
//	}
//	if decision.Assigned {
//	    // persist decision.MemberID and the updated tracker
//	}
//
// The clock and ID generator are injectable so every computation is
// deterministic under test; see the fairhold/testing package.
package fairhold
