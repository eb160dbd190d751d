// Package burnout watches member workload health and proposes relief.
//
// Health is classified from the member's load percentage; stress indicators
// (overload streaks, missing rest days, erratic day-to-day swings, repeated
// very long days) are detected independently from a rolling daily window and
// carry a 1-10 severity. The two combine into escalating overload alerts
// with ranked relief actions.
//
// Beyond alerting, the monitor builds recovery plans that offload a member
// for one or more days, and proposes automatic task transfers from
// overloaded to underloaded members. All outputs are ephemeral values
// derived from caller-supplied snapshots; nothing is persisted here.
package burnout
