// Package forecast predicts future household workload from historical
// daily volume.
//
// Everything here is closed-form statistics over caller-supplied series:
// periodic pattern detection (per-weekday, per-ISO-week, per-month means),
// ordinary least-squares trend fitting on weekly totals, a combined
// point-prediction for a target date, and rolling z-score anomaly
// detection. No model is trained and no state is kept between calls.
//
// Series shorter than the documented minimums yield
// types.ErrInsufficientData rather than low-quality guesses.
package forecast
