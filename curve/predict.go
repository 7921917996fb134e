package curve

import (
	kalman_filter "github.com/LdDl/kalman-filter"
)

// FillConfig controls the predictive extrapolation chain.
type FillConfig struct {
	// MaxWindow is the largest number of points before the gap fed into a
	// predictor. Zero means "use the default".
	MaxWindow int
	// KalmanMinWindow is the smallest window the Kalman predictor accepts
	// before the chain degrades to the polynomial strategies. Zero means
	// "use the default".
	KalmanMinWindow int
}

// DefaultFillConfig returns the recommended configuration.
func DefaultFillConfig() FillConfig {
	return FillConfig{
		MaxWindow:       8,
		KalmanMinWindow: 4,
	}
}

// predictStrategy is one link of the degradation chain. MinPoints is the
// explicit minimum-data predicate of the link; Predict returns the fill
// or nil when the window turns out unusable anyway.
type predictStrategy struct {
	name      string
	minPoints int
	predict   func(window Trajectory, gap Gap) Trajectory
}

// FillPredicted extrapolates the gap forward from the run of points
// before it, with no closing boundary required. Strategies are tried in
// order, each degrading to the next when the pre-gap window is too small:
// Kalman-smoothed constant acceleration, quadratic accelerated motion,
// constant velocity. Returns false when fewer than two points precede
// the gap.
func FillPredicted(traj Trajectory, gap Gap, cfg FillConfig) (Trajectory, bool) {
	defaults := DefaultFillConfig()
	if cfg.MaxWindow <= 0 {
		cfg.MaxWindow = defaults.MaxWindow
	}
	if cfg.KalmanMinWindow < 2 {
		cfg.KalmanMinWindow = defaults.KalmanMinWindow
	}

	window := windowBefore(traj, gap.Start, cfg.MaxWindow)
	chain := []predictStrategy{
		{name: "kalman", minPoints: cfg.KalmanMinWindow, predict: predictKalman},
		{name: "accelerated", minPoints: 3, predict: predictAccelerated},
		{name: "constant-velocity", minPoints: 2, predict: predictConstantVelocity},
	}
	for _, strategy := range chain {
		if len(window) < strategy.minPoints {
			continue
		}
		if fill := strategy.predict(window, gap); len(fill) > 0 {
			return fill, true
		}
	}
	return nil, false
}

// windowBefore returns up to maxLen points with frames strictly below the
// given frame, sorted ascending.
func windowBefore(traj Trajectory, frame, maxLen int) Trajectory {
	window := make(Trajectory, 0, maxLen)
	for _, pt := range traj {
		if pt.Frame < frame {
			window = append(window, pt)
		}
	}
	window.SortByFrame()
	if len(window) > maxLen {
		window = window[len(window)-maxLen:]
	}
	return window
}

// predictKalman runs a 2D constant-acceleration Kalman filter over the
// pre-gap window, one step per frame, then keeps predicting through the
// gap without measurements.
func predictKalman(window Trajectory, gap Gap) Trajectory {
	// No commanded acceleration: the gap is predicted from the estimated
	// velocity alone.
	ux := 0.0
	uy := 0.0
	stdDevA := 2.0
	stdDevMx := 0.1
	stdDevMy := 0.1
	kf := kalman_filter.NewKalman2D(1.0, ux, uy, stdDevA, stdDevMx, stdDevMy,
		kalman_filter.WithState2D(window[0].X, window[0].Y))

	next := 1
	for frame := window[0].Frame + 1; frame < gap.Start; frame++ {
		kf.Predict()
		if next < len(window) && window[next].Frame == frame {
			if err := kf.Update(window[next].X, window[next].Y); err != nil {
				return nil
			}
			next++
		}
	}
	fill := make(Trajectory, 0, gap.Len())
	for frame := gap.Start; frame <= gap.End; frame++ {
		kf.Predict()
		stateX, stateY := kf.GetState()
		fill = append(fill, NewPoint(frame, stateX, stateY, StatusTracked))
	}
	return fill
}

// predictAccelerated fits a quadratic through the last three window
// points (Lagrange form in frame space) and evaluates it over the gap.
func predictAccelerated(window Trajectory, gap Gap) Trajectory {
	p0 := window[len(window)-3]
	p1 := window[len(window)-2]
	p2 := window[len(window)-1]
	f0, f1, f2 := float64(p0.Frame), float64(p1.Frame), float64(p2.Frame)
	if f0 == f1 || f1 == f2 || f0 == f2 {
		return nil
	}
	quad := func(f, v0, v1, v2 float64) float64 {
		l0 := (f - f1) * (f - f2) / ((f0 - f1) * (f0 - f2))
		l1 := (f - f0) * (f - f2) / ((f1 - f0) * (f1 - f2))
		l2 := (f - f0) * (f - f1) / ((f2 - f0) * (f2 - f1))
		return v0*l0 + v1*l1 + v2*l2
	}
	fill := make(Trajectory, 0, gap.Len())
	for frame := gap.Start; frame <= gap.End; frame++ {
		f := float64(frame)
		fill = append(fill, NewPoint(frame, quad(f, p0.X, p1.X, p2.X), quad(f, p0.Y, p1.Y, p2.Y), StatusTracked))
	}
	return fill
}

// predictConstantVelocity extrapolates the per-frame velocity of the last
// two window points.
func predictConstantVelocity(window Trajectory, gap Gap) Trajectory {
	p0 := window[len(window)-2]
	p1 := window[len(window)-1]
	span := float64(p1.Frame - p0.Frame)
	if span == 0 {
		return nil
	}
	vx := (p1.X - p0.X) / span
	vy := (p1.Y - p0.Y) / span
	fill := make(Trajectory, 0, gap.Len())
	for frame := gap.Start; frame <= gap.End; frame++ {
		dt := float64(frame - p1.Frame)
		fill = append(fill, NewPoint(frame, p1.X+vx*dt, p1.Y+vy*dt, StatusTracked))
	}
	return fill
}
