package geometry

import (
	m "cargeo.dev/cargeo/math"
)

// evaluate runs every formula leaves first: hub offsets, laser half angle,
// track widths, yaw, then toe, camber and total toe. Nothing here reads a
// value that has not been computed earlier in the same pass.
func (e *Engine) evaluate() (s Snapshot) {
	in := e.value

	for _, w := range Wheels {
		s[HubOffset(w)] = average(in(FaceFront(w)), in(FaceBack(w)))
		s[HeightCenter(w)] = average(in(HeightTop(w)), in(HeightBottom(w)))
	}

	wb, fo, ro := in(Wheelbase), in(FrontOverhang), in(RearOverhang)
	lf, lr := in(LaserWidthFront), in(LaserWidthRear)
	wd := in(WheelDiameter)

	length := when(func() float64 { return ro.V + wb.V + fo.V }, ro, wb, fo)
	s[LaserHalfAngle] = half(angle(diff(lf, lr), length))

	// laser width per mm along the car, measured from the rear
	taper := when(func() float64 { return (lf.V - lr.V) / length.V }, lf, lr, length)

	hubFL, hubFR := s[HubOffsetFrontLeft], s[HubOffsetFrontRight]
	hubRL, hubRR := s[HubOffsetRearLeft], s[HubOffsetRearRight]

	laserRear := when(func() float64 { return lr.V + taper.V*ro.V }, lr, taper, ro)
	s[TrackWidthRear] = when(func() float64 {
		return laserRear.V - hubRL.V - hubRR.V
	}, laserRear, hubRL, hubRR)

	// Both axles are measured against the laser width at the rear axle. A
	// single missing front hub counts as zero; the rear axle needs both.
	if hubFL.State != Unresolved || hubFR.State != Unresolved {
		fl, fr := orZero(hubFL), orZero(hubFR)
		s[TrackWidthFront] = when(func() float64 {
			return laserRear.V - fl.V - fr.V
		}, laserRear, fl, fr)
	}

	skewFront := half(diff(hubFR, hubFL))
	skewRear := half(diff(hubRR, hubRL))
	yaw := angle(diff(skewFront, skewRear), wb)
	s[CarYawAngle] = yaw

	laserHalf := s[LaserHalfAngle]
	for _, w := range Wheels {
		raw := angle(diff(in(FaceFront(w)), in(FaceBack(w))), wd)
		sign := 1.0
		if w.Left() {
			sign = -1
		}
		s[Toe(w)] = when(func() float64 {
			return raw.V - laserHalf.V + sign*yaw.V
		}, raw, laserHalf, yaw)

		s[Camber(w)] = angle(diff(in(HeightBottom(w)), in(HeightTop(w))), wd)
	}

	s[TotalToeFront] = sum(s[ToeFrontLeft], s[ToeFrontRight])
	s[TotalToeRear] = sum(s[ToeRearLeft], s[ToeRearRight])

	return s
}

func (e *Engine) value(in Input) Value {
	if !e.supplied[in] {
		return Value{}
	}
	return resolved(e.values[in])
}

// when evaluates fn once every dependency is available. The result is
// degenerate if a dependency is, or if fn itself yields NaN or ±Inf.
func when(fn func() float64, deps ...Value) Value {
	state := Resolved
	for _, d := range deps {
		switch d.State {
		case Unresolved:
			return Value{}
		case Degenerate:
			state = Degenerate
		}
	}
	v := resolved(fn())
	if state == Degenerate {
		v.State = Degenerate
	}
	return v
}

// angle is atan(num/den) in degrees. A zero den is degenerate even when the
// arctangent itself comes out finite.
func angle(num, den Value) Value {
	a := when(func() float64 { return m.AtanDegrees(num.V, den.V) }, num, den)
	if a.State == Resolved && den.V == 0 {
		a.State = Degenerate
	}
	return a
}

func average(a, b Value) Value {
	return when(func() float64 { return m.Average(a.V, b.V) }, a, b)
}

func diff(a, b Value) Value {
	return when(func() float64 { return a.V - b.V }, a, b)
}

func sum(a, b Value) Value {
	return when(func() float64 { return a.V + b.V }, a, b)
}

func half(a Value) Value {
	return when(func() float64 { return a.V * 0.5 }, a)
}

func orZero(v Value) Value {
	if v.State == Unresolved {
		return Value{State: Resolved}
	}
	return v
}
