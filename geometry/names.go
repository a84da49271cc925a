package geometry

import (
	"strings"
)

type Wheel int

const (
	FrontLeft Wheel = iota
	FrontRight
	RearLeft
	RearRight
)

var Wheels = [4]Wheel{FrontLeft, FrontRight, RearLeft, RearRight}

func (w Wheel) Front() bool { return w == FrontLeft || w == FrontRight }
func (w Wheel) Left() bool  { return w == FrontLeft || w == RearLeft }

func (w Wheel) String() string {
	return [...]string{"front_left", "front_right", "rear_left", "rear_right"}[w]
}

// Input is a raw value supplied by the user.
type Input int

const (
	Wheelbase Input = iota
	FrontOverhang
	RearOverhang
	LaserWidthFront
	LaserWidthRear
	WheelDiameter

	// W<axle><face><side>: distance from the laser to the front and back
	// of the tyre sidewall.
	Wffl
	Wfbl
	Wffr
	Wfbr
	Wbfl
	Wbbl
	Wbfr
	Wbbr

	// H<axle><top|bottom><side>: distance from the laser to the top and
	// bottom of the wheel.
	Hftl
	Hfbl
	Hftr
	Hfbr
	Hbtl
	Hbbl
	Hbtr
	Hbbr

	inputCount
)

// Derived is a value computed from the inputs.
type Derived int

const (
	HubOffsetFrontLeft Derived = iota
	HubOffsetFrontRight
	HubOffsetRearLeft
	HubOffsetRearRight
	HeightCenterFrontLeft
	HeightCenterFrontRight
	HeightCenterRearLeft
	HeightCenterRearRight
	LaserHalfAngle
	TrackWidthFront
	TrackWidthRear
	CarYawAngle
	ToeFrontLeft
	ToeFrontRight
	ToeRearLeft
	ToeRearRight
	CamberFrontLeft
	CamberFrontRight
	CamberRearLeft
	CamberRearRight
	TotalToeFront
	TotalToeRear

	derivedCount
)

type inputInfo struct {
	name  string
	alias string
	label string
}

var inputs = [inputCount]inputInfo{
	Wheelbase:       {"wheelbase", "Wb", "Wheel Base"},
	FrontOverhang:   {"front_overhang", "Fo", "Front Overhang"},
	RearOverhang:    {"rear_overhang", "Ro", "Rear Overhang"},
	LaserWidthFront: {"laser_width_front", "Lf", "Front Laser width"},
	LaserWidthRear:  {"laser_width_rear", "Lb", "Rear Laser Width"},
	WheelDiameter:   {"wheel_diameter", "Wd", "Wheel Diameter"},

	Wffl: {"Wffl", "", "Front Left, front of wheel"},
	Wfbl: {"Wfbl", "", "Front Left, back of wheel"},
	Wffr: {"Wffr", "", "Front Right, front of wheel"},
	Wfbr: {"Wfbr", "", "Front Right, back of wheel"},
	Wbfl: {"Wbfl", "", "Rear Left, front of wheel"},
	Wbbl: {"Wbbl", "", "Rear Left, back of wheel"},
	Wbfr: {"Wbfr", "", "Rear Right, front of wheel"},
	Wbbr: {"Wbbr", "", "Rear Right, back of wheel"},

	Hftl: {"Hftl", "", "Front Left, top of wheel"},
	Hfbl: {"Hfbl", "", "Front Left, bottom of wheel"},
	Hftr: {"Hftr", "", "Front Right, top of wheel"},
	Hfbr: {"Hfbr", "", "Front Right, bottom of wheel"},
	Hbtl: {"Hbtl", "", "Rear Left, top of wheel"},
	Hbbl: {"Hbbl", "", "Rear Left, bottom of wheel"},
	Hbtr: {"Hbtr", "", "Rear Right, top of wheel"},
	Hbbr: {"Hbbr", "", "Rear Right, bottom of wheel"},
}

var derivedNames = [derivedCount]string{
	HubOffsetFrontLeft:     "hub_offset_front_left",
	HubOffsetFrontRight:    "hub_offset_front_right",
	HubOffsetRearLeft:      "hub_offset_rear_left",
	HubOffsetRearRight:     "hub_offset_rear_right",
	HeightCenterFrontLeft:  "height_center_front_left",
	HeightCenterFrontRight: "height_center_front_right",
	HeightCenterRearLeft:   "height_center_rear_left",
	HeightCenterRearRight:  "height_center_rear_right",
	LaserHalfAngle:         "laser_half_angle",
	TrackWidthFront:        "track_width_front",
	TrackWidthRear:         "track_width_rear",
	CarYawAngle:            "car_yaw_angle",
	ToeFrontLeft:           "toe_front_left",
	ToeFrontRight:          "toe_front_right",
	ToeRearLeft:            "toe_rear_left",
	ToeRearRight:           "toe_rear_right",
	CamberFrontLeft:        "camber_front_left",
	CamberFrontRight:       "camber_front_right",
	CamberRearLeft:         "camber_rear_left",
	CamberRearRight:        "camber_rear_right",
	TotalToeFront:          "total_toe_front",
	TotalToeRear:           "total_toe_rear",
}

var (
	inputsByName  = map[string]Input{}
	derivedByName = map[string]Derived{}
)

func init() {
	for i, info := range inputs {
		inputsByName[strings.ToLower(info.name)] = Input(i)
		if info.alias != "" {
			inputsByName[strings.ToLower(info.alias)] = Input(i)
		}
	}
	for d, name := range derivedNames {
		derivedByName[name] = Derived(d)
	}
}

func (in Input) String() string { return inputs[in].name }
func (in Input) Label() string  { return inputs[in].label }

// Reading reports whether the input is one of the sixteen laser readings, as
// opposed to a vehicle or rig dimension.
func (in Input) Reading() bool { return in >= Wffl }

func (d Derived) String() string { return derivedNames[d] }

// Angle reports whether the value is in degrees rather than millimetres.
func (d Derived) Angle() bool { return d >= LaserHalfAngle && d != TrackWidthFront && d != TrackWidthRear }

// LookupInput finds an input by name or short alias, ignoring case.
func LookupInput(name string) (Input, bool) {
	in, ok := inputsByName[strings.ToLower(strings.TrimSpace(name))]
	return in, ok
}

func LookupDerived(name string) (Derived, bool) {
	d, ok := derivedByName[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// Inputs lists every input in declaration order.
func Inputs() []Input {
	all := make([]Input, inputCount)
	for i := range all {
		all[i] = Input(i)
	}
	return all
}

// DerivedValues lists every derived value in evaluation order.
func DerivedValues() []Derived {
	all := make([]Derived, derivedCount)
	for d := range all {
		all[d] = Derived(d)
	}
	return all
}

func FaceFront(w Wheel) Input    { return [...]Input{Wffl, Wffr, Wbfl, Wbfr}[w] }
func FaceBack(w Wheel) Input     { return [...]Input{Wfbl, Wfbr, Wbbl, Wbbr}[w] }
func HeightTop(w Wheel) Input    { return [...]Input{Hftl, Hftr, Hbtl, Hbtr}[w] }
func HeightBottom(w Wheel) Input { return [...]Input{Hfbl, Hfbr, Hbbl, Hbbr}[w] }

func HubOffset(w Wheel) Derived    { return HubOffsetFrontLeft + Derived(w) }
func HeightCenter(w Wheel) Derived { return HeightCenterFrontLeft + Derived(w) }
func Toe(w Wheel) Derived          { return ToeFrontLeft + Derived(w) }
func Camber(w Wheel) Derived       { return CamberFrontLeft + Derived(w) }
