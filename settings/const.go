package settings

import (
	"math"
)

const (
	TO_DEGREES  = 180 / math.Pi
	INCH_TO_MM  = 25.4
	APP_NAME    = "Simple Car Geometry"
	APP_VERSION = "0.1"

	DEFAULT_WHEELBASE      = 2420.0 // mm
	DEFAULT_CAR_LENGTH     = 4181.0 // mm
	DEFAULT_OVERHANG       = (DEFAULT_CAR_LENGTH - DEFAULT_WHEELBASE) * 0.5
	DEFAULT_LASER_WIDTH    = 1980.0 // mm, same front and rear
	DEFAULT_WHEEL_DIAMETER = 18 * INCH_TO_MM
	DEFAULT_DECIMALS       = 2
	MAX_DECIMALS           = 6
)
