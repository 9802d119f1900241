package units

import "math"

// Derived dimensions used by the definitions table.
var (
	dimLength      = Of(Length)
	dimMass        = Of(Mass)
	dimTime        = Of(Time)
	dimCurrent     = Of(Current)
	dimTemperature = Of(Temperature)
	dimAmount      = Of(Amount)
	dimLuminous    = Of(LuminousIntensity)

	dimFrequency    = NewDimension(0, 0, -1, 0, 0, 0, 0)
	dimArea         = NewDimension(2, 0, 0, 0, 0, 0, 0)
	dimVolume       = NewDimension(3, 0, 0, 0, 0, 0, 0)
	dimVelocity     = NewDimension(1, 0, -1, 0, 0, 0, 0)
	dimAcceleration = NewDimension(1, 0, -2, 0, 0, 0, 0)
	dimForce        = NewDimension(1, 1, -2, 0, 0, 0, 0)
	dimEnergy       = NewDimension(2, 1, -2, 0, 0, 0, 0)
	dimPower        = NewDimension(2, 1, -3, 0, 0, 0, 0)
	dimPressure     = NewDimension(-1, 1, -2, 0, 0, 0, 0)
	dimCharge       = NewDimension(0, 0, 1, 1, 0, 0, 0)
	dimVoltage      = NewDimension(2, 1, -3, -1, 0, 0, 0)
	dimResistance   = NewDimension(2, 1, -3, -2, 0, 0, 0)
	dimCapacitance  = NewDimension(-2, -1, 4, 2, 0, 0, 0)
	dimInductance   = NewDimension(2, 1, -2, -2, 0, 0, 0)
	dimMagField     = NewDimension(0, 1, -2, -1, 0, 0, 0)
	dimMagFlux      = NewDimension(2, 1, -2, -1, 0, 0, 0)
	dimIlluminance  = NewDimension(-2, 0, 0, 0, 0, 0, 1)
)

const (
	electronVolt = 1.602176634e-19
	dalton       = 1.66053906660e-27
	standardG    = 9.80665
	poundMass    = 0.45359237
	inch         = 0.0254
)

func def(symbol, name, category string, dim Dimension, scale float64, aliases ...string) Unit {
	return Unit{
		Symbol:   symbol,
		Name:     name,
		Aliases:  aliases,
		Dim:      dim,
		Category: category,
		Scale:    scale,
	}
}

func temperature(symbol, name string, scale, offset float64, aliases ...string) Unit {
	u := def(symbol, name, "temperature", dimTemperature, scale, aliases...)
	u.Offset = offset
	u.Affine = true
	return u
}

// Definitions returns the built-in unit table in listing order. Adding a
// unit means adding one entry here; neither the parser nor the converter
// needs to change.
//
// C and F are the Celsius and Fahrenheit scales; the coulomb and the farad
// are spelled out to keep those symbols unambiguous.
func Definitions() []Unit {
	return []Unit{
		// Length
		def("m", "meter", "length", dimLength, 1, "meter", "metre", "meters"),
		def("km", "kilometer", "length", dimLength, 1e3, "kilometer", "kilometre"),
		def("cm", "centimeter", "length", dimLength, 1e-2, "centimeter"),
		def("mm", "millimeter", "length", dimLength, 1e-3, "millimeter"),
		def("um", "micrometer", "length", dimLength, 1e-6, "µm", "micrometer", "micron"),
		def("nm", "nanometer", "length", dimLength, 1e-9, "nanometer"),
		def("pm", "picometer", "length", dimLength, 1e-12, "picometer"),
		def("angstrom", "ångström", "length", dimLength, 1e-10, "Å"),
		def("in", "inch", "length", dimLength, inch, "inch", "inches"),
		def("ft", "foot", "length", dimLength, 12*inch, "foot", "feet"),
		def("yd", "yard", "length", dimLength, 36*inch, "yard", "yards"),
		def("mi", "mile", "length", dimLength, 1609.344, "mile", "miles"),
		def("nmi", "nautical mile", "length", dimLength, 1852, "nautical_mile"),
		def("au", "astronomical unit", "length", dimLength, 1.495978707e11, "AU", "astronomical_unit"),
		def("ly", "light-year", "length", dimLength, 9.4607304725808e15, "lightyear", "light_year"),
		def("pc", "parsec", "length", dimLength, 3.0856775814913673e16, "parsec"),

		// Mass
		def("kg", "kilogram", "mass", dimMass, 1, "kilogram", "kilograms"),
		def("g", "gram", "mass", dimMass, 1e-3, "gram", "grams"),
		def("mg", "milligram", "mass", dimMass, 1e-6, "milligram"),
		def("ug", "microgram", "mass", dimMass, 1e-9, "µg", "microgram"),
		def("t", "tonne", "mass", dimMass, 1e3, "tonne", "metric_ton"),
		def("lb", "pound", "mass", dimMass, poundMass, "pound", "pounds", "lbs"),
		def("oz", "ounce", "mass", dimMass, poundMass/16, "ounce", "ounces"),
		def("Da", "dalton", "mass", dimMass, dalton, "u", "amu", "dalton"),

		// Time
		def("s", "second", "time", dimTime, 1, "sec", "second", "seconds"),
		def("ms", "millisecond", "time", dimTime, 1e-3, "millisecond"),
		def("us", "microsecond", "time", dimTime, 1e-6, "µs", "microsecond"),
		def("ns", "nanosecond", "time", dimTime, 1e-9, "nanosecond"),
		def("min", "minute", "time", dimTime, 60, "minute", "minutes"),
		def("h", "hour", "time", dimTime, 3600, "hr", "hour", "hours"),
		def("d", "day", "time", dimTime, 86400, "day", "days"),
		def("wk", "week", "time", dimTime, 7*86400, "week", "weeks"),
		def("yr", "julian year", "time", dimTime, 365.25*86400, "year", "years"),

		// Electric current
		def("A", "ampere", "current", dimCurrent, 1, "amp", "ampere", "amps"),
		def("mA", "milliampere", "current", dimCurrent, 1e-3, "milliampere"),
		def("uA", "microampere", "current", dimCurrent, 1e-6, "µA", "microampere"),

		// Temperature
		temperature("K", "kelvin", 1, 0, "kelvin"),
		temperature("C", "degree Celsius", 1, 273.15, "degC", "°C", "celsius"),
		temperature("F", "degree Fahrenheit", 5.0/9.0, 459.67, "degF", "°F", "fahrenheit"),
		temperature("R", "degree Rankine", 5.0/9.0, 0, "degR", "°R", "rankine"),

		// Amount of substance
		def("mol", "mole", "amount", dimAmount, 1, "mole", "moles"),
		def("mmol", "millimole", "amount", dimAmount, 1e-3, "millimole"),
		def("kmol", "kilomole", "amount", dimAmount, 1e3, "kilomole"),

		// Luminous intensity
		def("cd", "candela", "luminous intensity", dimLuminous, 1, "candela"),
		def("lm", "lumen", "luminous flux", dimLuminous, 1, "lumen"),
		def("lx", "lux", "illuminance", dimIlluminance, 1, "lux"),

		// Plane and solid angle (dimensionless)
		def("rad", "radian", "angle", Dimensionless, 1, "radian", "radians"),
		def("deg", "degree", "angle", Dimensionless, math.Pi/180, "°", "degree", "degrees"),
		def("arcmin", "arcminute", "angle", Dimensionless, math.Pi/(180*60), "arcminute"),
		def("arcsec", "arcsecond", "angle", Dimensionless, math.Pi/(180*3600), "arcsecond"),
		def("sr", "steradian", "angle", Dimensionless, 1, "steradian"),

		// Frequency
		def("Hz", "hertz", "frequency", dimFrequency, 1, "hertz"),
		def("kHz", "kilohertz", "frequency", dimFrequency, 1e3, "kilohertz"),
		def("MHz", "megahertz", "frequency", dimFrequency, 1e6, "megahertz"),
		def("GHz", "gigahertz", "frequency", dimFrequency, 1e9, "gigahertz"),
		def("rpm", "revolutions per minute", "frequency", dimFrequency, 1.0/60),
		def("Bq", "becquerel", "radioactivity", dimFrequency, 1, "becquerel"),

		// Area
		def("ha", "hectare", "area", dimArea, 1e4, "hectare"),
		def("acre", "acre", "area", dimArea, 4046.8564224, "acres"),

		// Volume
		def("L", "liter", "volume", dimVolume, 1e-3, "l", "liter", "litre", "liters"),
		def("mL", "milliliter", "volume", dimVolume, 1e-6, "ml", "cc", "milliliter"),
		def("uL", "microliter", "volume", dimVolume, 1e-9, "µL", "microliter"),
		def("gal", "US gallon", "volume", dimVolume, 3.785411784e-3, "gallon", "gallons"),

		// Velocity
		def("mph", "mile per hour", "velocity", dimVelocity, 0.44704),
		def("kph", "kilometer per hour", "velocity", dimVelocity, 1000.0/3600, "kmh"),
		def("kn", "knot", "velocity", dimVelocity, 1852.0/3600, "knot", "knots", "kt"),

		// Acceleration
		def("gn", "standard gravity", "acceleration", dimAcceleration, standardG, "g0", "standard_gravity"),
		def("Gal", "gal", "acceleration", dimAcceleration, 1e-2, "galileo"),

		// Force
		def("N", "newton", "force", dimForce, 1, "newton", "newtons"),
		def("kN", "kilonewton", "force", dimForce, 1e3, "kilonewton"),
		def("dyn", "dyne", "force", dimForce, 1e-5, "dyne"),
		def("lbf", "pound-force", "force", dimForce, poundMass*standardG, "pound_force"),
		def("kgf", "kilogram-force", "force", dimForce, standardG, "kilogram_force"),

		// Energy
		def("J", "joule", "energy", dimEnergy, 1, "joule", "joules"),
		def("kJ", "kilojoule", "energy", dimEnergy, 1e3, "kilojoule"),
		def("MJ", "megajoule", "energy", dimEnergy, 1e6, "megajoule"),
		def("cal", "calorie", "energy", dimEnergy, 4.184, "calorie", "calories"),
		def("kcal", "kilocalorie", "energy", dimEnergy, 4184, "kilocalorie"),
		def("eV", "electronvolt", "energy", dimEnergy, electronVolt, "electronvolt"),
		def("keV", "kiloelectronvolt", "energy", dimEnergy, 1e3*electronVolt),
		def("MeV", "megaelectronvolt", "energy", dimEnergy, 1e6*electronVolt),
		def("GeV", "gigaelectronvolt", "energy", dimEnergy, 1e9*electronVolt),
		def("Wh", "watt-hour", "energy", dimEnergy, 3600),
		def("kWh", "kilowatt-hour", "energy", dimEnergy, 3.6e6),
		def("erg", "erg", "energy", dimEnergy, 1e-7, "ergs"),
		def("BTU", "British thermal unit", "energy", dimEnergy, 1055.05585262),

		// Power
		def("W", "watt", "power", dimPower, 1, "watt", "watts"),
		def("mW", "milliwatt", "power", dimPower, 1e-3, "milliwatt"),
		def("kW", "kilowatt", "power", dimPower, 1e3, "kilowatt"),
		def("MW", "megawatt", "power", dimPower, 1e6, "megawatt"),
		def("hp", "mechanical horsepower", "power", dimPower, 745.69987158227022, "horsepower"),

		// Pressure
		def("Pa", "pascal", "pressure", dimPressure, 1, "pascal"),
		def("hPa", "hectopascal", "pressure", dimPressure, 1e2, "hectopascal"),
		def("kPa", "kilopascal", "pressure", dimPressure, 1e3, "kilopascal"),
		def("MPa", "megapascal", "pressure", dimPressure, 1e6, "megapascal"),
		def("bar", "bar", "pressure", dimPressure, 1e5, "bars"),
		def("mbar", "millibar", "pressure", dimPressure, 1e2, "millibar"),
		def("atm", "standard atmosphere", "pressure", dimPressure, 101325, "atmosphere"),
		def("psi", "pound per square inch", "pressure", dimPressure, poundMass*standardG/(inch*inch)),
		def("mmHg", "millimeter of mercury", "pressure", dimPressure, 133.322387415),
		def("torr", "torr", "pressure", dimPressure, 101325.0/760, "Torr"),

		// Electromagnetism
		def("coulomb", "coulomb", "charge", dimCharge, 1, "coulombs"),
		def("mAh", "milliampere-hour", "charge", dimCharge, 3.6),
		def("V", "volt", "voltage", dimVoltage, 1, "volt", "volts"),
		def("mV", "millivolt", "voltage", dimVoltage, 1e-3, "millivolt"),
		def("kV", "kilovolt", "voltage", dimVoltage, 1e3, "kilovolt"),
		def("ohm", "ohm", "resistance", dimResistance, 1, "Ω", "ohms"),
		def("kohm", "kiloohm", "resistance", dimResistance, 1e3, "kΩ", "kiloohm"),
		def("Mohm", "megaohm", "resistance", dimResistance, 1e6, "MΩ", "megaohm"),
		def("farad", "farad", "capacitance", dimCapacitance, 1, "farads"),
		def("uF", "microfarad", "capacitance", dimCapacitance, 1e-6, "µF", "microfarad"),
		def("nF", "nanofarad", "capacitance", dimCapacitance, 1e-9, "nanofarad"),
		def("pF", "picofarad", "capacitance", dimCapacitance, 1e-12, "picofarad"),
		def("H", "henry", "inductance", dimInductance, 1, "henry"),
		def("mH", "millihenry", "inductance", dimInductance, 1e-3, "millihenry"),
		def("T", "tesla", "magnetic field", dimMagField, 1, "tesla"),
		def("gauss", "gauss", "magnetic field", dimMagField, 1e-4),
		def("Wb", "weber", "magnetic flux", dimMagFlux, 1, "weber"),
	}
}
