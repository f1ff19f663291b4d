package dal

// Constant columns the model was trained with. They pass through the
// feature engineer untouched.
const (
	CarID     = 1
	Symboling = 0.834146
)

// Record defines one row of raw user input
type Record struct {
	Brand          string `json:"brand" yaml:"brand"`
	Model          string `json:"model" yaml:"model"`
	FuelType       string `json:"fueltype,omitempty" yaml:"fueltype,omitempty"`
	Aspiration     string `json:"aspiration,omitempty" yaml:"aspiration,omitempty"`
	DoorNumber     string `json:"doornumber,omitempty" yaml:"doornumber,omitempty"`
	CarBody        string `json:"carbody,omitempty" yaml:"carbody,omitempty"`
	DriveWheel     string `json:"drivewheel,omitempty" yaml:"drivewheel,omitempty"`
	EngineLocation string `json:"enginelocation,omitempty" yaml:"enginelocation,omitempty"`
	EngineType     string `json:"enginetype,omitempty" yaml:"enginetype,omitempty"`
	CylinderNumber string `json:"cylindernumber,omitempty" yaml:"cylindernumber,omitempty"`
	FuelSystem     string `json:"fuelsystem,omitempty" yaml:"fuelsystem,omitempty"`

	WheelBase        float64 `json:"wheelbase" yaml:"wheelbase"`
	CarLength        float64 `json:"carlength" yaml:"carlength"`
	CarWidth         float64 `json:"carwidth" yaml:"carwidth"`
	CarHeight        float64 `json:"carheight" yaml:"carheight"`
	CurbWeight       float64 `json:"curbweight" yaml:"curbweight"`
	EngineSize       float64 `json:"enginesize" yaml:"enginesize"`
	BoreRatio        float64 `json:"boreratio" yaml:"boreratio"`
	Stroke           float64 `json:"stroke" yaml:"stroke"`
	CompressionRatio float64 `json:"compressionratio" yaml:"compressionratio"`
	HorsePower       float64 `json:"horsepower" yaml:"horsepower"`
	PeakRPM          float64 `json:"peakrpm" yaml:"peakrpm"`
	CityMPG          float64 `json:"citympg" yaml:"citympg"`
	HighwayMPG       float64 `json:"highwaympg" yaml:"highwaympg"`
}

// DefaultRecord returns the record the form starts out with
func DefaultRecord() Record {
	return Record{
		FuelType:         "gas",
		Aspiration:       "std",
		DoorNumber:       "two",
		CarBody:          "sedan",
		DriveWheel:       "fwd",
		EngineLocation:   "front",
		EngineType:       "dohc",
		CylinderNumber:   "four",
		FuelSystem:       "mpfi",
		WheelBase:        100,
		CarLength:        180,
		CarWidth:         70,
		CarHeight:        50,
		CurbWeight:       2000,
		EngineSize:       150,
		BoreRatio:        3.5,
		Stroke:           2.8,
		CompressionRatio: 9,
		HorsePower:       100,
		PeakRPM:          5000,
		CityMPG:          25,
		HighwayMPG:       30,
	}
}

// Categorical returns the string value of a categorical column by name.
func (r Record) Categorical(name string) (string, bool) {
	switch name {
	case "brand":
		return r.Brand, true
	case "model":
		return r.Model, true
	case "fueltype":
		return r.FuelType, true
	case "aspiration":
		return r.Aspiration, true
	case "doornumber":
		return r.DoorNumber, true
	case "carbody":
		return r.CarBody, true
	case "drivewheel":
		return r.DriveWheel, true
	case "enginelocation":
		return r.EngineLocation, true
	case "enginetype":
		return r.EngineType, true
	case "cylindernumber":
		return r.CylinderNumber, true
	case "fuelsystem":
		return r.FuelSystem, true
	}
	return "", false
}

// Numeric returns the value of a numeric column by name. The constant
// columns car_ID and symboling are included.
func (r Record) Numeric(name string) (float64, bool) {
	switch name {
	case "car_ID":
		return CarID, true
	case "symboling":
		return Symboling, true
	case "wheelbase":
		return r.WheelBase, true
	case "carlength":
		return r.CarLength, true
	case "carwidth":
		return r.CarWidth, true
	case "carheight":
		return r.CarHeight, true
	case "curbweight":
		return r.CurbWeight, true
	case "enginesize":
		return r.EngineSize, true
	case "boreratio":
		return r.BoreRatio, true
	case "stroke":
		return r.Stroke, true
	case "compressionratio":
		return r.CompressionRatio, true
	case "horsepower":
		return r.HorsePower, true
	case "peakrpm":
		return r.PeakRPM, true
	case "citympg":
		return r.CityMPG, true
	case "highwaympg":
		return r.HighwayMPG, true
	}
	return 0, false
}

// SetCategorical sets a categorical column by name.
func (r *Record) SetCategorical(name, value string) bool {
	switch name {
	case "brand":
		r.Brand = value
	case "model":
		r.Model = value
	case "fueltype":
		r.FuelType = value
	case "aspiration":
		r.Aspiration = value
	case "doornumber":
		r.DoorNumber = value
	case "carbody":
		r.CarBody = value
	case "drivewheel":
		r.DriveWheel = value
	case "enginelocation":
		r.EngineLocation = value
	case "enginetype":
		r.EngineType = value
	case "cylindernumber":
		r.CylinderNumber = value
	case "fuelsystem":
		r.FuelSystem = value
	default:
		return false
	}
	return true
}

// SetNumeric sets a measured numeric column by name. The constant columns
// cannot be set.
func (r *Record) SetNumeric(name string, value float64) bool {
	switch name {
	case "wheelbase":
		r.WheelBase = value
	case "carlength":
		r.CarLength = value
	case "carwidth":
		r.CarWidth = value
	case "carheight":
		r.CarHeight = value
	case "curbweight":
		r.CurbWeight = value
	case "enginesize":
		r.EngineSize = value
	case "boreratio":
		r.BoreRatio = value
	case "stroke":
		r.Stroke = value
	case "compressionratio":
		r.CompressionRatio = value
	case "horsepower":
		r.HorsePower = value
	case "peakrpm":
		r.PeakRPM = value
	case "citympg":
		r.CityMPG = value
	case "highwaympg":
		r.HighwayMPG = value
	default:
		return false
	}
	return true
}

// PredictionResponse defines an HTTP response struct
type PredictionResponse struct {
	RequestID string         `json:"request_id"`
	Price     float64        `json:"price"`
	Variant   string         `json:"variant"`
	Codes     map[string]int `json:"codes,omitempty"`
	Fallbacks []string       `json:"fallbacks,omitempty"`
}

// ErrorResponse defines an HTTP error body
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}
