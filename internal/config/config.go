package config

const (
	ScreenWidth  = 1024
	ScreenHeight = 768

	// Grid layout
	GridCols   = 7
	GridRows   = 9
	CellWidth  = 80
	CellHeight = 80
	CellGapX   = 5
	CellGapY   = 5

	// Shift register and particle capacity
	NRect     = GridCols * GridRows
	NParticle = NRect * 4
	BandWidth = 7

	PaletteSize  = 32
	PaletteModes = 3
	ShiftEvery   = 10

	// Effect parameters
	MaxDistortion   = 400.0
	BumpDivisor     = 80.0
	BumpMax         = 100.0
	BumpPulse       = 10.0
	BumpPulseDecay  = -0.1
	BumpRamp        = 0.5
	BumpEpsilon     = 0.001
	OrbitRadius     = 100.0
	OrbitSpeed      = 0.005
	BorderStep      = 0.001
	BorderCoverage  = 2.0 / 3.0
	JitterKick      = 3.0
	JitterDecay     = 0.95
	JitterEpsilon   = 0.01
	AlphaMax        = 255.0
	Gravity         = 0.01
	ParticleFloor   = 1000.0
	ParticleHalf    = 10.0
	HypnotizePeriod = 20

	// Font
	DefaultFont     = "bauhaus.ttf"
	DefaultFontSize = 20

	// Sound
	SampleRate = 44100
)

// Grid origin and nominal distortion center.
const (
	GridX   = (ScreenWidth - GridCols*CellWidth) / 2
	GridY   = (ScreenHeight - GridRows*CellHeight) / 2
	CenterX = GridCols*CellWidth/2 + GridX
	CenterY = GridRows*CellHeight/2 + GridY
)
