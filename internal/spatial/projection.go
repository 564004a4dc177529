package spatial

import "math"

// Lambert conformal conic (two standard parallels) on the GRS80 ellipsoid,
// inverse direction only: projected state-plane coordinates in US survey feet
// back to geographic degrees.
type LambertProjection struct {
	a    float64 // semi-major axis, meters
	e    float64 // first eccentricity
	n    float64
	f    float64
	rho0 float64
	lon0 float64 // radians
	fe   float64 // false easting, meters
	fn   float64 // false northing, meters
}

const (
	grs80SemiMajor  = 6378137.0
	grs80InvFlatten = 298.257222101

	// US survey foot, exact.
	metersPerSurveyFoot = 1200.0 / 3937.0
)

// NewCaliforniaZone5 returns the NAD83 / California zone 5 projection
// (EPSG 2229), the state-plane system the raw citation coordinates use.
func NewCaliforniaZone5() *LambertProjection {
	return newLambert(lambertParams{
		phi1: dms(34, 2),  // lower standard parallel
		phi2: dms(35, 28), // upper standard parallel
		phi0: dms(33, 30), // latitude of false origin
		lon0: -118.0,      // longitude of false origin
		feFt: 6561666.667, // false easting, survey feet (2 000 000 m)
		fnFt: 1640416.667, // false northing, survey feet (500 000 m)
	})
}

type lambertParams struct {
	phi1, phi2, phi0, lon0 float64 // degrees
	feFt, fnFt             float64 // survey feet
}

func newLambert(p lambertParams) *LambertProjection {
	flat := 1.0 / grs80InvFlatten
	e2 := 2*flat - flat*flat
	e := math.Sqrt(e2)

	phi1 := p.phi1 * math.Pi / 180
	phi2 := p.phi2 * math.Pi / 180
	phi0 := p.phi0 * math.Pi / 180

	m1 := lambertM(phi1, e)
	m2 := lambertM(phi2, e)
	t0 := lambertT(phi0, e)
	t1 := lambertT(phi1, e)
	t2 := lambertT(phi2, e)

	n := (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	f := m1 / (n * math.Pow(t1, n))

	return &LambertProjection{
		a:    grs80SemiMajor,
		e:    e,
		n:    n,
		f:    f,
		rho0: grs80SemiMajor * f * math.Pow(t0, n),
		lon0: p.lon0 * math.Pi / 180,
		fe:   p.feFt * metersPerSurveyFoot,
		fn:   p.fnFt * metersPerSurveyFoot,
	}
}

// Inverse maps projected survey-foot coordinates to (lon, lat) degrees.
func (p *LambertProjection) Inverse(eastingFt, northingFt float64) (lon, lat float64) {
	x := eastingFt*metersPerSurveyFoot - p.fe
	y := northingFt*metersPerSurveyFoot - p.fn

	rho := math.Sqrt(x*x + (p.rho0-y)*(p.rho0-y))
	if p.n < 0 {
		rho = -rho
	}
	t := math.Pow(rho/(p.a*p.f), 1/p.n)
	theta := math.Atan2(x, p.rho0-y)

	lonRad := theta/p.n + p.lon0
	latRad := p.latFromT(t)
	return lonRad * 180 / math.Pi, latRad * 180 / math.Pi
}

// InverseAll is the vector form over coordinate slices.
func (p *LambertProjection) InverseAll(eastingsFt, northingsFt []float64) (lons, lats []float64) {
	lons = make([]float64, len(eastingsFt))
	lats = make([]float64, len(eastingsFt))
	for i := range eastingsFt {
		lons[i], lats[i] = p.Inverse(eastingsFt[i], northingsFt[i])
	}
	return lons, lats
}

// latFromT solves t(phi) = t for phi by fixed-point iteration.
func (p *LambertProjection) latFromT(t float64) float64 {
	phi := math.Pi/2 - 2*math.Atan(t)
	for i := 0; i < 15; i++ {
		es := p.e * math.Sin(phi)
		next := math.Pi/2 - 2*math.Atan(t*math.Pow((1-es)/(1+es), p.e/2))
		if math.Abs(next-phi) < 1e-12 {
			return next
		}
		phi = next
	}
	return phi
}

func lambertM(phi, e float64) float64 {
	s := math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-e*e*s*s)
}

func lambertT(phi, e float64) float64 {
	s := math.Sin(phi)
	return math.Tan(math.Pi/4-phi/2) / math.Pow((1-e*s)/(1+e*s), e/2)
}

func dms(deg, min float64) float64 {
	return deg + min/60
}
