package system

import (
	"starforge-server/internal/galaxy"
	"starforge-server/internal/terrain"
)

// Moon orbits a planet. Properties are Earth-relative like its parent's.
type Moon struct {
	Index        int     `json:"index"`
	Name         string  `json:"name"`
	RadiusEarths float64 `json:"radius_earths"`
	OrbitRadii   float64 `json:"orbit_radii"` // in parent planetary radii
}

// OrbitalBody is a planet in a system. Belts are carried separately.
type OrbitalBody struct {
	Index        int                `json:"index"`
	Name         string             `json:"name"`
	Seed         int64              `json:"seed"`
	Type         terrain.PlanetType `json:"type"`
	OrbitAU      float64            `json:"orbit_au"`
	RadiusEarths float64            `json:"radius_earths"`
	MassEarths   float64            `json:"mass_earths"`
	GravityG     float64            `json:"gravity_g"`
	PeriodDays   float64            `json:"period_days"`
	Moons        []Moon             `json:"moons"`
	Population   int64              `json:"population"`
	TechLevel    int                `json:"tech_level"`
}

// Belt is an asteroid belt occupying an annulus of the system plane.
type Belt struct {
	OrbitAU float64 `json:"orbit_au"`
	WidthAU float64 `json:"width_au"`
	Density float64 `json:"density"`
}

// System is the fully generated orbital layout around one star.
type System struct {
	Seed           int64         `json:"seed"`
	Star           galaxy.Star   `json:"star"`
	HabitableInAU  float64       `json:"habitable_in_au"`
	HabitableOutAU float64       `json:"habitable_out_au"`
	FrostLineAU    float64       `json:"frost_line_au"`
	Bodies         []OrbitalBody `json:"bodies"`
	Belts          []Belt        `json:"belts"`
}
