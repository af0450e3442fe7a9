/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of HPXDEFAULTS project.
 *
 * HPXDEFAULTS is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package defaults

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/hvac_perf"
	"github.com/antst/hpxdefaults/internal/lookup"
	"github.com/antst/hpxdefaults/internal/panel"
	"github.com/antst/hpxdefaults/internal/sizing"
	"github.com/antst/hpxdefaults/internal/weather"
)

func denver(t *testing.T) *weather.Weather {
	t.Helper()
	w, err := weather.LoadFile("../weather/testdata/denver.yaml")
	require.NoError(t, err)
	return w
}

// newEngine returns an engine over b that considers the given passes done.
func newEngine(t *testing.T, b *hpxml.Building, done ...pass) *engine {
	t.Helper()
	e := &engine{
		hdr:   &hpxml.Header{},
		b:     b,
		w:     denver(t),
		cache: lookup.New(nil),
		eri:   calc.ERILatest,
		store: hvac_perf.NewStore(),
		diag:  &Diagnostics{},
	}
	for _, p := range done {
		e.done.add(p)
	}
	return e
}

func wall(id string, azimuth int) *hpxml.Wall {
	return &hpxml.Wall{
		Surface: hpxml.Surface{
			ID:                 id,
			InteriorAdjacentTo: hpxml.LocationConditionedSpace,
			ExteriorAdjacentTo: hpxml.LocationOutside,
			Area:               hpxml.Some(400.0),
			Azimuth:            hpxml.Some(azimuth),
		},
		WallType:    hpxml.WallWoodStud,
		InsulationR: 13,
	}
}

// house is a 1500 ft2 slab-on-grade ranch under a vented attic, heated by
// a ducted gas furnace.
func house() *hpxml.Building {
	b := &hpxml.Building{ID: "MyBuilding"}
	b.Construction = hpxml.BuildingConstruction{
		YearBuilt:                 hpxml.Some(1995),
		NumberOfConditionedFloors: 1,
		NumberOfFloorsAboveGrade:  1,
		NumberOfBedrooms:          3,
		ConditionedFloorArea:      1500,
	}
	enc := &b.Enclosure
	enc.Roofs = []*hpxml.Roof{{
		Surface: hpxml.Surface{
			ID:                 "Roof1",
			InteriorAdjacentTo: hpxml.LocationAtticVented,
			ExteriorAdjacentTo: hpxml.LocationOutside,
			Area:               hpxml.Some(1700.0),
			Azimuth:            hpxml.Some(180),
		},
		Pitch:       6,
		InsulationR: 2.3,
	}}
	enc.Walls = []*hpxml.Wall{wall("Wall1", 180), wall("Wall2", 0)}
	enc.Floors = []*hpxml.Floor{{
		Surface: hpxml.Surface{
			ID:                 "Ceiling1",
			InteriorAdjacentTo: hpxml.LocationConditionedSpace,
			ExteriorAdjacentTo: hpxml.LocationAtticVented,
			Area:               hpxml.Some(1500.0),
		},
		InsulationR: 39,
	}}
	enc.Slabs = []*hpxml.Slab{{
		ID:                 "Slab1",
		InteriorAdjacentTo: hpxml.LocationConditionedSpace,
		Area:               1500,
		ExposedPerimeter:   160,
	}}
	enc.Windows = []*hpxml.Window{{
		Fenestration: hpxml.Fenestration{
			ID:          "Window1",
			Area:        60,
			FrameType:   hpxml.FrameAluminum,
			GlassLayers: hpxml.GlassDoublePane,
		},
		AttachedToWall: "Wall1",
	}}

	b.Systems.HVACDistributions = []*hpxml.HVACDistribution{{
		ID:                     "HVACDistribution1",
		DistributionSystemType: hpxml.DistributionAir,
		Ducts: []*hpxml.Duct{
			{DuctType: hpxml.DuctSupply, InsulationR: hpxml.Some(6.0)},
			{DuctType: hpxml.DuctReturn, InsulationR: hpxml.Some(6.0)},
		},
	}}
	b.Systems.HeatingSystems = []*hpxml.HeatingSystem{{
		HVACCommon:        hpxml.HVACCommon{ID: "HeatingSystem1", DistributionSystem: "HVACDistribution1"},
		HeatingSystemType: hpxml.HeatingFurnace,
		Fuel:              hpxml.FuelNaturalGas,
		AFUE:              hpxml.Some(0.92),
		FractionHeatLoad:  1,
	}}
	b.Appliances.CookingRanges = []*hpxml.CookingRange{{
		ApplianceCommon: hpxml.ApplianceCommon{ID: "Range1"},
		FuelType:        hpxml.FuelElectricity,
	}}
	b.Appliances.Refrigerators = []*hpxml.Refrigerator{{ApplianceCommon: hpxml.ApplianceCommon{ID: "Refrigerator1"}}}
	return b
}

func TestSite_SoilDefaults(t *testing.T) {
	b := house()
	require.NoError(t, newEngine(t, b).applySite())

	s := b.Site
	assert.Equal(t, hpxml.SoilUnknown, s.SoilType.Val())
	assert.True(t, s.SoilType.IsDefaulted())
	assert.Equal(t, hpxml.MoistureMixed, s.MoistureType.Val())
	assert.Equal(t, calc.GroundConductivity(hpxml.SoilUnknown, hpxml.MoistureMixed), s.GroundConductivity.Val())
	assert.Equal(t, calc.GroundDiffusivity(s.GroundConductivity.Val()), s.GroundDiffusivity.Val())
	assert.True(t, s.GroundDiffusivity.IsDefaulted())
}

func TestOccupancy_Residents(t *testing.T) {
	tests := []struct {
		name     string
		calc     hpxml.Opt[hpxml.OccupancyCalculationType]
		facility hpxml.Opt[hpxml.ResidentialFacilityType]
		want     float64
	}{
		{"asset", hpxml.Some(hpxml.OccupancyCalculationAsset), hpxml.Opt[hpxml.ResidentialFacilityType]{}, 3},
		{"unset is asset", hpxml.Opt[hpxml.OccupancyCalculationType]{}, hpxml.Opt[hpxml.ResidentialFacilityType]{}, 3},
		{"operational detached", hpxml.Some(hpxml.OccupancyCalculationOperational), hpxml.Opt[hpxml.ResidentialFacilityType]{}, 2.65},
		{"operational apartment", hpxml.Some(hpxml.OccupancyCalculationOperational), hpxml.Some(hpxml.FacilityApartment), 3.38},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := house()
			b.Construction.ResidentialFacilityType = tt.facility
			e := newEngine(t, b)
			e.hdr.OccupancyCalculationType = tt.calc
			require.NoError(t, e.applyOccupancy())

			assert.Equal(t, tt.want, b.Occupancy.NumberOfResidents.Val())
			assert.True(t, b.Occupancy.NumberOfResidents.IsDefaulted())
			assert.InDelta(t, 3.0, e.nbeds(), 0.02)
		})
	}
}

func TestSite_KeepsUserConductivity(t *testing.T) {
	b := house()
	b.Site.GroundConductivity = hpxml.Some(2.0)
	require.NoError(t, newEngine(t, b).applySite())

	assert.Equal(t, 2.0, b.Site.GroundConductivity.Val())
	assert.False(t, b.Site.GroundConductivity.IsDefaulted())
	assert.Equal(t, calc.GroundDiffusivity(2.0), b.Site.GroundDiffusivity.Val())
}

func TestWindows_LookupFromConstruction(t *testing.T) {
	b := house()
	require.NoError(t, newEngine(t, b, passWalls, passFoundationWalls).applyWindows())

	w := b.Enclosure.Windows[0]
	assert.True(t, w.ThermalBreak.Val())
	assert.True(t, w.ThermalBreak.IsDefaulted())
	assert.Equal(t, 0.60, w.UFactor.Val())
	assert.Equal(t, 0.67, w.SHGC.Val())
	assert.True(t, w.UFactor.IsDefaulted())
	assert.Equal(t, 180, w.Azimuth.Val())
	assert.Equal(t, hpxml.OrientationSouth, w.Orientation.Val())
	assert.Equal(t, fractionOperable, w.FractionOperable.Val())
	assert.Equal(t, 1.0, w.ExteriorFactorSummer.Val())
}

func TestWindows_SinglePaneMetal(t *testing.T) {
	b := house()
	w := b.Enclosure.Windows[0]
	w.GlassLayers = hpxml.GlassSinglePane
	require.NoError(t, newEngine(t, b, passWalls, passFoundationWalls).applyWindows())

	assert.False(t, w.ThermalBreak.Val())
	assert.True(t, w.ThermalBreak.IsDefaulted())
	assert.Equal(t, hpxml.GlassClear, w.GlassType.Val())
	assert.True(t, w.GlassType.IsDefaulted())
	assert.False(t, w.GasFill.IsSet())
	assert.Equal(t, 1.27, w.UFactor.Val())
	assert.Equal(t, 0.75, w.SHGC.Val())
}

func TestWindows_UserPerformanceSkipsLookup(t *testing.T) {
	b := house()
	w := b.Enclosure.Windows[0]
	w.UFactor = hpxml.Some(0.30)
	w.SHGC = hpxml.Some(0.40)
	w.Orientation = hpxml.Some(hpxml.OrientationEast)
	require.NoError(t, newEngine(t, b, passWalls, passFoundationWalls).applyWindows())

	assert.False(t, w.ThermalBreak.IsSet())
	assert.False(t, w.GasFill.IsSet())
	assert.Equal(t, 0.30, w.UFactor.Val())
	assert.Equal(t, 90, w.Azimuth.Val())
	assert.True(t, w.Azimuth.IsDefaulted())
}

func TestWindows_RequireWalls(t *testing.T) {
	err := newEngine(t, house()).applyWindows()
	assert.ErrorIs(t, err, ErrPassOrder)
	assert.False(t, IsConfigurationError(err))
}

func TestAttics_AddsMissingRecord(t *testing.T) {
	b := house()
	require.NoError(t, newEngine(t, b).applyAttics())

	require.Len(t, b.Enclosure.Attics, 1)
	a := b.Enclosure.Attics[0]
	assert.Equal(t, "VentedAttic", a.ID)
	assert.Equal(t, hpxml.AtticVented, a.AtticType)
	assert.Equal(t, ventedAtticSLA, a.VentedSLA.Val())
	assert.True(t, a.VentedSLA.IsDefaulted())
}

func TestAttics_Conflicts(t *testing.T) {
	b := house()
	b.Enclosure.Attics = []*hpxml.Attic{
		{ID: "A1", AtticType: hpxml.AtticVented, VentedSLA: hpxml.Some(0.003)},
		{ID: "A2", AtticType: hpxml.AtticVented, VentedSLA: hpxml.Some(0.006)},
	}
	err := newEngine(t, b).applyAttics()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	b.Enclosure.Attics = []*hpxml.Attic{
		{ID: "A1", AtticType: hpxml.AtticVented, VentedSLA: hpxml.Some(0.003)},
		{ID: "A2", AtticType: hpxml.AtticVented, VentedACH: hpxml.Some(2.0)},
	}
	err = newEngine(t, b).applyAttics()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestAttics_SpreadsUserValue(t *testing.T) {
	b := house()
	b.Enclosure.Attics = []*hpxml.Attic{
		{ID: "A1", AtticType: hpxml.AtticVented, VentedSLA: hpxml.Some(0.004)},
		{ID: "A2", AtticType: hpxml.AtticVented},
	}
	require.NoError(t, newEngine(t, b).applyAttics())
	assert.Equal(t, 0.004, b.Enclosure.Attics[1].VentedSLA.Val())
	assert.True(t, b.Enclosure.Attics[1].VentedSLA.IsDefaulted())
}

func TestEnclosure_UniformGroups(t *testing.T) {
	attics := func(at hpxml.AtticType, set func(a *hpxml.Attic, conflict bool)) func(*hpxml.Building, bool) {
		return func(b *hpxml.Building, conflict bool) {
			a1, a2 := &hpxml.Attic{ID: "A1", AtticType: at}, &hpxml.Attic{ID: "A2", AtticType: at}
			set(a1, false)
			if conflict {
				set(a2, true)
			}
			b.Enclosure.Attics = []*hpxml.Attic{a1, a2}
		}
	}
	foundations := func(ft hpxml.FoundationType, set func(f *hpxml.Foundation, conflict bool)) func(*hpxml.Building, bool) {
		return func(b *hpxml.Building, conflict bool) {
			f1, f2 := &hpxml.Foundation{ID: "F1", FoundationType: ft}, &hpxml.Foundation{ID: "F2", FoundationType: ft}
			set(f1, false)
			if conflict {
				set(f2, true)
			}
			b.Enclosure.Foundations = []*hpxml.Foundation{f1, f2}
		}
	}
	flag := func(o *hpxml.Opt[bool], conflict bool) { o.Set(!conflict) }
	tests := []struct {
		name  string
		pass  func(e *engine) error
		add   func(b *hpxml.Building, conflict bool)
		value func(b *hpxml.Building, i int) (any, bool)
		want  any
	}{
		{
			name: "vented attic",
			pass: (*engine).applyAttics,
			add: attics(hpxml.AtticVented, func(a *hpxml.Attic, conflict bool) {
				a.VentedSLA.Set(map[bool]float64{false: 0.003, true: 0.006}[conflict])
			}),
			value: func(b *hpxml.Building, i int) (any, bool) {
				return b.Enclosure.Attics[i].VentedSLA.Val(), b.Enclosure.Attics[i].VentedSLA.IsDefaulted()
			},
			want: 0.003,
		},
		{
			name: "unvented attic",
			pass: (*engine).applyAttics,
			add:  attics(hpxml.AtticUnvented, func(a *hpxml.Attic, conflict bool) { flag(&a.WithinInfiltrationVolume, conflict) }),
			value: func(b *hpxml.Building, i int) (any, bool) {
				return b.Enclosure.Attics[i].WithinInfiltrationVolume.Val(), b.Enclosure.Attics[i].WithinInfiltrationVolume.IsDefaulted()
			},
			want: true,
		},
		{
			name: "vented crawlspace",
			pass: (*engine).applyFoundations,
			add: foundations(hpxml.FoundationVentedCrawlspace, func(f *hpxml.Foundation, conflict bool) {
				f.VentedSLA.Set(map[bool]float64{false: 0.01, true: 0.02}[conflict])
			}),
			value: func(b *hpxml.Building, i int) (any, bool) {
				return b.Enclosure.Foundations[i].VentedSLA.Val(), b.Enclosure.Foundations[i].VentedSLA.IsDefaulted()
			},
			want: 0.01,
		},
		{
			name: "unvented crawlspace",
			pass: (*engine).applyFoundations,
			add:  foundations(hpxml.FoundationUnventedCrawlspace, func(f *hpxml.Foundation, conflict bool) { flag(&f.WithinInfiltrationVolume, conflict) }),
			value: func(b *hpxml.Building, i int) (any, bool) {
				return b.Enclosure.Foundations[i].WithinInfiltrationVolume.Val(), b.Enclosure.Foundations[i].WithinInfiltrationVolume.IsDefaulted()
			},
			want: true,
		},
		{
			name: "unconditioned basement",
			pass: (*engine).applyFoundations,
			add:  foundations(hpxml.FoundationUnconditionedBasement, func(f *hpxml.Foundation, conflict bool) { flag(&f.WithinInfiltrationVolume, conflict) }),
			value: func(b *hpxml.Building, i int) (any, bool) {
				return b.Enclosure.Foundations[i].WithinInfiltrationVolume.Val(), b.Enclosure.Foundations[i].WithinInfiltrationVolume.IsDefaulted()
			},
			want: true,
		},
		{
			name: "belly and wing",
			pass: (*engine).applyFoundations,
			add: foundations(hpxml.FoundationBellyAndWing, func(f *hpxml.Foundation, conflict bool) {
				f.BellySkirtPresent.Set(conflict)
			}),
			value: func(b *hpxml.Building, i int) (any, bool) {
				return b.Enclosure.Foundations[i].BellySkirtPresent.Val(), b.Enclosure.Foundations[i].BellySkirtPresent.IsDefaulted()
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name+" spreads the user value", func(t *testing.T) {
			b := house()
			tt.add(b, false)
			require.NoError(t, tt.pass(newEngine(t, b)))
			v, defaulted := tt.value(b, 0)
			assert.Equal(t, tt.want, v)
			assert.False(t, defaulted)
			v, defaulted = tt.value(b, 1)
			assert.Equal(t, tt.want, v)
			assert.True(t, defaulted)
		})
		t.Run(tt.name+" conflicts", func(t *testing.T) {
			b := house()
			tt.add(b, true)
			err := tt.pass(newEngine(t, b))
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))
		})
	}
}

func TestManualJ_DistributeToSpaces(t *testing.T) {
	tests := []struct {
		name      string
		total     hpxml.Opt[float64]
		living    hpxml.Opt[float64]
		bedroom   hpxml.Opt[float64]
		wantTotal float64
		want      [2]float64
		warns     int
	}{
		{"by floor area", hpxml.Opt[float64]{}, hpxml.Opt[float64]{}, hpxml.Opt[float64]{}, 2400, [2]float64{1600, 800}, 0},
		{"rest of the user total", hpxml.Some(3000.0), hpxml.Some(1200.0), hpxml.Opt[float64]{}, 3000, [2]float64{1200, 1800}, 0},
		{"sum of user spaces", hpxml.Opt[float64]{}, hpxml.Some(1000.0), hpxml.Some(500.0), 1500, [2]float64{1000, 500}, 0},
		{"user spaces below the total", hpxml.Some(2400.0), hpxml.Some(1000.0), hpxml.Some(1000.0), 2000, [2]float64{1000, 1000}, 1},
		{"user space above the total", hpxml.Some(2400.0), hpxml.Some(3000.0), hpxml.Opt[float64]{}, 3000, [2]float64{3000, 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := house()
			b.Zones = []*hpxml.Zone{{ID: "Zone1", ZoneType: hpxml.ZoneConditioned, Spaces: []*hpxml.Space{
				{ID: "Living", FloorArea: 1000, InternalLoadsSensible: tt.living},
				{ID: "Bedroom", FloorArea: 500, InternalLoadsSensible: tt.bedroom},
			}}}
			e := newEngine(t, b)
			total := tt.total
			e.distributeToSpaces("internal_loads_sensible", &total, 2400,
				func(s *hpxml.Space) *hpxml.Opt[float64] { return &s.InternalLoadsSensible })

			assert.InDelta(t, tt.wantTotal, total.Val(), 0.01)
			for i, sp := range b.Zones[0].Spaces {
				assert.InDelta(t, tt.want[i], sp.InternalLoadsSensible.Val(), 0.01, sp.ID)
			}
			require.Len(t, e.diag.Warnings, tt.warns)
			if tt.warns > 0 {
				assert.Equal(t, "ManualJInputs", e.diag.Warnings[0].Entity)
				assert.Contains(t, e.diag.Warnings[0].Message, "does not match the sum over conditioned spaces")
				assert.True(t, total.IsDefaulted())
			}
		})
	}
}

func ductFractionSum(d *hpxml.HVACDistribution, side hpxml.DuctType) float64 {
	sum := 0.0
	for _, duct := range d.DuctsOfType(side) {
		sum += duct.FractionArea.Val()
	}
	return sum
}

func TestDucts_FractionsSumToOne(t *testing.T) {
	b := house()
	require.NoError(t, newEngine(t, b).applyDistribution())

	d := b.Systems.HVACDistributions[0]
	assert.Equal(t, 1500.0, d.ConditionedFloorAreaServed.Val())
	for _, side := range []hpxml.DuctType{hpxml.DuctSupply, hpxml.DuctReturn} {
		assert.InDelta(t, 1.0, ductFractionSum(d, side), ductFractionTolerance, side)
		for _, duct := range d.DuctsOfType(side) {
			assert.True(t, duct.Location.IsSet())
			assert.Greater(t, duct.SurfaceArea.Val(), 0.0)
			assert.True(t, duct.EffectiveR.IsSet())
		}
	}
}

func TestDucts_UserFractionsMustSumToOne(t *testing.T) {
	b := house()
	b.Systems.HVACDistributions[0].Ducts = []*hpxml.Duct{
		{DuctType: hpxml.DuctSupply, Location: hpxml.Some(hpxml.LocationAtticVented), FractionArea: hpxml.Some(0.5)},
		{DuctType: hpxml.DuctSupply, Location: hpxml.Some(hpxml.LocationConditionedSpace), FractionArea: hpxml.Some(0.6)},
	}
	err := newEngine(t, b).applyDistribution()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestDucts_MixedLocations(t *testing.T) {
	b := house()
	b.Systems.HVACDistributions[0].Ducts = []*hpxml.Duct{
		{DuctType: hpxml.DuctSupply, Location: hpxml.Some(hpxml.LocationAtticVented)},
		{DuctType: hpxml.DuctSupply},
	}
	err := newEngine(t, b).applyDistribution()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestDucts_ManyDuctsBalanceRounding(t *testing.T) {
	for _, n := range []int{3, 6, 7, 9, 11} {
		t.Run(fmt.Sprintf("%d ducts", n), func(t *testing.T) {
			b := house()
			d := b.Systems.HVACDistributions[0]
			d.Ducts = nil
			for i := 0; i < n; i++ {
				d.Ducts = append(d.Ducts, &hpxml.Duct{
					ID:          fmt.Sprintf("Supply%d", i+1),
					DuctType:    hpxml.DuctSupply,
					Location:    hpxml.Some(hpxml.LocationAtticVented),
					SurfaceArea: hpxml.Some(100.0),
				})
			}
			require.NoError(t, newEngine(t, b).applyDistribution())
			assert.InDelta(t, 1.0, ductFractionSum(d, hpxml.DuctSupply), ductFractionTolerance)
			for _, duct := range d.Ducts {
				assert.True(t, duct.FractionArea.IsDefaulted())
			}

			// A second run keeps the balanced fractions.
			require.NoError(t, newEngine(t, b).applyDistribution())
			assert.InDelta(t, 1.0, ductFractionSum(d, hpxml.DuctSupply), ductFractionTolerance)
		})
	}
}

func TestDucts_UserFractionTolerance(t *testing.T) {
	tests := []struct {
		name  string
		fracs []float64
		ok    bool
	}{
		{"exact", []float64{0.6, 0.4}, true},
		{"within", []float64{0.6, 0.4008}, true},
		{"over", []float64{0.6, 0.402}, false},
		{"under", []float64{0.6, 0.398}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := house()
			d := b.Systems.HVACDistributions[0]
			d.Ducts = nil
			for _, f := range tt.fracs {
				d.Ducts = append(d.Ducts, &hpxml.Duct{
					DuctType:     hpxml.DuctSupply,
					Location:     hpxml.Some(hpxml.LocationAtticVented),
					FractionArea: hpxml.Some(f),
				})
			}
			err := newEngine(t, b).applyDistribution()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))
		})
	}
}

func TestDucts_NoUnconditionedSpace(t *testing.T) {
	b := house()
	b.Enclosure.Roofs[0].InteriorAdjacentTo = hpxml.LocationConditionedSpace
	b.Enclosure.Floors = nil
	b.Construction.NumberOfConditionedFloors = 2
	b.Construction.NumberOfFloorsAboveGrade = 2
	require.NoError(t, newEngine(t, b).applyDistribution())

	// The whole area stays on the given ducts, no secondary records appear.
	d := b.Systems.HVACDistributions[0]
	require.Len(t, d.Ducts, 2)
	for _, duct := range d.Ducts {
		assert.Equal(t, hpxml.LocationConditionedSpace, duct.Location.Val())
		assert.True(t, duct.Location.IsDefaulted())
		assert.Equal(t, 1.0, duct.FractionArea.Val())
	}
	assert.InDelta(t, 0.27*1500, d.DuctsOfType(hpxml.DuctSupply)[0].SurfaceArea.Val(), 0.01)
	assert.InDelta(t, 0.1*1500, d.DuctsOfType(hpxml.DuctReturn)[0].SurfaceArea.Val(), 0.01)
}

func TestDucts_ReturnRegistersNeedReturnDucts(t *testing.T) {
	b := house()
	d := b.Systems.HVACDistributions[0]
	d.Ducts = d.DuctsOfType(hpxml.DuctSupply)
	require.NoError(t, newEngine(t, b).applyDistribution())
	assert.False(t, d.NumberOfReturnRegisters.IsSet())
	assert.Empty(t, d.DuctsOfType(hpxml.DuctReturn))

	b = house()
	d = b.Systems.HVACDistributions[0]
	require.NoError(t, newEngine(t, b).applyDistribution())
	assert.Equal(t, 1, d.NumberOfReturnRegisters.Val())
	assert.True(t, d.NumberOfReturnRegisters.IsDefaulted())
}

func TestRefrigerators(t *testing.T) {
	t.Run("lone refrigerator is primary", func(t *testing.T) {
		b := house()
		require.NoError(t, newEngine(t, b, passConstruction, passFoundations).applyAppliances())

		r := b.Appliances.Refrigerators[0]
		assert.True(t, r.PrimaryIndicator.Val())
		assert.True(t, r.PrimaryIndicator.IsDefaulted())
		assert.Equal(t, calc.RefrigeratorKwh(3), r.RatedAnnualKwh.Val())
		assert.Equal(t, hpxml.LocationConditionedSpace, r.Location.Val())
		assert.True(t, r.WeekdayFractions.IsSet())
	})
	t.Run("extra refrigerator goes to the garage", func(t *testing.T) {
		b := house()
		b.Enclosure.Walls = append(b.Enclosure.Walls, &hpxml.Wall{Surface: hpxml.Surface{
			ID:                 "GarageWall",
			InteriorAdjacentTo: hpxml.LocationGarage,
			ExteriorAdjacentTo: hpxml.LocationOutside,
			Area:               hpxml.Some(200.0),
		}})
		b.Appliances.Refrigerators[0].PrimaryIndicator = hpxml.Some(true)
		b.Appliances.Refrigerators = append(b.Appliances.Refrigerators,
			&hpxml.Refrigerator{ApplianceCommon: hpxml.ApplianceCommon{ID: "Refrigerator2"}})
		require.NoError(t, newEngine(t, b, passConstruction, passFoundations).applyAppliances())

		r := b.Appliances.Refrigerators[1]
		assert.Equal(t, calc.ExtraRefrigeratorKwh, r.RatedAnnualKwh.Val())
		assert.Equal(t, hpxml.LocationGarage, r.Location.Val())
	})
	t.Run("no primary", func(t *testing.T) {
		b := house()
		b.Appliances.Refrigerators = append(b.Appliances.Refrigerators,
			&hpxml.Refrigerator{ApplianceCommon: hpxml.ApplianceCommon{ID: "Refrigerator2"}})
		err := newEngine(t, b, passConstruction, passFoundations).applyAppliances()
		require.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})
}

func TestCooking_InductionAndConvection(t *testing.T) {
	b := house()
	b.Appliances.Ovens = []*hpxml.Oven{{ID: "Oven1"}}
	require.NoError(t, newEngine(t, b, passConstruction, passFoundations).applyAppliances())

	r := b.Appliances.CookingRanges[0]
	assert.False(t, r.IsInduction.Val())
	assert.True(t, r.IsInduction.IsDefaulted())
	assert.Equal(t, hpxml.LocationConditionedSpace, r.Location.Val())
	assert.False(t, b.Appliances.Ovens[0].IsConvection.Val())
	assert.True(t, b.Appliances.Ovens[0].IsConvection.IsDefaulted())
}

func TestBatteries_CapacityChain(t *testing.T) {
	b := house()
	b.Systems.Batteries = []*hpxml.Battery{
		{ID: "Battery1"},
		{ID: "Battery2", BatteryCapacity: hpxml.BatteryCapacity{UsableCapacityKwh: hpxml.Some(18.0)}},
	}
	require.NoError(t, newEngine(t, b).applyBatteries())

	b1 := b.Systems.Batteries[0]
	assert.Equal(t, calc.BatteryNominalKwh, b1.NominalCapacityKwh.Val())
	assert.Equal(t, 9.0, b1.UsableCapacityKwh.Val())
	assert.Equal(t, 5000.0, b1.RatedPowerOutput.Val())
	assert.Equal(t, hpxml.LocationOutside, b1.Location.Val())
	assert.Equal(t, hpxml.BatteryLifetimeNone, b1.LifetimeModel.Val())

	b2 := b.Systems.Batteries[1]
	assert.Equal(t, 20.0, b2.NominalCapacityKwh.Val())
	assert.True(t, b2.NominalCapacityKwh.IsDefaulted())
	assert.False(t, b2.UsableCapacityKwh.IsDefaulted())
}

func TestVehicles(t *testing.T) {
	b := house()
	b.Systems.EVChargers = []*hpxml.EVCharger{{ID: "Charger1"}}
	b.Systems.Vehicles = []*hpxml.Vehicle{{ID: "EV1", VehicleType: "BatteryElectricVehicle", EVCharger: "Charger1"}}
	require.NoError(t, newEngine(t, b).applyVehicles())

	c := b.Systems.EVChargers[0]
	assert.Equal(t, calc.EVChargingLevel, c.ChargingLevel.Val())
	assert.Equal(t, calc.EVChargingPower, c.ChargingPower.Val())
	v := b.Systems.Vehicles[0]
	assert.Equal(t, calc.EVNominalKwh, v.NominalCapacityKwh.Val())
	assert.Equal(t, 80.0, v.UsableCapacityKwh.Val())
	assert.Equal(t, calc.EVMilesPerYear, v.MilesPerYear.Val())

	b.Systems.Vehicles[0].EVCharger = "Missing"
	err := newEngine(t, b).applyVehicles()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestPanel_WiresLoads(t *testing.T) {
	b := house()
	b.Systems.HeatingSystems = nil
	b.Appliances.CookingRanges = nil
	b.Appliances.Dishwashers = []*hpxml.Dishwasher{{ApplianceCommon: hpxml.ApplianceCommon{ID: "Dishwasher1"}}}
	b.Systems.EVChargers = []*hpxml.EVCharger{{ID: "Charger1", ChargingLevel: hpxml.Some(2)}}
	b.Systems.ElectricPanels = []*hpxml.ElectricPanel{{ID: "Panel1"}}
	e := newEngine(t, b, passSizing, passAppliances, passVehicles)
	require.NoError(t, e.applyPanels())

	p := b.Systems.ElectricPanels[0]
	assert.Equal(t, 240, p.Voltage.Val())
	assert.Equal(t, 200.0, p.MaxCurrentRating.Val())
	assert.Equal(t, []hpxml.PanelCalculationType{hpxml.PanelCalc2023LoadBased}, e.hdr.PanelCalculationTypes)

	power := map[hpxml.PanelLoadType]float64{}
	for _, f := range p.ServiceFeeders {
		power[f.LoadType] += f.PowerRating.Val()
	}
	assert.Equal(t, 1200.0, power[hpxml.PanelLoadDishwasher])
	assert.Equal(t, 7680.0, power[hpxml.PanelLoadEVCharging])
	assert.Equal(t, 4500.0, power[hpxml.PanelLoadLighting])
	assert.Equal(t, 3000.0, power[hpxml.PanelLoadKitchen])
	assert.Equal(t, 1500.0, power[hpxml.PanelLoadLaundry])

	ev := p.CircuitsFor("Charger1")
	require.Len(t, ev, 1)
	assert.Equal(t, 240, ev[0].Voltage.Val())
	assert.Equal(t, 50.0, ev[0].MaxCurrentRating.Val())
	assert.Equal(t, 2, ev[0].OccupiedSpaces.Val())

	dw := p.CircuitsFor("Dishwasher1")
	require.Len(t, dw, 1)
	assert.Equal(t, 120, dw[0].Voltage.Val())
	assert.Equal(t, 1, dw[0].OccupiedSpaces.Val())

	// The two kitchen spaces split into two 120V circuits.
	assert.Len(t, p.BranchCircuits, 5)
	assert.Equal(t, hpxml.BreakerSpaces{Total: 9, Occupied: 6, Headroom: 3}, p.BreakerSpaces)
	require.Len(t, p.Capacities, 1)
	assert.Greater(t, p.Capacities[0].TotalW, 0.0)
}

func TestPanel_ZeroPowerTakesNoSpace(t *testing.T) {
	cs := []component{{id: "Fan", demands: nil}}
	assert.Equal(t, 0, mergeSpaces(cs, 120, 20))
	cs = append(cs, component{id: "Dishwasher", spaces: 1})
	assert.Equal(t, 1, mergeSpaces(cs, 120, 20))
}

func TestPanel_DryerLoads(t *testing.T) {
	tests := []struct {
		name    string
		method  hpxml.Opt[hpxml.DryingMethod]
		voltage hpxml.Opt[int]
		power   float64
		volts   int
		spaces  int
		warns   int
	}{
		{"electric", hpxml.Opt[hpxml.DryingMethod]{}, hpxml.Opt[int]{}, 5760, 240, 2, 0},
		{"heat pump", hpxml.Some(hpxml.DryingHeatPump), hpxml.Opt[int]{}, 860, 240, 2, 0},
		{"heat pump on 120V", hpxml.Some(hpxml.DryingHeatPump), hpxml.Some(120), 860, 120, 1, 0},
		// No 120V row: the 240V power is spread over 20A breakers.
		{"electric on 120V", hpxml.Opt[hpxml.DryingMethod]{}, hpxml.Some(120), 5760, 120, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := house()
			b.Systems.HeatingSystems = nil
			b.Appliances.CookingRanges = nil
			b.Appliances.Dishwashers = nil
			b.Appliances.ClothesDryers = []*hpxml.ClothesDryer{{
				ApplianceCommon: hpxml.ApplianceCommon{ID: "Dryer1"},
				FuelType:        hpxml.FuelElectricity,
				DryingMethod:    tt.method,
			}}
			b.Systems.ElectricPanels = []*hpxml.ElectricPanel{{
				ID:             "Panel1",
				BranchCircuits: []*hpxml.BranchCircuit{{ID: "Dryer1Circuit", Voltage: tt.voltage, ComponentIDs: []string{"Dryer1"}}},
			}}
			e := newEngine(t, b, passSizing, passAppliances, passVehicles)
			cs, err := e.components()
			require.NoError(t, err)

			var dryer []component
			for _, c := range cs {
				if c.id == "Dryer1" {
					dryer = append(dryer, c)
				}
			}
			require.Len(t, dryer, 1)
			require.Len(t, dryer[0].demands, 1)
			assert.Equal(t, tt.power, dryer[0].demands[0].Power)
			assert.Equal(t, tt.volts, dryer[0].demands[0].Voltage)
			assert.Equal(t, tt.spaces, mergeSpaces(dryer, tt.volts, panel.DefaultMaxCurrent(tt.volts)))
			require.Len(t, e.diag.Warnings, tt.warns)
			if tt.warns > 0 {
				assert.Equal(t, "Dryer1", e.diag.Warnings[0].Entity)
				assert.Contains(t, e.diag.Warnings[0].Message, "no electric clothes dryer panel load at 120V")
			}
		})
	}
}

func TestPanel_RequiresSizing(t *testing.T) {
	b := house()
	b.Systems.ElectricPanels = []*hpxml.ElectricPanel{{ID: "Panel1"}}
	err := newEngine(t, b, passAppliances, passVehicles).applyPanels()
	assert.ErrorIs(t, err, ErrPassOrder)
}

func TestID_MultiUnit(t *testing.T) {
	e := newEngine(t, house())
	assert.Equal(t, "VentedAttic", e.id("VentedAttic"))
	e.unit = 2
	assert.Equal(t, "VentedAttic_2", e.id("VentedAttic"))
}

func TestCFIS_BlowerPower(t *testing.T) {
	b := house()
	b.Systems.HeatingSystems[0].FanWattsPerCFM = hpxml.Some(0.375)
	b.Systems.VentilationFans = []*hpxml.VentilationFan{
		{ID: "CFIS1", FanType: hpxml.Some(hpxml.MechVentCFIS), UsedForWholeBuilding: true, AttachedToDistribution: "HVACDistribution1"},
		{ID: "CFIS2", FanType: hpxml.Some(hpxml.MechVentCFIS), UsedForWholeBuilding: true, AttachedToDistribution: "HVACDistribution1",
			CFISBlowerFanPower: hpxml.Some(0.5)},
	}
	require.NoError(t, newEngine(t, b, passSizing).applyCFIS())
	assert.Equal(t, 0.375, b.Systems.VentilationFans[0].CFISBlowerFanPower.Val())
	assert.True(t, b.Systems.VentilationFans[0].CFISBlowerFanPower.IsDefaulted())
	assert.Equal(t, 0.5, b.Systems.VentilationFans[1].CFISBlowerFanPower.Val())

	b.Systems.HeatingSystems[0].FanWattsPerCFM = hpxml.Opt[float64]{}
	b.Systems.VentilationFans[0].CFISBlowerFanPower = hpxml.Opt[float64]{}
	require.NoError(t, newEngine(t, b, passSizing).applyCFIS())
	assert.False(t, b.Systems.VentilationFans[0].CFISBlowerFanPower.IsSet())
}

func TestApply_House(t *testing.T) {
	doc := &hpxml.Document{Buildings: []*hpxml.Building{house()}}
	res, err := ApplyDocument(doc, denver(t), Options{})
	require.NoError(t, err)
	require.Len(t, res, 1)

	b := doc.Buildings[0]
	assert.Equal(t, "725650", b.ClimateZones.WeatherStationWMO.Val())
	assert.Equal(t, "5B", b.ClimateZones.IECCZone.Val())
	assert.True(t, b.Header.DSTEnabled.IsDefaulted())

	hs := b.Systems.HeatingSystems[0]
	assert.True(t, hs.HeatingCapacity.IsDefaulted())
	assert.Greater(t, hs.HeatingCapacity.Val(), 0.0)
	assert.Greater(t, res[0].Building.HeatingTotal, 0.0)
	assert.InDelta(t, res[0].Building.HeatingTotal, res[0].Building.HeatingComponentSum(), 5.0)

	// The synthetic zone never reaches the document.
	assert.Empty(t, b.Zones)
	for _, w := range b.Enclosure.Walls {
		assert.Empty(t, w.AttachedToSpace)
	}
}

func TestApply_Idempotent(t *testing.T) {
	w := denver(t)
	doc := &hpxml.Document{Buildings: []*hpxml.Building{house()}}
	_, err := ApplyDocument(doc, w, Options{})
	require.NoError(t, err)
	var first bytes.Buffer
	require.NoError(t, doc.Save(&first))

	again, err := hpxml.Load(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)
	_, err = ApplyDocument(again, w, Options{})
	require.NoError(t, err)
	var second bytes.Buffer
	require.NoError(t, again.Save(&second))

	assert.Equal(t, first.String(), second.String())
}

func TestApply_HeatPumpCapacity17F(t *testing.T) {
	fixed := sizing.SizerFunc(func(b *hpxml.Building, _ *weather.Weather, _ *hvac_perf.Store) (*sizing.Result, error) {
		for _, hp := range b.Systems.HeatPumps {
			hp.HeatingCapacity.DefaultIfUnset(36000)
			hp.CoolingCapacity.DefaultIfUnset(36000)
			hp.BackupCapacity.DefaultIfUnset(0)
			hp.HeatingAirflowCFM.DefaultIfUnset(1200)
			hp.CoolingAirflowCFM.DefaultIfUnset(1200)
		}
		return &sizing.Result{}, nil
	})
	tests := []struct {
		name     string
		sizer    sizing.Sizer
		capacity hpxml.Opt[float64]
	}{
		{"autosized", nil, hpxml.Opt[float64]{}},
		{"custom sizer", fixed, hpxml.Opt[float64]{}},
		{"user capacity", nil, hpxml.Some(30000.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := house()
			b.Systems.HeatingSystems = nil
			b.Systems.HeatPumps = []*hpxml.HeatPump{{
				HVACCommon:            hpxml.HVACCommon{ID: "HeatPump1", DistributionSystem: "HVACDistribution1"},
				HeatPumpType:          hpxml.HeatPumpAirToAir,
				HeatingCapacity:       tt.capacity,
				HeatingCapFraction17F: hpxml.Some(0.6),
				FractionHeatLoad:      1,
				FractionCoolLoad:      1,
				SEER2:                 hpxml.Some(15.0),
				HSPF2:                 hpxml.Some(8.0),
				BackupType:            hpxml.Some(hpxml.BackupIntegrated),
			}}
			doc := &hpxml.Document{Buildings: []*hpxml.Building{b}}
			_, err := ApplyDocument(doc, denver(t), Options{Sizer: tt.sizer})
			require.NoError(t, err)

			hp := b.Systems.HeatPumps[0]
			require.Greater(t, hp.HeatingCapacity.Val(), 0.0)
			assert.Equal(t, math.Round(hp.HeatingCapacity.Val()*0.6), hp.HeatingCapacity17F.Val())
			assert.True(t, hp.HeatingCapacity17F.IsDefaulted())
			assert.False(t, hp.HeatingCapFraction17F.IsSet())
		})
	}
}

func TestApply_RequiresWeather(t *testing.T) {
	_, err := Apply(&hpxml.Header{}, house(), nil, Options{})
	assert.Error(t, err)
}
