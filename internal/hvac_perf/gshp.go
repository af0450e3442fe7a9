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

package hvac_perf

import (
	"math"

	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/weather"
)

// Biquadratic is c0 + c1*x + c2*x^2 + c3*y + c4*y^2 + c5*x*y with x the
// indoor and y the entering water temperature, both deg C.
type Biquadratic [6]float64

func (c Biquadratic) At(x, y float64) float64 {
	return c[0] + c[1]*x + c[2]*x*x + c[3]*y + c[4]*y*y + c[5]*x*y
}

// Quadratic is c0 + c1*f + c2*f^2 of a flow fraction f.
type Quadratic [3]float64

func (c Quadratic) At(f float64) float64 {
	return c[0] + c[1]*f + c[2]*f*f
}

// Rating conditions the curves are normalized to, deg C.
const (
	GSHPCoolRatedIWB = 19.4
	GSHPCoolRatedEWT = 25.0
	GSHPHeatRatedIDB = 20.0
	GSHPHeatRatedEWT = 0.0
)

// GSHPCurves is one entry of the ground-source heat pump catalog.
type GSHPCurves struct {
	CoolCapFT      Biquadratic
	CoolEIRFT      Biquadratic
	HeatCapFT      Biquadratic
	HeatEIRFT      Biquadratic
	CapFFAir       Quadratic
	EIRFFAir       Quadratic
	CapFFWater     Quadratic
	EIRFFWater     Quadratic
	CapacityRatios []float64

	// Design entering water temperatures and loop delta T, deg F.
	DesignCoolEWT float64
	DesignHeatEWT float64
	DesignDeltaT  float64
}

type gshpKey struct {
	model  hpxml.GSHPModelType
	stages int
}

var (
	gshpCoolCapFT = Biquadratic{0.568, 0.0300, 0, -0.0060, 0, 0}
	gshpCoolEIRFT = Biquadratic{0.694, -0.0100, 0, 0.0200, 0, 0}
	gshpHeatCapFT = Biquadratic{1.040, -0.0020, 0, 0.0220, 0, 0}
	gshpHeatEIRFT = Biquadratic{0.700, 0.0150, 0, -0.0120, 0, 0}
)

var gshpCatalog = map[gshpKey]GSHPCurves{
	{hpxml.GSHPModelStandard, 1}: {
		CoolCapFT: gshpCoolCapFT, CoolEIRFT: gshpCoolEIRFT,
		HeatCapFT: gshpHeatCapFT, HeatEIRFT: gshpHeatEIRFT,
		CapFFAir: Quadratic{0.80, 0.25, -0.05}, EIRFFAir: Quadratic{1.25, -0.35, 0.10},
		CapFFWater: Quadratic{0.90, 0.12, -0.02}, EIRFFWater: Quadratic{1.10, -0.13, 0.03},
		CapacityRatios: []float64{1.0},
	},
	{hpxml.GSHPModelExperimental, 1}: {
		CoolCapFT: gshpCoolCapFT, CoolEIRFT: gshpCoolEIRFT,
		HeatCapFT: gshpHeatCapFT, HeatEIRFT: gshpHeatEIRFT,
		CapFFAir: Quadratic{0.78, 0.28, -0.06}, EIRFFAir: Quadratic{1.28, -0.40, 0.12},
		CapFFWater: Quadratic{0.88, 0.15, -0.03}, EIRFFWater: Quadratic{1.12, -0.16, 0.04},
		CapacityRatios: []float64{1.0},
	},
	{hpxml.GSHPModelExperimental, 2}: {
		CoolCapFT: gshpCoolCapFT, CoolEIRFT: gshpCoolEIRFT,
		HeatCapFT: gshpHeatCapFT, HeatEIRFT: gshpHeatEIRFT,
		CapFFAir: Quadratic{0.78, 0.28, -0.06}, EIRFFAir: Quadratic{1.28, -0.40, 0.12},
		CapFFWater: Quadratic{0.88, 0.15, -0.03}, EIRFFWater: Quadratic{1.12, -0.16, 0.04},
		CapacityRatios: []float64{0.73, 1.0},
	},
	{hpxml.GSHPModelExperimental, 3}: {
		CoolCapFT: gshpCoolCapFT, CoolEIRFT: gshpCoolEIRFT,
		HeatCapFT: gshpHeatCapFT, HeatEIRFT: gshpHeatEIRFT,
		CapFFAir: Quadratic{0.76, 0.30, -0.06}, EIRFFAir: Quadratic{1.30, -0.42, 0.12},
		CapFFWater: Quadratic{0.86, 0.17, -0.03}, EIRFFWater: Quadratic{1.14, -0.18, 0.04},
		CapacityRatios: []float64{0.40, 1.0, 1.0},
	},
}

// GSHPCatalog returns the curves of a model type and compressor, with the
// design water temperatures of the site filled in. The standard model
// exists for single stage compressors only.
func GSHPCatalog(model hpxml.GSHPModelType, ct hpxml.CompressorType, w *weather.Weather) (*GSHPCurves, error) {
	if model == "" {
		model = hpxml.GSHPModelStandard
	}
	c, ok := gshpCatalog[gshpKey{model, NumSpeeds(ct)}]
	if !ok {
		return nil, errors.Errorf("no %s ground-source curves for %s compressor", model, ct)
	}
	c.CapacityRatios = append([]float64(nil), c.CapacityRatios...)
	c.DesignDeltaT = 10.0
	c.DesignCoolEWT = 85.0
	c.DesignHeatEWT = 35.0
	if w != nil {
		ground := w.Data.AnnualAvgDrybulb
		c.DesignCoolEWT = math.Max(85.0, math.Max(w.Design.CoolingDrybulb-15.0, ground+10.0))
		c.DesignHeatEWT = math.Max(35.0, math.Max(w.Design.HeatingDrybulb+35.0, ground-10.0))
	}
	return &c, nil
}
