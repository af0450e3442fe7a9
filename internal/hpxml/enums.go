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

package hpxml

type Location string

const (
	LocationConditionedSpace       Location = "conditioned space"
	LocationBasementConditioned    Location = "basement - conditioned"
	LocationBasementUnconditioned  Location = "basement - unconditioned"
	LocationCrawlspaceConditioned  Location = "crawlspace - conditioned"
	LocationCrawlspaceVented       Location = "crawlspace - vented"
	LocationCrawlspaceUnvented     Location = "crawlspace - unvented"
	LocationAtticVented            Location = "attic - vented"
	LocationAtticUnvented          Location = "attic - unvented"
	LocationGarage                 Location = "garage"
	LocationOutside                Location = "outside"
	LocationGround                 Location = "ground"
	LocationRoofDeck               Location = "roof deck"
	LocationUnderSlab              Location = "under slab"
	LocationExteriorWall           Location = "exterior wall"
	LocationManufacturedHomeBelly  Location = "manufactured home belly"
	LocationManufacturedHomeUnder  Location = "manufactured home underbelly"
	LocationOtherHousingUnit       Location = "other housing unit"
	LocationOtherHeatedSpace       Location = "other heated space"
	LocationOtherMultifamilyBuffer Location = "other multifamily buffer space"
	LocationOtherNonFreezingSpace  Location = "other non-freezing space"
	LocationInterior               Location = "interior"
	LocationExterior               Location = "exterior"
	LocationKitchen                Location = "kitchen"
	LocationBath                   Location = "bath"
)

// IsConditioned reports locations inside the thermal boundary.
func (l Location) IsConditioned() bool {
	switch l {
	case LocationConditionedSpace, LocationBasementConditioned, LocationCrawlspaceConditioned:
		return true
	}
	return false
}

// IsFinished reports locations whose surfaces get an interior finish by default.
func (l Location) IsFinished() bool {
	return l.IsConditioned() || l == LocationOtherHousingUnit || l == LocationOtherHeatedSpace
}

type Orientation string

const (
	OrientationNorth     Orientation = "north"
	OrientationNortheast Orientation = "northeast"
	OrientationEast      Orientation = "east"
	OrientationSoutheast Orientation = "southeast"
	OrientationSouth     Orientation = "south"
	OrientationSouthwest Orientation = "southwest"
	OrientationWest      Orientation = "west"
	OrientationNorthwest Orientation = "northwest"
)

type Color string

const (
	ColorDark       Color = "dark"
	ColorMediumDark Color = "medium dark"
	ColorMedium     Color = "medium"
	ColorLight      Color = "light"
	ColorReflective Color = "reflective"
)

type FuelType string

const (
	FuelElectricity FuelType = "electricity"
	FuelNaturalGas  FuelType = "natural gas"
	FuelOil         FuelType = "fuel oil"
	FuelPropane     FuelType = "propane"
	FuelKerosene    FuelType = "kerosene"
	FuelDiesel      FuelType = "diesel"
	FuelCoal        FuelType = "coal"
	FuelWood        FuelType = "wood"
	FuelWoodPellets FuelType = "wood pellets"
)

type ResidentialFacilityType string

const (
	FacilitySingleFamilyDetached ResidentialFacilityType = "single-family detached"
	FacilitySingleFamilyAttached ResidentialFacilityType = "single-family attached"
	FacilityApartment            ResidentialFacilityType = "apartment unit"
	FacilityManufacturedHome     ResidentialFacilityType = "manufactured home"
)

type OccupancyCalculationType string

const (
	OccupancyCalculationAsset       OccupancyCalculationType = "asset"
	OccupancyCalculationOperational OccupancyCalculationType = "operational"
)

type SiteType string

const (
	SiteRural    SiteType = "rural"
	SiteSuburban SiteType = "suburban"
	SiteUrban    SiteType = "urban"
)

type Shielding string

const (
	ShieldingExposed      Shielding = "exposed"
	ShieldingNormal       Shielding = "normal"
	ShieldingWellShielded Shielding = "well-shielded"
)

type SoilType string

const (
	SoilUnknown SoilType = "unknown"
	SoilSand    SoilType = "sand"
	SoilSilt    SoilType = "silt"
	SoilClay    SoilType = "clay"
	SoilLoam    SoilType = "loam"
	SoilGravel  SoilType = "gravel"
)

type MoistureType string

const (
	MoistureWet   MoistureType = "wet"
	MoistureDry   MoistureType = "dry"
	MoistureMixed MoistureType = "mixed"
)

type AtticType string

const (
	AtticVented      AtticType = "vented"
	AtticUnvented    AtticType = "unvented"
	AtticConditioned AtticType = "conditioned"
	AtticFlatRoof    AtticType = "flat roof"
	AtticCathedral   AtticType = "cathedral ceiling"
)

type FoundationType string

const (
	FoundationVentedCrawlspace      FoundationType = "vented crawlspace"
	FoundationUnventedCrawlspace    FoundationType = "unvented crawlspace"
	FoundationConditionedCrawlspace FoundationType = "conditioned crawlspace"
	FoundationUnconditionedBasement FoundationType = "unconditioned basement"
	FoundationConditionedBasement   FoundationType = "conditioned basement"
	FoundationSlab                  FoundationType = "slab"
	FoundationBellyAndWing          FoundationType = "belly and wing"
	FoundationAboveApartment        FoundationType = "above apartment"
)

type Units string

const (
	UnitsACH              Units = "ACH"
	UnitsCFM              Units = "CFM"
	UnitsACHNatural       Units = "ACHnatural"
	UnitsSLA              Units = "SLA"
	UnitsPercent          Units = "Percent"
	UnitsKwhPerYear       Units = "kWh/year"
	UnitsThermPerYear     Units = "therm/year"
	UnitsLbPerMBtu        Units = "lb/MBtu"
	UnitsLbPerMWh         Units = "lb/MWh"
	UnitsDollarsPerKwh    Units = "$/kWh"
	UnitsCFM25            Units = "CFM25"
	UnitsCFM50            Units = "CFM50"
	UnitsDollarsPerMonth  Units = "$/month"
	UnitsDollarsPerKwPerM Units = "$/kW/month"
)

type LeakinessDescription string

const (
	LeakinessVeryTight LeakinessDescription = "very tight"
	LeakinessTight     LeakinessDescription = "tight"
	LeakinessAverage   LeakinessDescription = "average"
	LeakinessLeaky     LeakinessDescription = "leaky"
	LeakinessVeryLeaky LeakinessDescription = "very leaky"
)

type RoofType string

const (
	RoofAsphaltShingles RoofType = "asphalt or fiberglass shingles"
	RoofWoodShingles    RoofType = "wood shingles or shakes"
	RoofShingles        RoofType = "shingles"
	RoofSlateOrTile     RoofType = "slate or tile shingles"
	RoofMetal           RoofType = "metal surfacing"
	RoofPlasticRubber   RoofType = "plastic/rubber/synthetic sheeting"
	RoofEPS             RoofType = "expanded polystyrene sheathing"
	RoofConcrete        RoofType = "concrete"
	RoofCool            RoofType = "cool roof"
)

type Siding string

const (
	SidingWood        Siding = "wood siding"
	SidingVinyl       Siding = "vinyl siding"
	SidingStucco      Siding = "stucco"
	SidingFiberCement Siding = "fiber cement siding"
	SidingBrickVeneer Siding = "brick veneer"
	SidingAluminum    Siding = "aluminum siding"
	SidingMasonite    Siding = "masonite siding"
	SidingComposite   Siding = "composite shingle siding"
	SidingAsbestos    Siding = "asbestos siding"
	SidingSynthStucco Siding = "synthetic stucco"
	SidingNone        Siding = "none"
)

type InteriorFinish string

const (
	FinishGypsumBoard          InteriorFinish = "gypsum board"
	FinishGypsumCompositeBoard InteriorFinish = "gypsum composite board"
	FinishPlaster              InteriorFinish = "plaster"
	FinishWood                 InteriorFinish = "wood"
	FinishNone                 InteriorFinish = "none"
)

type WallType string

const (
	WallWoodStud        WallType = "WoodStud"
	WallDoubleWoodStud  WallType = "DoubleWoodStud"
	WallConcreteMasonry WallType = "ConcreteMasonryUnit"
	WallSIP             WallType = "StructuralInsulatedPanel"
	WallICF             WallType = "InsulatedConcreteForms"
	WallSteelStud       WallType = "SteelFrame"
	WallSolidConcrete   WallType = "SolidConcrete"
	WallLog             WallType = "LogWall"
)

type FoundationWallType string

const (
	FoundationWallSolidConcrete     FoundationWallType = "solid concrete"
	FoundationWallConcreteBlock     FoundationWallType = "concrete block"
	FoundationWallConcreteBlockFoam FoundationWallType = "concrete block foam core"
	FoundationWallWood              FoundationWallType = "wood"
	FoundationWallDoubleBrick       FoundationWallType = "double brick"
)

type FloorOrCeiling string

const (
	FloorIsFloor   FloorOrCeiling = "floor"
	FloorIsCeiling FloorOrCeiling = "ceiling"
)

type FrameType string

const (
	FrameAluminum   FrameType = "aluminum"
	FrameMetal      FrameType = "metal"
	FrameWood       FrameType = "wood"
	FrameVinyl      FrameType = "vinyl"
	FrameFiberglass FrameType = "fiberglass"
)

// IsMetal reports frames that conduct like metal.
func (f FrameType) IsMetal() bool {
	return f == FrameAluminum || f == FrameMetal
}

type GlassLayers string

const (
	GlassSinglePane GlassLayers = "single-pane"
	GlassDoublePane GlassLayers = "double-pane"
	GlassTriplePane GlassLayers = "triple-pane"
	GlassBlock      GlassLayers = "glass block"
)

type GlassType string

const (
	GlassClear            GlassType = "clear"
	GlassLowE             GlassType = "low-e"
	GlassTinted           GlassType = "tinted"
	GlassTintedReflective GlassType = "tinted/reflective"
	GlassReflective       GlassType = "reflective"
	GlassLowEHighGain     GlassType = "low-e, high-solar-gain"
	GlassLowELowGain      GlassType = "low-e, low-solar-gain"
)

type GasFill string

const (
	GasAir      GasFill = "air"
	GasArgon    GasFill = "argon"
	GasKrypton  GasFill = "krypton"
	GasXenon    GasFill = "xenon"
	GasNitrogen GasFill = "nitrogen"
	GasOther    GasFill = "other"
)

type InteriorShadingType string

const (
	InteriorShadingLightCurtains  InteriorShadingType = "light curtains"
	InteriorShadingMediumCurtains InteriorShadingType = "medium curtains"
	InteriorShadingDarkCurtains   InteriorShadingType = "dark curtains"
	InteriorShadingLightBlinds    InteriorShadingType = "light blinds"
	InteriorShadingMediumBlinds   InteriorShadingType = "medium blinds"
	InteriorShadingDarkBlinds     InteriorShadingType = "dark blinds"
	InteriorShadingLightShades    InteriorShadingType = "light shades"
	InteriorShadingMediumShades   InteriorShadingType = "medium shades"
	InteriorShadingDarkShades     InteriorShadingType = "dark shades"
	InteriorShadingNone           InteriorShadingType = "none"
	InteriorShadingOther          InteriorShadingType = "other"
)

type BlindsPosition string

const (
	BlindsClosed   BlindsPosition = "closed"
	BlindsHalfOpen BlindsPosition = "half open"
	BlindsOpen     BlindsPosition = "open"
)

type ExteriorShadingType string

const (
	ExteriorShadingSolarScreens  ExteriorShadingType = "solar screens"
	ExteriorShadingSolarFilm     ExteriorShadingType = "solar film"
	ExteriorShadingDeciduousTree ExteriorShadingType = "deciduous tree"
	ExteriorShadingEvergreenTree ExteriorShadingType = "evergreen tree"
	ExteriorShadingBuilding      ExteriorShadingType = "building"
	ExteriorShadingNone          ExteriorShadingType = "none"
	ExteriorShadingOther         ExteriorShadingType = "other"
)

type InsectScreenLocation string

const (
	InsectScreenInterior InsectScreenLocation = "interior"
	InsectScreenExterior InsectScreenLocation = "exterior"
)

type FurnitureMassType string

const (
	FurnitureLightWeight FurnitureMassType = "light-weight"
	FurnitureHeavyWeight FurnitureMassType = "heavy-weight"
)
