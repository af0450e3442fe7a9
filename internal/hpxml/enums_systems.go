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

type HeatingSystemType string

const (
	HeatingFurnace            HeatingSystemType = "Furnace"
	HeatingWallFurnace        HeatingSystemType = "WallFurnace"
	HeatingFloorFurnace       HeatingSystemType = "FloorFurnace"
	HeatingBoiler             HeatingSystemType = "Boiler"
	HeatingElectricResistance HeatingSystemType = "ElectricResistance"
	HeatingStove              HeatingSystemType = "Stove"
	HeatingSpaceHeater        HeatingSystemType = "SpaceHeater"
	HeatingFireplace          HeatingSystemType = "Fireplace"
)

type CoolingSystemType string

const (
	CoolingCentralAC    CoolingSystemType = "central air conditioner"
	CoolingRoomAC       CoolingSystemType = "room air conditioner"
	CoolingPTAC         CoolingSystemType = "packaged terminal air conditioner"
	CoolingEvaporative  CoolingSystemType = "evaporative cooler"
	CoolingMiniSplit    CoolingSystemType = "mini-split"
	CoolingChiller      CoolingSystemType = "chiller"
	CoolingCoolingTower CoolingSystemType = "cooling tower"
)

type HeatPumpType string

const (
	HeatPumpAirToAir     HeatPumpType = "air-to-air"
	HeatPumpMiniSplit    HeatPumpType = "mini-split"
	HeatPumpGroundToAir  HeatPumpType = "ground-to-air"
	HeatPumpWaterLoop    HeatPumpType = "water-loop-to-air"
	HeatPumpPTHP         HeatPumpType = "packaged terminal heat pump"
	HeatPumpRoomReversed HeatPumpType = "room air conditioner with reverse cycle"
)

type CompressorType string

const (
	CompressorSingleStage   CompressorType = "single stage"
	CompressorTwoStage      CompressorType = "two stage"
	CompressorVariableSpeed CompressorType = "variable speed"
)

type FanMotorType string

const (
	FanMotorPSC FanMotorType = "PSC"
	FanMotorBPM FanMotorType = "BPM"
)

type EquipmentType string

const (
	EquipmentSplit            EquipmentType = "split system"
	EquipmentPackaged         EquipmentType = "packaged system"
	EquipmentSDHV             EquipmentType = "small duct high velocity system"
	EquipmentSpaceConstrained EquipmentType = "space constrained system"
)

type BackupType string

const (
	BackupIntegrated BackupType = "integrated"
	BackupSeparate   BackupType = "separate"
)

type CapacityDescription string

const (
	CapacityMinimum CapacityDescription = "minimum"
	CapacityNominal CapacityDescription = "nominal"
	CapacityMaximum CapacityDescription = "maximum"
)

type HeatPumpSizing string

const (
	HeatPumpSizingACCA       HeatPumpSizing = "ACCA"
	HeatPumpSizingHERS       HeatPumpSizing = "HERS"
	HeatPumpSizingMaxLoad    HeatPumpSizing = "MaxLoad"
	HeatPumpBackupEmergency  HeatPumpSizing = "emergency"
	HeatPumpBackupSupplement HeatPumpSizing = "supplemental"
)

// GSHPModelType selects the fidelity of the ground-source heat pump curves.
type GSHPModelType string

const (
	GSHPModelStandard     GSHPModelType = "standard"
	GSHPModelExperimental GSHPModelType = "experimental"
)

type GeothermalLoopConfig string

const (
	GeothermalLoopVertical   GeothermalLoopConfig = "vertical"
	GeothermalLoopHorizontal GeothermalLoopConfig = "horizontal"
)

type GroutType string

const (
	GroutStandard          GroutType = "standard"
	GroutThermallyEnhanced GroutType = "thermally enhanced"
)

type PipeType string

const (
	PipeStandard          PipeType = "standard"
	PipeThermallyEnhanced PipeType = "thermally enhanced"
)

type BoreholeConfig string

const (
	BoreholeSingle        BoreholeConfig = "single"
	BoreholeLine          BoreholeConfig = "line"
	BoreholeRectangle     BoreholeConfig = "rectangle"
	BoreholeLConfig       BoreholeConfig = "l-config"
	BoreholeUConfig       BoreholeConfig = "u-config"
	BoreholeOpenRectangle BoreholeConfig = "open rectangle"
)

type DistributionSystemType string

const (
	DistributionAir      DistributionSystemType = "AirDistribution"
	DistributionHydronic DistributionSystemType = "HydronicDistribution"
	DistributionDSE      DistributionSystemType = "DSE"
)

type AirDistributionType string

const (
	AirDistributionRegular AirDistributionType = "regular velocity"
	AirDistributionGravity AirDistributionType = "gravity"
	AirDistributionFanCoil AirDistributionType = "fan coil"
)

type DuctType string

const (
	DuctSupply DuctType = "supply"
	DuctReturn DuctType = "return"
)

type DuctBuriedLevel string

const (
	DuctBuriedNone    DuctBuriedLevel = "not buried"
	DuctBuriedPartial DuctBuriedLevel = "partially buried"
	DuctBuriedFull    DuctBuriedLevel = "fully buried"
	DuctBuriedDeep    DuctBuriedLevel = "deeply buried"
)

type DuctShape string

const (
	DuctShapeRound       DuctShape = "round"
	DuctShapeRectangular DuctShape = "rectangular"
	DuctShapeOval        DuctShape = "oval"
	DuctShapeOther       DuctShape = "other"
)

type MechVentType string

const (
	MechVentExhaust  MechVentType = "exhaust only"
	MechVentSupply   MechVentType = "supply only"
	MechVentBalanced MechVentType = "balanced"
	MechVentERV      MechVentType = "energy recovery ventilator"
	MechVentHRV      MechVentType = "heat recovery ventilator"
	MechVentCFIS     MechVentType = "central fan integrated supply"
)

type CFISAddlRuntimeMode string

const (
	CFISModeAirHandler      CFISAddlRuntimeMode = "air handler fan"
	CFISModeSupplementalFan CFISAddlRuntimeMode = "supplemental fan"
	CFISModeNone            CFISAddlRuntimeMode = "none"
)

type WaterHeaterType string

const (
	WaterHeaterStorage       WaterHeaterType = "storage water heater"
	WaterHeaterTankless      WaterHeaterType = "instantaneous water heater"
	WaterHeaterHeatPump      WaterHeaterType = "heat pump water heater"
	WaterHeaterCombiStorage  WaterHeaterType = "space-heating boiler with storage tank"
	WaterHeaterCombiTankless WaterHeaterType = "space-heating boiler with tankless coil"
)

type WaterHeaterUsageBin string

const (
	UsageBinVerySmall WaterHeaterUsageBin = "very small"
	UsageBinLow       WaterHeaterUsageBin = "low"
	UsageBinMedium    WaterHeaterUsageBin = "medium"
	UsageBinHigh      WaterHeaterUsageBin = "high"
)

type TankModelType string

const (
	TankModelMixed      TankModelType = "mixed"
	TankModelStratified TankModelType = "stratified"
)

type HPWHOperatingMode string

const (
	HPWHModeHybridAuto   HPWHOperatingMode = "hybrid/auto"
	HPWHModeHeatPumpOnly HPWHOperatingMode = "heat pump only"
)

type HotWaterDistributionType string

const (
	HotWaterStandard      HotWaterDistributionType = "Standard"
	HotWaterRecirculation HotWaterDistributionType = "Recirculation"
)

type RecirculationControl string

const (
	RecircNoControl      RecirculationControl = "no control"
	RecircTimer          RecirculationControl = "timer"
	RecircTemperature    RecirculationControl = "temperature"
	RecircPresenceSensor RecirculationControl = "presence sensor demand control"
	RecircManual         RecirculationControl = "manual demand control"
)

type DryerControlType string

const (
	DryerControlTimer    DryerControlType = "timer"
	DryerControlMoisture DryerControlType = "moisture"
)

type DryingMethod string

const (
	DryingConventional DryingMethod = "conventional"
	DryingCondensing   DryingMethod = "condensing"
	DryingHeatPump     DryingMethod = "heat pump"
	DryingOther        DryingMethod = "other"
)

type LightingType string

const (
	LightingCFL LightingType = "CompactFluorescent"
	LightingLFL LightingType = "FluorescentTube"
	LightingLED LightingType = "LightEmittingDiode"
)

type PlugLoadType string

const (
	PlugLoadOther      PlugLoadType = "other"
	PlugLoadTV         PlugLoadType = "TV other"
	PlugLoadEVCharging PlugLoadType = "electric vehicle charging"
	PlugLoadWellPump   PlugLoadType = "well pump"
)

type FuelLoadType string

const (
	FuelLoadGrill     FuelLoadType = "grill"
	FuelLoadLighting  FuelLoadType = "lighting"
	FuelLoadFireplace FuelLoadType = "fireplace"
)

type PoolHeaterType string

const (
	PoolHeaterElectricResistance PoolHeaterType = "electric resistance"
	PoolHeaterGas                PoolHeaterType = "gas fired"
	PoolHeaterHeatPump           PoolHeaterType = "heat pump"
	PoolHeaterNone               PoolHeaterType = "none"
)

type PVLocation string

const (
	PVRoof   PVLocation = "roof"
	PVGround PVLocation = "ground"
)

type PVTracking string

const (
	PVTrackingFixed   PVTracking = "fixed"
	PVTracking1Axis   PVTracking = "1-axis"
	PVTracking1AxisBT PVTracking = "1-axis backtracked"
	PVTracking2Axis   PVTracking = "2-axis"
)

type PVModuleType string

const (
	PVModuleStandard PVModuleType = "standard"
	PVModulePremium  PVModuleType = "premium"
	PVModuleThinFilm PVModuleType = "thin film"
)

type BatteryLifetimeModel string

const (
	BatteryLifetimeNone         BatteryLifetimeModel = "None"
	BatteryLifetimeKandlerSmith BatteryLifetimeModel = "KandlerSmith"
)

type PVCompensationType string

const (
	PVNetMetering  PVCompensationType = "NetMetering"
	PVFeedInTariff PVCompensationType = "FeedInTariff"
)

type ExcessSellbackRateType string

const (
	SellbackUserSpecified ExcessSellbackRateType = "User-Specified"
	SellbackRetailRate    ExcessSellbackRateType = "Retail Electricity Cost"
)

type EmissionsType string

const (
	EmissionsCO2e EmissionsType = "CO2e"
	EmissionsNOx  EmissionsType = "NOx"
	EmissionsSO2  EmissionsType = "SO2"
)

