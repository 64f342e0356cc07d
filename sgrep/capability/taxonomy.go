package capability

import "strings"

// Faction is one of the game's playable factions, identified by a set of
// marker substrings that appear in capability or target-type names.
type Faction struct {
	Name    string
	Markers []string
}

// Factions enumerates the known factions, in the order their markers are
// checked against an actor's observed capability names.
var Factions = []*Faction{
	{Name: "Vanguard", Markers: []string{"HQ", "Barracks", "IronVault", "CreationChamber"}},
	{Name: "Celestial", Markers: []string{"Arcship", "Conclave", "Celestial"}},
	{Name: "Infernal", Markers: []string{"Shrine", "Imp"}},
}

// UnknownFaction is reported for an actor with no observed markers.
const UnknownFaction = "Unknown"

// FactionByMarker returns the name of the first faction whose marker list
// contains a substring of name, or UnknownFaction if none matches.
func FactionByMarker(name string) string {
	for _, f := range Factions {
		for _, marker := range f.Markers {
			if strings.Contains(name, marker) {
				return f.Name
			}
		}
	}
	return UnknownFaction
}

// SpawnIndicators maps a spawn-capability name to the structure whose
// existence it proves.
var SpawnIndicators = map[string]string{
	"HQSpawn":               "HQ",
	"Shrine_Spawn":          "Shrine",
	"BarracksSpawn":         "Barracks",
	"IronVault_Spawn":       "IronVault",
	"CreationChamber_Spawn": "CreationChamber",
	"Arcship_Spawn":         "Arcship",
	"Conclave_Spawn":        "Conclave",
}

// MorphIndicators maps a morph-capability name to the structure it
// confirms (a unit morphing into or out of a tier still proves the base
// structure exists).
var MorphIndicators = map[string]string{
	"ArcshipTier1Land":     "Arcship",
	"ArcshipTier1Liftoff":  "Arcship",
	"MorphToArcshipTier2":  "Arcship",
	"MorphToArcshipTier3":  "Arcship",
	"MorphToHQTier2":       "HQ",
	"MorphToGreaterShrine": "Shrine",
}

// ConstructIndicators maps a worker construct-capability name to the
// worker class that casts it.
var ConstructIndicators = map[string]string{
	"WorkerConstructAbilityData": "Worker",
	"Imp_Construct":              "Imp",
	"Celestial_Construct":        "Celestial",
}

// GenericAttackCapability is the catch-all attack capability name used by
// the combat-unit heuristic.
const GenericAttackCapability = "attackData"

// NonBuildingCapabilities are capabilities that never produce a structure,
// excluded up front from build-order consideration even though they may
// carry a build_type.
var NonBuildingCapabilities = map[string]bool{
	"attackData":          true,
	"CloneAbilityData":    true,
	"FightMoveAbilityData": true,
}

// structureBaseTypes are the archetype dictionary's `__base_type` tags
// observed on placeable structures: buildings are modeled as units or
// resource generators, never their own category.
var structureBaseTypes = map[string]bool{
	"UnitData":              true,
	"ResourceGeneratorData": true,
}

// IsStructureBaseType reports whether baseType names a structure's
// archetype category, used as the no-structure-dictionary fallback when
// classifying a build_type (spec §4.9).
func IsStructureBaseType(baseType string) bool {
	return structureBaseTypes[baseType]
}
