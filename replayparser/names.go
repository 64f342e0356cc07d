package replayparser

import (
	"regexp"
	"strings"
)

// upgradeFriendlyNames maps raw ability names to human-readable upgrade
// descriptions for the common cases; anything else falls through to the
// generic rewrite in friendlyUpgradeName.
var upgradeFriendlyNames = map[string]string{
	"MorphToGreaterShrine":     "Upgrade to Greater Shrine",
	"MorphToElderShrine":       "Upgrade to Elder Shrine",
	"MorphToHQTier2":           "Upgrade to HQ Tier 2",
	"MorphToHQTier3":           "Upgrade to HQ Tier 3",
	"Hellforge_Research":       "Hellforge Research",
	"MunitionsFactoryResearch": "Munitions Factory Research",
	"ResearchLabResearch":      "Research Lab Research",
}

// upgradeKeywords flags an ability name as upgrade/research activity.
var upgradeKeywords = []string{"Research", "Upgrade", "MorphTo", "Tier2", "Tier3"}

const stormgateRewardPrefix = "StormgateAbility"

var stormgateRewardNames = map[string]string{
	"StormgateAbilityCreateTier1Healer":      "Tier 1: Healer",
	"StormgateAbilityCreateTier1Ooze":        "Tier 1: Ooze",
	"StormgateAbilityCreateTier1Frost":       "Tier 1: Frost",
	"StormgateAbilityCreateTier2Exploder":    "Tier 2: Exploder",
	"StormgateAbilityCreateTier2Fortress":    "Tier 2: Fortress",
	"StormgateAbilityCreateTier2Wisp":        "Tier 2: Wisp",
	"StormgateAbilityCreateTier3ShadowDemon": "Tier 3: Shadow Demon",
	"StormgateAbilityCreateTier3Quake":       "Tier 3: Quake",
}

var stormgateTierNamePattern = regexp.MustCompile(`^Tier(\d+)(.+)$`)

func isUpgradeAbility(name string) bool {
	for _, kw := range upgradeKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func friendlyUpgradeName(abilityName string) string {
	if name, ok := upgradeFriendlyNames[abilityName]; ok {
		return name
	}
	name := strings.ReplaceAll(abilityName, "_", " ")
	name = strings.ReplaceAll(name, "MorphTo", "Upgrade to ")
	return name
}

func friendlyRewardName(abilityName string) string {
	if name, ok := stormgateRewardNames[abilityName]; ok {
		return name
	}
	clean := strings.ReplaceAll(abilityName, "StormgateAbilityCreate", "")
	if m := stormgateTierNamePattern.FindStringSubmatch(clean); m != nil {
		return "Tier " + m[1] + ": " + m[2]
	}
	return clean
}
