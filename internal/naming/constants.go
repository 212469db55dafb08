package naming

// MaxAttempts is how many random prefix/suffix combinations are tried before
// falling back to a numbered name.
const MaxAttempts = 100

// FallbackFormatTemplate formats the numbered fallback name: "<stem> #<sequence>"
const FallbackFormatTemplate = "%s #%d"

// NameFormatTemplate joins a prefix and a suffix
const NameFormatTemplate = "%s %s"

// WeaponWords names one-handed swords.
var WeaponWords = Words{
	Prefixes: []string{
		"Forgotten",
		"Steel",
		"Shadowed",
		"Rune-Etched",
		"Holy",
		"Bloodred",
		"Whispering",
		"Sunforged",
		"Cursed",
		"Dragontooth",
	},
	Suffixes: []string{
		"Blade",
		"Edge",
		"Shortsword",
		"Warblade",
		"Sabre",
		"Thrustblade",
		"Guardian Sword",
		"Lightedge",
		"Nightblade",
		"Stormsword",
	},
	Fallback: "Lost Blade",
}

// EquipmentWords names pieces of a full equipment set.
var EquipmentWords = Words{
	Prefixes: []string{
		"Forgotten",
		"Ironbound",
		"Shadowed",
		"Rune-Etched",
		"Hallowed",
		"Bloodred",
		"Whispering",
		"Sunforged",
		"Cursed",
		"Dragonscale",
	},
	Suffixes: []string{
		"Relic",
		"Ward",
		"Heirloom",
		"Keepsake",
		"Aegis",
		"Mantle",
		"Sigil",
		"Bulwark",
		"Vestment",
		"Trophy",
	},
	Fallback: "Lost Relic",
}
