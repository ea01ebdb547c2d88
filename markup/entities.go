package markup

import "sync"

// Respect common HTML named character references in addition to the XML
// predefined ones - tagged strings in the wild rarely follow XML strictly.
var htmlNamedEntities = sync.OnceValue(func() map[string]string {
	return map[string]string{
		"nbsp":   " ",
		"iexcl":  "¡",
		"cent":   "¢",
		"pound":  "£",
		"curren": "¤",
		"yen":    "¥",
		"brvbar": "¦",
		"sect":   "§",
		"uml":    "¨",
		"copy":   "©",
		"ordf":   "ª",
		"laquo":  "«",
		"not":    "¬",
		"shy":    "­",
		"reg":    "®",
		"macr":   "¯",
		"deg":    "°",
		"plusmn": "±",
		"sup2":   "²",
		"sup3":   "³",
		"acute":  "´",
		"micro":  "µ",
		"para":   "¶",
		"middot": "·",
		"cedil":  "¸",
		"sup1":   "¹",
		"ordm":   "º",
		"raquo":  "»",
		"frac14": "¼",
		"frac12": "½",
		"frac34": "¾",
		"iquest": "¿",
		"times":  "×",
		"divide": "÷",
		"ndash":  "–",
		"mdash":  "—",
		"lsquo":  "‘",
		"rsquo":  "’",
		"sbquo":  "‚",
		"ldquo":  "“",
		"rdquo":  "”",
		"bdquo":  "„",
		"dagger": "†",
		"Dagger": "‡",
		"bull":   "•",
		"hellip": "…",
		"permil": "‰",
		"prime":  "′",
		"Prime":  "″",
		"lsaquo": "‹",
		"rsaquo": "›",
		"euro":   "€",
		"trade":  "™",
	}
})
