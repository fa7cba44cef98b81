package domain

// NisabStandard selects which metal threshold gates monetary wealth.
type NisabStandard string

const (
	// NisabGold uses the gold Nisab (85g x gold price).
	NisabGold NisabStandard = "GOLD"
	// NisabSilver uses the silver Nisab (595g x silver price).
	NisabSilver NisabStandard = "SILVER"
	// NisabLowerOfTwo uses the lower of the two thresholds, the standard most
	// beneficial to the recipients.
	NisabLowerOfTwo NisabStandard = "LOWER_OF_TWO"
)

// Madhab is one of the four schools of jurisprudence.
type Madhab string

const (
	Hanafi  Madhab = "HANAFI"
	Shafi   Madhab = "SHAFI"
	Maliki  Madhab = "MALIKI"
	Hanbali Madhab = "HANBALI"
)

// MadhabRules is the rule tuple a school maps to. The mapping is legally fixed
// data, not an extension point.
type MadhabRules struct {
	NisabStandard NisabStandard
	// JewelryExempt is true when personal-use jewelry (Huliyy al-Mubah) is not
	// zakatable. Hanafi treats jewelry as growing wealth and taxes it.
	JewelryExempt bool
}

// Rules returns the school's rule tuple. Unknown values fall back to Shafi
// positions (gold standard, jewelry exempt).
func (m Madhab) Rules() MadhabRules {
	switch m {
	case Hanafi:
		return MadhabRules{NisabStandard: NisabLowerOfTwo, JewelryExempt: false}
	case Shafi:
		return MadhabRules{NisabStandard: NisabGold, JewelryExempt: true}
	case Maliki:
		return MadhabRules{NisabStandard: NisabGold, JewelryExempt: true}
	case Hanbali:
		return MadhabRules{NisabStandard: NisabLowerOfTwo, JewelryExempt: true}
	default:
		return MadhabRules{NisabStandard: NisabGold, JewelryExempt: true}
	}
}

// ParseMadhab maps a case-insensitive name to a Madhab, reporting whether the
// name was recognized.
func ParseMadhab(s string) (Madhab, bool) {
	switch Madhab(normalizeEnum(s)) {
	case Hanafi:
		return Hanafi, true
	case Shafi:
		return Shafi, true
	case Maliki:
		return Maliki, true
	case Hanbali:
		return Hanbali, true
	}
	return "", false
}

// ParseNisabStandard maps a case-insensitive name to a NisabStandard.
func ParseNisabStandard(s string) (NisabStandard, bool) {
	switch NisabStandard(normalizeEnum(s)) {
	case NisabGold:
		return NisabGold, true
	case NisabSilver:
		return NisabSilver, true
	case NisabLowerOfTwo:
		return NisabLowerOfTwo, true
	}
	return "", false
}

func normalizeEnum(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c-('a'-'A'))
		case c == '-' || c == ' ':
			out = append(out, '_')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
