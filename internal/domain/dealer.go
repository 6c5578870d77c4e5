package domain

// Dealer is a public dealer directory entry.
type Dealer struct {
	DealerCode string `json:"dealer_code"`
	DealerName string `json:"dealer_name"`
}

// DealerNames is an immutable code-to-display-name table injected into the
// index builder. It is a plain map so tests can swap in their own table.
type DealerNames map[string]string

// DefaultDealerNames returns the built-in dealer name table.
func DefaultDealerNames() DealerNames {
	return DealerNames{
		"EZ978": "Top Store",
		"QC759": "Golden Market",
		"WW013": "Premium Plaza",
		"LW097": "Fresh Mart",
		"TX140": "Super Center",
		"LF413": "Quality Shop",
		"MK256": "Best Buy",
		"RT891": "Corner Store",
		"PL634": "Mega Mall",
		"VN472": "Local Market",
	}
}

// Resolve returns the display name for a dealer code, synthesizing a
// "Dealer <code>" label for codes missing from the table.
func (n DealerNames) Resolve(code string) string {
	if name, ok := n[code]; ok {
		return name
	}
	return "Dealer " + code
}
