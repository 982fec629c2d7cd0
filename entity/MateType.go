package entity

// MateType is one entry of the companionship-category table:
// "who are you eating with?".
type MateType struct {
	No     int    `json:"no"`
	CateID string `json:"cateId"`
	Name   string `json:"name"`
}

// MateTypes maps the short category codes used in URLs to the display
// labels stored on restaurant documents. Loaded once at init, never mutated.
var MateTypes = []MateType{
	{No: 1, CateID: "lover", Name: "연인"},
	{No: 2, CateID: "friend", Name: "친구"},
	{No: 3, CateID: "family", Name: "가족"},
	{No: 4, CateID: "group", Name: "단체모임"},
	{No: 5, CateID: "pet", Name: "반려동물"},
	{No: 6, CateID: "self", Name: "혼밥"},
}

// MateTypeLabel returns the display label for a category code.
// The second return value reports whether the code is known.
func MateTypeLabel(cateID string) (string, bool) {
	for _, t := range MateTypes {
		if t.CateID == cateID {
			return t.Name, true
		}
	}
	return "", false
}
