package models

// Field names, in CSV column order.
const (
	FieldNumber  = "number"
	FieldISO3    = "iso3"
	FieldISO2    = "iso2"
	FieldName    = "name"
	FieldIDC     = "idc"
	FieldRegionA = "region_a"
	FieldRegionB = "region_b"
	FieldRegionC = "region_c"
	FieldRegionD = "region_d"
)

// Columns is the fixed output column order.
var Columns = []string{
	FieldNumber, FieldISO3, FieldISO2, FieldName, FieldIDC,
	FieldRegionA, FieldRegionB, FieldRegionC, FieldRegionD,
}

// RegionFields lists the dialing sub-region fields in assignment order.
var RegionFields = []string{FieldRegionA, FieldRegionB, FieldRegionC, FieldRegionD}

// Record is a single country. Optional fields are empty when unknown.
type Record struct {
	ISO3    string `json:"iso3" yaml:"iso3"`
	ISO2    string `json:"iso2" yaml:"iso2"`
	Number  string `json:"number" yaml:"number"`
	Name    string `json:"name" yaml:"name"`
	IDC     string `json:"idc,omitempty" yaml:"idc,omitempty"`
	RegionA string `json:"region_a,omitempty" yaml:"region_a,omitempty"`
	RegionB string `json:"region_b,omitempty" yaml:"region_b,omitempty"`
	RegionC string `json:"region_c,omitempty" yaml:"region_c,omitempty"`
	RegionD string `json:"region_d,omitempty" yaml:"region_d,omitempty"`
}

// Field returns the value of the named field, or "" for an unknown name.
func (r Record) Field(name string) string {
	switch name {
	case FieldNumber:
		return r.Number
	case FieldISO3:
		return r.ISO3
	case FieldISO2:
		return r.ISO2
	case FieldName:
		return r.Name
	case FieldIDC:
		return r.IDC
	case FieldRegionA:
		return r.RegionA
	case FieldRegionB:
		return r.RegionB
	case FieldRegionC:
		return r.RegionC
	case FieldRegionD:
		return r.RegionD
	}
	return ""
}

// Values returns every field keyed by name.
func (r Record) Values() map[string]string {
	values := make(map[string]string, len(Columns))
	for _, c := range Columns {
		values[c] = r.Field(c)
	}
	return values
}

// Row returns the fields in Columns order.
func (r Record) Row() []string {
	row := make([]string, len(Columns))
	for i, c := range Columns {
		row[i] = r.Field(c)
	}
	return row
}

// Regions returns the non-empty region codes in order.
func (r Record) Regions() []string {
	var regions []string
	for _, f := range RegionFields {
		if v := r.Field(f); v != "" {
			regions = append(regions, v)
		}
	}
	return regions
}

// HasIDC reports whether a dialing code has been attached.
func (r Record) HasIDC() bool {
	return r.IDC != ""
}

// WithDialing returns a copy of r carrying idc and up to four region codes.
// Region fields beyond the supplied codes are cleared.
func (r Record) WithDialing(idc string, regions []string) Record {
	r.IDC = idc
	slots := []*string{&r.RegionA, &r.RegionB, &r.RegionC, &r.RegionD}
	for i, slot := range slots {
		if i < len(regions) {
			*slot = regions[i]
		} else {
			*slot = ""
		}
	}
	return r
}
