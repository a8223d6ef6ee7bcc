package pricing

// MaterialField names an editable field of a MaterialLine.
type MaterialField uint8

const (
	MaterialName MaterialField = iota + 1
	MaterialUnitCost
	MaterialUnitSize
	MaterialQuantityUsed
)

// MaterialFields lists every editable material field in display order.
var MaterialFields = []MaterialField{MaterialName, MaterialUnitCost, MaterialUnitSize, MaterialQuantityUsed}

func (f MaterialField) String() string {
	switch f {
	case MaterialName:
		return "name"
	case MaterialUnitCost:
		return "cost"
	case MaterialUnitSize:
		return "size"
	case MaterialQuantityUsed:
		return "quantity"
	}
	return "unknown"
}

// ParseMaterialField maps a form field name to a MaterialField.
func ParseMaterialField(name string) (MaterialField, bool) {
	for _, f := range MaterialFields {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// MaterialLine is one material used by the product.
type MaterialLine struct {
	Name         string `json:"name"`
	UnitCost     string `json:"cost"`
	UnitSize     string `json:"size"`
	QuantityUsed string `json:"quantity"`
}

func (l *MaterialLine) Set(field MaterialField, value string) bool {
	switch field {
	case MaterialName:
		l.Name = value
	case MaterialUnitCost:
		l.UnitCost = value
	case MaterialUnitSize:
		l.UnitSize = value
	case MaterialQuantityUsed:
		l.QuantityUsed = value
	default:
		return false
	}
	return true
}

func (l *MaterialLine) Get(field MaterialField) string {
	switch field {
	case MaterialName:
		return l.Name
	case MaterialUnitCost:
		return l.UnitCost
	case MaterialUnitSize:
		return l.UnitSize
	case MaterialQuantityUsed:
		return l.QuantityUsed
	}
	return ""
}

func (l *MaterialLine) Total() float64 {
	return sizedTotal(l.UnitCost, l.UnitSize, l.QuantityUsed)
}

// ZeroUnitSize reports a unit size typed as a literal zero. Such lines
// divide by zero and their total is reported as 0.
func (l *MaterialLine) ZeroUnitSize() bool {
	return literalZero(l.UnitSize)
}

// PackagingField names an editable field of a PackagingLine.
type PackagingField uint8

const (
	PackagingDescription PackagingField = iota + 1
	PackagingUnitCost
	PackagingUnitSize
	PackagingQuantityUsed
)

// PackagingFields lists every editable packaging field in display order.
var PackagingFields = []PackagingField{PackagingDescription, PackagingUnitCost, PackagingUnitSize, PackagingQuantityUsed}

func (f PackagingField) String() string {
	switch f {
	case PackagingDescription:
		return "description"
	case PackagingUnitCost:
		return "cost"
	case PackagingUnitSize:
		return "size"
	case PackagingQuantityUsed:
		return "quantity"
	}
	return "unknown"
}

// ParsePackagingField maps a form field name to a PackagingField.
func ParsePackagingField(name string) (PackagingField, bool) {
	for _, f := range PackagingFields {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// PackagingLine is one packaging component (box, tissue, label...).
type PackagingLine struct {
	Description  string `json:"description"`
	UnitCost     string `json:"cost"`
	UnitSize     string `json:"size"`
	QuantityUsed string `json:"quantity"`
}

func (l *PackagingLine) Set(field PackagingField, value string) bool {
	switch field {
	case PackagingDescription:
		l.Description = value
	case PackagingUnitCost:
		l.UnitCost = value
	case PackagingUnitSize:
		l.UnitSize = value
	case PackagingQuantityUsed:
		l.QuantityUsed = value
	default:
		return false
	}
	return true
}

func (l *PackagingLine) Get(field PackagingField) string {
	switch field {
	case PackagingDescription:
		return l.Description
	case PackagingUnitCost:
		return l.UnitCost
	case PackagingUnitSize:
		return l.UnitSize
	case PackagingQuantityUsed:
		return l.QuantityUsed
	}
	return ""
}

func (l *PackagingLine) Total() float64 {
	return sizedTotal(l.UnitCost, l.UnitSize, l.QuantityUsed)
}

// ZeroUnitSize reports a unit size typed as a literal zero.
func (l *PackagingLine) ZeroUnitSize() bool {
	return literalZero(l.UnitSize)
}

// LaborField names an editable field of a LaborLine.
type LaborField uint8

const (
	LaborDescription LaborField = iota + 1
	LaborHourlyWage
	LaborHoursSpent
)

// LaborFields lists every editable labor field in display order.
var LaborFields = []LaborField{LaborDescription, LaborHourlyWage, LaborHoursSpent}

func (f LaborField) String() string {
	switch f {
	case LaborDescription:
		return "description"
	case LaborHourlyWage:
		return "hourlyWage"
	case LaborHoursSpent:
		return "time"
	}
	return "unknown"
}

// ParseLaborField maps a form field name to a LaborField.
func ParseLaborField(name string) (LaborField, bool) {
	for _, f := range LaborFields {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// LaborLine is one activity paid by the hour.
type LaborLine struct {
	Description string `json:"description"`
	HourlyWage  string `json:"hourlyWage"`
	HoursSpent  string `json:"time"`
}

func (l *LaborLine) Set(field LaborField, value string) bool {
	switch field {
	case LaborDescription:
		l.Description = value
	case LaborHourlyWage:
		l.HourlyWage = value
	case LaborHoursSpent:
		l.HoursSpent = value
	default:
		return false
	}
	return true
}

func (l *LaborLine) Get(field LaborField) string {
	switch field {
	case LaborDescription:
		return l.Description
	case LaborHourlyWage:
		return l.HourlyWage
	case LaborHoursSpent:
		return l.HoursSpent
	}
	return ""
}

func (l *LaborLine) Total() float64 {
	return ParseAmount(l.HourlyWage, 0) * ParseAmount(l.HoursSpent, 0)
}

// sizedTotal prices the used share of a purchased unit. An empty size counts
// as one unit; a non-finite result is reported as 0.
func sizedTotal(cost, size, quantity string) float64 {
	total := (ParseAmount(cost, 0) / ParseAmount(size, 1)) * ParseAmount(quantity, 0)
	if !isFinite(total) {
		return 0
	}
	return total
}

func literalZero(raw string) bool {
	return raw != "" && ParseAmount(raw, 1) == 0
}
