package types

// Standard table names for the device catalog.
const (
	TableServos = "servos"
	TableSonars = "sonars"
)

// TableNames lists the standard tables in display order.
var TableNames = []string{TableServos, TableSonars}
