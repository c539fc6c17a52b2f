package domain

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in-progress"
	OrderReady      OrderStatus = "ready"
	OrderServed     OrderStatus = "served"
	OrderSettled    OrderStatus = "settled"
)

var orderFlow = map[OrderStatus]int{
	OrderPending:    0,
	OrderInProgress: 1,
	OrderReady:      2,
	OrderServed:     3,
	OrderSettled:    4,
}

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderFlow[s]
	return ok
}

// CanTransition reports whether an order may move from current to next.
// Orders advance one step at a time along
// pending -> in-progress -> ready -> served -> settled, may re-enter their
// current status (which restamps its timestamp), and may be settled from any
// open status once paid. Settled is terminal.
func CanTransition(current, next OrderStatus) bool {
	from, ok := orderFlow[current]
	if !ok {
		return false
	}
	to, ok := orderFlow[next]
	if !ok {
		return false
	}
	if current == OrderSettled {
		return false
	}
	if next == OrderSettled || from == to {
		return true
	}
	return to == from+1
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableDirty     TableStatus = "dirty"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableDirty:
		return true
	}
	return false
}

type KotStatus string

const (
	KotNew        KotStatus = "new"
	KotInProgress KotStatus = "in-progress"
	KotCompleted  KotStatus = "completed"
)

func (s KotStatus) Valid() bool {
	switch s {
	case KotNew, KotInProgress, KotCompleted:
		return true
	}
	return false
}

type Station string

const (
	StationKitchen Station = "kitchen"
	StationBar     Station = "bar"
	StationPastry  Station = "pastry"
)

func (s Station) Valid() bool {
	switch s {
	case StationKitchen, StationBar, StationPastry:
		return true
	}
	return false
}

// StationFor maps a menu category to the station that prepares it.
func StationFor(c Category) Station {
	switch c {
	case CategoryCoffee, CategoryTea:
		return StationBar
	case CategoryPastry:
		return StationPastry
	default:
		return StationKitchen
	}
}
