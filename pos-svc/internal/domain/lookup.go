package domain

// Cross-entity references are plain ids. These lookups are the only way the
// rest of the code resolves them, and every caller must handle the missing
// case.

func (s State) Order(id string) (Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

func (s State) Table(id string) (Table, bool) {
	for _, t := range s.Tables {
		if t.ID == id {
			return t, true
		}
	}
	return Table{}, false
}

func (s State) Ticket(id string) (KotEvent, bool) {
	for _, k := range s.KotTickets {
		if k.ID == id {
			return k, true
		}
	}
	return KotEvent{}, false
}

// TicketsForOrder returns every ticket fired for the order, across stations.
func (s State) TicketsForOrder(orderID string) []KotEvent {
	var tickets []KotEvent
	for _, k := range s.KotTickets {
		if k.OrderID == orderID {
			tickets = append(tickets, k)
		}
	}
	return tickets
}

func (s State) MenuItem(id string) (MenuItem, bool) {
	for _, m := range s.Menu {
		if m.ID == id {
			return m, true
		}
	}
	return MenuItem{}, false
}

func (s State) Recipe(id string) (Recipe, bool) {
	if id == "" {
		return Recipe{}, false
	}
	for _, r := range s.Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

func (s State) InventoryItem(id string) (InventoryItem, bool) {
	for _, i := range s.Inventory {
		if i.ID == id {
			return i, true
		}
	}
	return InventoryItem{}, false
}

func (s State) Waiter(id string) (Waiter, bool) {
	for _, w := range s.Waiters {
		if w.ID == id {
			return w, true
		}
	}
	return Waiter{}, false
}
