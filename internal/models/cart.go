// internal/models/cart.go
package models

// CartItem is one cart line: a product in a specific size. Name, price and
// image are snapshots taken when the line was created and are not re-synced
// against the catalog.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
}

// Cart holds line items in insertion order plus two derived fields. Total and
// ItemCount are never adjusted directly; every mutation rebuilds them from
// the item list.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func NewCart() Cart {
	return Cart{Items: []CartItem{}}
}

// Add returns the cart with item merged in. A line with the same product and
// size absorbs the quantity; otherwise item is appended as a new line and its
// ID is kept. The receiver is not modified.
func (c Cart) Add(item CartItem) Cart {
	next := c.clone()
	merged := false
	for i := range next.Items {
		if next.Items[i].ProductID == item.ProductID && next.Items[i].Size == item.Size {
			next.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		next.Items = append(next.Items, item)
	}
	next.recalculate()
	return next
}

// UpdateQuantity sets the quantity of the line with lineID. A quantity of
// zero or less removes the line. An unknown lineID leaves the items as they
// were; totals are rebuilt either way.
func (c Cart) UpdateQuantity(lineID string, quantity int) Cart {
	next := c.clone()
	for i := range next.Items {
		if next.Items[i].ID == lineID {
			if quantity <= 0 {
				next.Items = append(next.Items[:i], next.Items[i+1:]...)
			} else {
				next.Items[i].Quantity = quantity
			}
			break
		}
	}
	next.recalculate()
	return next
}

// Remove drops the line with lineID if present.
func (c Cart) Remove(lineID string) Cart {
	next := Cart{Items: make([]CartItem, 0, len(c.Items))}
	for _, item := range c.Items {
		if item.ID != lineID {
			next.Items = append(next.Items, item)
		}
	}
	next.recalculate()
	return next
}

func (c *Cart) recalculate() {
	total := 0.0
	count := 0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
		count += item.Quantity
	}
	c.Total = total
	c.ItemCount = count
}

func (c Cart) clone() Cart {
	next := c
	next.Items = make([]CartItem, len(c.Items))
	copy(next.Items, c.Items)
	return next
}
