package jumbo

import "time"

// Store identifies the Jumbo location used for all store-scoped queries.
type Store struct {
	ID            string  `json:"id" yaml:"id"`
	ComplexNumber string  `json:"complexNumber" yaml:"complexNumber"`
	Longitude     float64 `json:"longitude" yaml:"longitude"`
	Latitude      float64 `json:"latitude" yaml:"latitude"`
}

// Order is one delivery or pickup order, as reported by the mobile API.
type Order struct {
	ID       string       `json:"id"`
	Status   string       `json:"status"`
	Type     string       `json:"type"`
	Delivery *OrderWindow `json:"delivery,omitempty"`
	Pickup   *OrderWindow `json:"pickup,omitempty"`
}

// OrderWindow holds the date & time window during which an order will be
// delivered or can be picked up.
type OrderWindow struct {
	Date          string `json:"date"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
	Time          string `json:"time"`
}

// Window returns the delivery or pickup window, keyed by the order type.
// Orders of type "collection" carry their window in the pickup sub-object,
// all others in the delivery sub-object.
func (o Order) Window() *OrderWindow {
	if o.Type == "collection" {
		return o.Pickup
	}
	return o.Delivery
}

// SlotDay is one day's worth of delivery (or pickup) time slots.
type SlotDay struct {
	Day       string     `json:"day"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// Date parses the day field ("2006-01-02").
func (d SlotDay) Date() (time.Time, error) {
	return time.Parse("2006-01-02", d.Day)
}

// TimeSlot is a fixed time window during which delivery or pickup may occur.
type TimeSlot struct {
	StartDateTime time.Time `json:"startDateTime"`
	EndDateTime   time.Time `json:"endDateTime"`
	Available     bool      `json:"available"`
}

// Basket holds the current basket contents.
type Basket struct {
	Items  []BasketItem `json:"items"`
	Prices BasketPrices `json:"prices"`
}

// BasketItem is one line item in the basket.
type BasketItem struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// BasketPrices holds the basket's price summary.
type BasketPrices struct {
	Total Price `json:"total"`
}

// Price is an amount in cents with its currency.
type Price struct {
	Currency string `json:"currency"`
	Amount   int    `json:"amount"`
}

// envelope types: the mobile API wraps every payload in a named object with
// a "data" member.

type profileResponse struct {
	User struct {
		Data struct {
			Store Store `json:"store"`
		} `json:"data"`
	} `json:"user"`
}

type slotsResponse struct {
	TimeSlots struct {
		Data []SlotDay `json:"data"`
	} `json:"timeSlots"`
}

type ordersResponse struct {
	Orders struct {
		Data []Order `json:"data"`
	} `json:"orders"`
}

type basketResponse struct {
	Basket struct {
		Data Basket `json:"data"`
	} `json:"basket"`
}
