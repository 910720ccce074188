package domain

// Flight.IsCheapest is written by the most recent search whose filter matched
// the flight; it is not an intrinsic property of the flight.
type Flight struct {
	ID             int64   `json:"id"`
	FromCity       string  `json:"from_city"`
	ToCity         string  `json:"to_city"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"available_seats"`
	IsCheapest     bool    `json:"is_cheapest"`
}

type FlightSearch struct {
	FromCity   string
	ToCity     string
	Passengers int
}
