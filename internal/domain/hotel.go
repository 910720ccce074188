package domain

type Hotel struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	Stars int    `json:"stars"`
}

// Room.HotelID is not checked against existing hotels.
type Room struct {
	ID       int64   `json:"id"`
	HotelID  int64   `json:"hotel_id"`
	RoomType string  `json:"room_type"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}
