package domain

// Tool is a rentable catalog item. Prices are whole MNT per day.
type Tool struct {
	ID          int32   `json:"id"`
	PartNumber  *string `json:"part_number,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	// DailyPrice covers rentals of 1-7 days. DailyPriceLong is the 8-30 day
	// tier from the vendor price list; the schema carries it but pricing
	// currently charges DailyPrice for every duration.
	DailyPrice     int64  `json:"daily_price"`
	DailyPriceLong *int64 `json:"daily_price_8_30,omitempty"`
	AvailableQty   int32  `json:"available_qty"`
}

// Product is a purchasable catalog item. UnitPrice is whole MNT.
type Product struct {
	ID          int32  `json:"id"`
	PartNumber  string `json:"part_number"`
	Description string `json:"description"`
	UOM         string `json:"uom"`
	UnitPrice   int64  `json:"unit_price"`
}
