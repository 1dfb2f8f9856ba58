package models

// Bench adalah lokasi tempat appointment dilakukan.
type Bench struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	StreetName  string  `gorm:"size:100" json:"streetName"`
	HouseNumber string  `gorm:"size:10" json:"houseNumber"`
	Province    string  `gorm:"size:100" json:"province"`
	District    string  `gorm:"size:100" json:"district"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Version     int64   `gorm:"not null;default:1" json:"version"`
}

func (Bench) KeyColumn() string { return "id" }

func (b *Bench) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"name":         b.Name,
		"street_name":  b.StreetName,
		"house_number": b.HouseNumber,
		"province":     b.Province,
		"district":     b.District,
		"latitude":     b.Latitude,
		"longitude":    b.Longitude,
	}
}

type BenchInput struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name" binding:"required,max=100"`
	StreetName  string  `json:"streetName" binding:"required,max=100"`
	HouseNumber string  `json:"houseNumber" binding:"required,max=10"`
	Province    string  `json:"province" binding:"required,max=100"`
	District    string  `json:"district" binding:"required,max=100"`
	Latitude    float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude   float64 `json:"longitude" binding:"min=-180,max=180"`
	Version     int64   `json:"version"`
}

func (in BenchInput) ToBench() Bench {
	return Bench{
		ID:          in.ID,
		Name:        in.Name,
		StreetName:  in.StreetName,
		HouseNumber: in.HouseNumber,
		Province:    in.Province,
		District:    in.District,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		Version:     in.Version,
	}
}
