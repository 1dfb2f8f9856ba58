package utils

import (
	"fmt"
	"strconv"
)

// ParseID mengubah string angka dari URL parameter menjadi uint64.
// ok=false kalau bukan angka positif.
func ParseID(str string) (uint64, bool) {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil || val == 0 {
		return 0, false
	}
	return val, true
}

// ParseOptionalID untuk query filter (?clientId=). String kosong = tidak difilter (nil).
func ParseOptionalID(str string) (*uint64, error) {
	if str == "" {
		return nil, nil
	}
	val, ok := ParseID(str)
	if !ok {
		return nil, fmt.Errorf("%q is not a valid id", str)
	}
	return &val, nil
}
