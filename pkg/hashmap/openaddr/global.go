package openaddr

const (
	MaxLoadFactor = 0.5 // quadratic probing only reaches half the slots of a prime table
)
