package pixorder

// kahanSum accumulates a sum with compensation for
// floating-point rounding.
type kahanSum struct {
	sum          float64
	compensation float64
}

func (k *kahanSum) Add(n float64) {
	n -= k.compensation
	sum := k.sum + n
	k.compensation = (sum - k.sum) - n
	k.sum = sum
}

func (k *kahanSum) Sum() float64 {
	return k.sum
}
