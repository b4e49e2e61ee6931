package seq

// FastForward moves c to count without producing the values in between.
func FastForward(c *Counter, count uint32) {
	c.count = count
}
