package topsis

// DefaultPrecision is the number of decimal digits scores are rounded to
// when presented.
const DefaultPrecision = 3
