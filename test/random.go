package test

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

// Dieticians, patients and tokens in the suites are generated from the ginkgo seed, a
// failing run is replayed with `ginkgo --seed <seed>`
var (
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
	Rand   = rand.New(Source)
	Faker  = faker.NewWithSeed(Source)
)

// RandomDigits returns n random decimal digits, e.g. for contact numbers
func RandomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + Rand.Intn(10))
	}
	return string(digits)
}
