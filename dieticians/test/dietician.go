package test

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidepool-org/dieticians/dieticians"
	"github.com/tidepool-org/dieticians/test"
)

var (
	minBirthDate = time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxBirthDate = time.Date(2000, time.December, 31, 0, 0, 0, 0, time.UTC)
)

func RandomDietician() *dieticians.Dietician {
	return &dieticians.Dietician{
		Id:             test.Faker.UUID().V4(),
		Email:          test.Faker.Internet().Email(),
		Password:       strings.ReplaceAll(test.Faker.UUID().V4(), "-", ""),
		FirstName:      test.Faker.Person().FirstName(),
		LastName:       test.Faker.Person().LastName(),
		ContactNumber:  RandomContactNumber(),
		DateOfBirth:    test.Faker.Time().TimeBetween(minBirthDate, maxBirthDate).Format(dieticians.DateOfBirthLayout),
		HospitalName:   fmt.Sprintf("%s Hospital", test.Faker.Address().City()),
		HospitalStreet: test.Faker.Address().StreetAddress(),
		HospitalCity:   test.Faker.Address().City(),
	}
}

// RandomDieticianCreate returns a dietician as submitted by a client, without server assigned attributes
func RandomDieticianCreate() *dieticians.Dietician {
	dietician := RandomDietician()
	dietician.Id = ""
	dietician.Password = ""
	return dietician
}

func RandomContactNumber() string {
	return fmt.Sprintf("+1 %d%s %s %s", test.Rand.Intn(9)+1, test.RandomDigits(2), test.RandomDigits(3), test.RandomDigits(4))
}
