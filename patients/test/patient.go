package test

import (
	"github.com/tidepool-org/dieticians/patients"
	"github.com/tidepool-org/dieticians/test"
)

func RandomPatient(dieticianId string) *patients.Patient {
	return &patients.Patient{
		Id:          test.Faker.UUID().V4(),
		DieticianId: dieticianId,
		Email:       test.Faker.Internet().Email(),
		FirstName:   test.Faker.Person().FirstName(),
		LastName:    test.Faker.Person().LastName(),
	}
}
