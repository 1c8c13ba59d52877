package api

import (
	"github.com/tidepool-org/dieticians/dieticians"
	"github.com/tidepool-org/dieticians/pointer"
)

// NewDietician converts a create request to a dietician. The id and the password are assigned by the service.
func NewDietician(dto Dietician) *dieticians.Dietician {
	return &dieticians.Dietician{
		Email:          dto.Email,
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		ContactNumber:  pointer.ToString(dto.ContactNumber),
		DateOfBirth:    pointer.ToString(dto.DateOfBirth),
		HospitalName:   pointer.ToString(dto.HospitalName),
		HospitalStreet: pointer.ToString(dto.HospitalStreet),
		HospitalCity:   pointer.ToString(dto.HospitalCity),
	}
}

func NewDieticianDto(d *dieticians.Dietician) Dietician {
	return Dietician{
		Id:             pointer.FromNonEmptyString(d.Id),
		Email:          d.Email,
		Password:       pointer.FromNonEmptyString(d.Password),
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		ContactNumber:  pointer.FromNonEmptyString(d.ContactNumber),
		DateOfBirth:    pointer.FromNonEmptyString(d.DateOfBirth),
		HospitalName:   pointer.FromNonEmptyString(d.HospitalName),
		HospitalStreet: pointer.FromNonEmptyString(d.HospitalStreet),
		HospitalCity:   pointer.FromNonEmptyString(d.HospitalCity),
	}
}

func NewDieticiansDto(list []*dieticians.Dietician) Dieticians {
	dtos := make(Dieticians, 0, len(list))
	for _, d := range list {
		dtos = append(dtos, NewDieticianDto(d))
	}
	return dtos
}

func NewPatch(dto DieticianPatch) dieticians.Patch {
	patch := make(dieticians.Patch, len(dto))
	for k, v := range dto {
		patch[k] = v
	}
	return patch
}
