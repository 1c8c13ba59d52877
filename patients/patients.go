package patients

import (
	"context"
	"fmt"
	"time"

	"github.com/tidepool-org/dieticians/errors"
)

//go:generate go run go.uber.org/mock/mockgen -destination=./test/mock_patients.go -package=test . Repository

const (
	CollectionName = "patients"
)

var ErrDuplicate = fmt.Errorf("%w: patient email is already registered", errors.Duplicate)

type Patient struct {
	Id          string    `json:"id" bson:"_id"`
	DieticianId string    `json:"dieticianId" bson:"dieticianId"`
	Email       string    `json:"email" bson:"email"`
	FirstName   string    `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty" bson:"lastName,omitempty"`
	CreatedTime time.Time `json:"-" bson:"createdTime,omitempty"`
}

type Repository interface {
	ListByDieticianId(ctx context.Context, dieticianId string) ([]*Patient, error)
	Create(ctx context.Context, patient *Patient) (*Patient, error)
}
