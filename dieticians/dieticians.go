package dieticians

import (
	"context"
	"fmt"
	"time"

	"github.com/tidepool-org/dieticians/deletions"
	"github.com/tidepool-org/dieticians/errors"
)

//go:generate go run go.uber.org/mock/mockgen -destination=./test/mock_dieticians.go -package=test . Repository,Service,Validator

const (
	CollectionName = "dieticians"

	DateOfBirthLayout = "2006-01-02"
)

var (
	ErrNotFound    = fmt.Errorf("dietician %w", errors.NotFound)
	ErrEmailInUse  = errors.NewMessageError(errors.Duplicate, "email already in use.")
	ErrHasPatients = fmt.Errorf("%w: dietician has patients", errors.Conflict)
)

type Dietician struct {
	Id             string    `json:"id" bson:"_id" structs:"id"`
	Email          string    `json:"email" bson:"email" structs:"email"`
	Password       string    `json:"password,omitempty" bson:"password" structs:"-"`
	FirstName      string    `json:"firstName" bson:"firstName" structs:"firstName"`
	LastName       string    `json:"lastName" bson:"lastName" structs:"lastName"`
	ContactNumber  string    `json:"contactNumber,omitempty" bson:"contactNumber,omitempty" structs:"contactNumber,omitempty"`
	DateOfBirth    string    `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty" structs:"dateOfBirth,omitempty"`
	HospitalName   string    `json:"hospitalName,omitempty" bson:"hospitalName,omitempty" structs:"hospitalName,omitempty"`
	HospitalStreet string    `json:"hospitalStreet,omitempty" bson:"hospitalStreet,omitempty" structs:"hospitalStreet,omitempty"`
	HospitalCity   string    `json:"hospitalCity,omitempty" bson:"hospitalCity,omitempty" structs:"hospitalCity,omitempty"`
	CreatedTime    time.Time `json:"-" bson:"createdTime,omitempty" structs:"-"`
	UpdatedTime    time.Time `json:"-" bson:"updatedTime,omitempty" structs:"-"`
}

type Repository interface {
	List(ctx context.Context) ([]*Dietician, error)
	Get(ctx context.Context, id string) (*Dietician, error)
	Save(ctx context.Context, dietician *Dietician) error
	Delete(ctx context.Context, id string, metadata deletions.Metadata) error
	// IsEmailInUse returns true if a dietician or a patient is registered with the email
	IsEmailInUse(ctx context.Context, email string) (bool, error)
}

type Service interface {
	List(ctx context.Context) ([]*Dietician, error)
	Get(ctx context.Context, id string) (*Dietician, error)
	Create(ctx context.Context, dietician *Dietician) (*Dietician, error)
	Update(ctx context.Context, current *Dietician, patch Patch) (*Dietician, error)
	Delete(ctx context.Context, current *Dietician, metadata deletions.Metadata) error
}

type Validator interface {
	Validate(dietician *Dietician) error
}
