package service_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tidepool-org/dieticians/deletions"
	"github.com/tidepool-org/dieticians/dieticians"
	dieticiansService "github.com/tidepool-org/dieticians/dieticians/service"
	dieticiansTest "github.com/tidepool-org/dieticians/dieticians/test"
	"github.com/tidepool-org/dieticians/errors"
	"github.com/tidepool-org/dieticians/openapi"
	"github.com/tidepool-org/dieticians/outbox"
	outboxTest "github.com/tidepool-org/dieticians/outbox/test"
	"github.com/tidepool-org/dieticians/patients"
	patientsTest "github.com/tidepool-org/dieticians/patients/test"
	"github.com/tidepool-org/dieticians/test"
)

var _ = Describe("Dieticians Service", func() {
	var service dieticians.Service
	var repo *dieticiansTest.MockRepository
	var patientsRepo *patientsTest.MockRepository
	var outboxRepo *outboxTest.MockRepository
	var ctrl *gomock.Controller
	var logs *observer.ObservedLogs

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repo = dieticiansTest.NewMockRepository(ctrl)
		patientsRepo = patientsTest.NewMockRepository(ctrl)
		outboxRepo = outboxTest.NewMockRepository(ctrl)

		doc, err := openapi.Load()
		Expect(err).ToNot(HaveOccurred())
		validator, err := dieticians.NewSchemaValidator(doc)
		Expect(err).ToNot(HaveOccurred())

		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		service, err = dieticiansService.NewService(repo, patientsRepo, outboxRepo, validator, zap.New(core).Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Create", func() {
		var dietician *dieticians.Dietician

		BeforeEach(func() {
			dietician = dieticiansTest.RandomDieticianCreate()
		})

		It("assigns an id and a password", func() {
			repo.EXPECT().IsEmailInUse(gomock.Any(), dietician.Email).Return(false, nil)
			repo.EXPECT().Save(gomock.Any(), test.Match(func(d *dieticians.Dietician) bool {
				return d.Id != "" && d.Password != "" && d.Email == dietician.Email && d.FirstName == dietician.FirstName
			})).Return(nil)
			outboxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			created, err := service.Create(context.Background(), dietician)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).ToNot(BeEmpty())
			Expect(created.Password).To(MatchRegexp("^[0-9a-f]{32}$"))
			Expect(created.LastName).To(Equal(dietician.LastName))
			Expect(created.HospitalCity).To(Equal(dietician.HospitalCity))
		})

		It("discards a client supplied id and password", func() {
			dietician.Id = "chosen-by-client"
			dietician.Password = "chosen-by-client"
			repo.EXPECT().IsEmailInUse(gomock.Any(), gomock.Any()).Return(false, nil)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			outboxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

			created, err := service.Create(context.Background(), dietician)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).ToNot(Equal("chosen-by-client"))
			Expect(created.Password).ToNot(Equal("chosen-by-client"))
		})

		It("assigns unique ids and passwords", func() {
			repo.EXPECT().IsEmailInUse(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			outboxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(2)

			first, err := service.Create(context.Background(), dieticiansTest.RandomDieticianCreate())
			Expect(err).ToNot(HaveOccurred())
			second, err := service.Create(context.Background(), dieticiansTest.RandomDieticianCreate())
			Expect(err).ToNot(HaveOccurred())

			Expect(first.Id).ToNot(Equal(second.Id))
			Expect(first.Password).ToNot(Equal(second.Password))
		})

		It("enqueues a welcome email for the new dietician", func() {
			var saved *dieticians.Dietician
			repo.EXPECT().IsEmailInUse(gomock.Any(), gomock.Any()).Return(false, nil)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, d *dieticians.Dietician) error {
				saved = d
				return nil
			})
			outboxRepo.EXPECT().Create(gomock.Any(), test.Match(func(event outbox.Event) bool {
				payload := outbox.SendDieticianWelcomeEmailPayload{}
				if err := event.DecodePayload(&payload); err != nil {
					return false
				}
				return event.EventType == outbox.EventTypeSendDieticianWelcomeEmail &&
					payload.DieticianId == saved.Id &&
					payload.DieticianEmail == dietician.Email &&
					payload.DieticianName == dietician.FirstName+" "+dietician.LastName
			})).Return(nil)

			created, err := service.Create(context.Background(), dietician)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).To(Equal(saved.Id))
		})

		It("returns the created dietician when the welcome email cannot be enqueued", func() {
			repo.EXPECT().IsEmailInUse(gomock.Any(), gomock.Any()).Return(false, nil)
			repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			outboxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection lost"))

			created, err := service.Create(context.Background(), dietician)
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Id).ToNot(BeEmpty())
		})

		It("does not store the dietician when the email is in use", func() {
			repo.EXPECT().IsEmailInUse(gomock.Any(), dietician.Email).Return(true, nil)

			_, err := service.Create(context.Background(), dietician)
			Expect(err).To(MatchError(dieticians.ErrEmailInUse))
			Expect(err).To(MatchError(errors.Duplicate))
		})

		It("does not log the email which is in use", func() {
			repo.EXPECT().IsEmailInUse(gomock.Any(), dietician.Email).Return(true, nil)

			_, err := service.Create(context.Background(), dietician)
			Expect(err).To(HaveOccurred())

			Expect(logs.FilterMessage("unable to create dietician, email is already in use").Len()).To(Equal(1))
			for _, entry := range logs.All() {
				Expect(entry.Level).To(Equal(zapcore.DebugLevel))
				Expect(entry.Message).ToNot(ContainSubstring(dietician.Email))
				for _, value := range entry.ContextMap() {
					Expect(fmt.Sprint(value)).ToNot(ContainSubstring(dietician.Email))
				}
			}
		})

		It("returns repository errors", func() {
			repo.EXPECT().IsEmailInUse(gomock.Any(), gomock.Any()).Return(false, fmt.Errorf("connection lost"))

			_, err := service.Create(context.Background(), dietician)
			Expect(err).To(MatchError("connection lost"))
		})
	})

	Describe("Update", func() {
		var current *dieticians.Dietician

		BeforeEach(func() {
			current = dieticiansTest.RandomDietician()
		})

		It("stores the patched dietician", func() {
			repo.EXPECT().Save(gomock.Any(), test.Match(func(d *dieticians.Dietician) bool {
				return d.Id == current.Id && d.HospitalName == "General" && d.Email == current.Email
			})).Return(nil)

			updated, err := service.Update(context.Background(), current, dieticians.Patch{
				"hospitalName": "General",
				"email":        "ignored@example.com",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.HospitalName).To(Equal("General"))
			Expect(updated.Email).To(Equal(current.Email))
			Expect(updated.Password).To(Equal(current.Password))
		})

		It("does not store a dietician which fails validation", func() {
			_, err := service.Update(context.Background(), current, dieticians.Patch{
				"firstName": "",
			})
			Expect(err).To(MatchError(errors.BadRequest))
			Expect(err.(errors.ValidationError).Fields).To(HaveKey("firstName"))
		})

		It("does not store a dietician when a value cannot be applied", func() {
			_, err := service.Update(context.Background(), current, dieticians.Patch{
				"lastName": []interface{}{"Jones"},
			})
			Expect(err).To(MatchError(errors.BadRequest))
		})
	})

	Describe("Delete", func() {
		var current *dieticians.Dietician
		var metadata deletions.Metadata

		BeforeEach(func() {
			current = dieticiansTest.RandomDietician()
			userId := test.Faker.UUID().V4()
			metadata = deletions.Metadata{DeletedByUserId: &userId}
		})

		It("deletes a dietician without patients", func() {
			patientsRepo.EXPECT().ListByDieticianId(gomock.Any(), current.Id).Return([]*patients.Patient{}, nil)
			repo.EXPECT().Delete(gomock.Any(), current.Id, metadata).Return(nil)

			Expect(service.Delete(context.Background(), current, metadata)).To(Succeed())
		})

		It("refuses to delete a dietician with patients", func() {
			patientsRepo.EXPECT().ListByDieticianId(gomock.Any(), current.Id).Return([]*patients.Patient{
				patientsTest.RandomPatient(current.Id),
			}, nil)

			err := service.Delete(context.Background(), current, metadata)
			Expect(err).To(MatchError(dieticians.ErrHasPatients))
			Expect(err).To(MatchError(errors.Conflict))
		})
	})

	Describe("Get", func() {
		It("returns not found errors from the repository", func() {
			repo.EXPECT().Get(gomock.Any(), "missing").Return(nil, dieticians.ErrNotFound)

			_, err := service.Get(context.Background(), "missing")
			Expect(err).To(MatchError(errors.NotFound))
		})
	})
})
