package repository_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/tidepool-org/dieticians/deletions"
	"github.com/tidepool-org/dieticians/dieticians"
	dieticiansRepository "github.com/tidepool-org/dieticians/dieticians/repository"
	dieticiansTest "github.com/tidepool-org/dieticians/dieticians/test"
	"github.com/tidepool-org/dieticians/patients"
	patientsTest "github.com/tidepool-org/dieticians/patients/test"
	dbTest "github.com/tidepool-org/dieticians/store/test"
	"github.com/tidepool-org/dieticians/test"
)

var _ = Describe("Dieticians Repository", func() {
	var repo dieticians.Repository
	var database *mongo.Database
	var collection *mongo.Collection
	var app *fxtest.Lifecycle

	BeforeEach(func() {
		var err error
		database = dbTest.GetTestDatabase()
		collection = database.Collection(dieticians.CollectionName)
		app = fxtest.NewLifecycle(GinkgoT())
		repo, err = dieticiansRepository.NewRepository(database, zap.NewNop().Sugar(), app)
		Expect(err).ToNot(HaveOccurred())
		Expect(repo).ToNot(BeNil())
		app.RequireStart()
	})

	AfterEach(func() {
		app.RequireStop()
	})

	Context("with existing dieticians", func() {
		var existing []*dieticians.Dietician

		BeforeEach(func() {
			existing = nil
			for i := 0; i < 3; i++ {
				dietician := dieticiansTest.RandomDietician()
				Expect(repo.Save(context.Background(), dietician)).To(Succeed())
				existing = append(existing, dietician)
			}
		})

		AfterEach(func() {
			for _, dietician := range existing {
				_, err := collection.DeleteOne(context.Background(), bson.M{"_id": dietician.Id})
				Expect(err).ToNot(HaveOccurred())
			}
		})

		Describe("List", func() {
			It("returns all dieticians", func() {
				list, err := repo.List(context.Background())
				Expect(err).ToNot(HaveOccurred())

				ids := make([]string, 0, len(list))
				for _, d := range list {
					ids = append(ids, d.Id)
				}
				for _, d := range existing {
					Expect(ids).To(ContainElement(d.Id))
				}
			})
		})

		Describe("Get", func() {
			It("returns the dietician", func() {
				dietician, err := repo.Get(context.Background(), existing[1].Id)
				Expect(err).ToNot(HaveOccurred())
				Expect(dietician.Email).To(Equal(existing[1].Email))
				Expect(dietician.Password).To(Equal(existing[1].Password))
				Expect(dietician.HospitalCity).To(Equal(existing[1].HospitalCity))
			})

			It("returns not found for an unknown id", func() {
				_, err := repo.Get(context.Background(), test.Faker.UUID().V4())
				Expect(err).To(MatchError(dieticians.ErrNotFound))
			})
		})

		Describe("Save", func() {
			It("replaces the existing document", func() {
				dietician := *existing[0]
				dietician.LastName = "Jones"
				dietician.HospitalName = ""
				Expect(repo.Save(context.Background(), &dietician)).To(Succeed())

				stored, err := repo.Get(context.Background(), dietician.Id)
				Expect(err).ToNot(HaveOccurred())
				Expect(stored.LastName).To(Equal("Jones"))
				Expect(stored.HospitalName).To(BeEmpty())
				Expect(stored.CreatedTime).ToNot(BeZero())
				Expect(stored.UpdatedTime).ToNot(BeZero())

				count, err := collection.CountDocuments(context.Background(), bson.M{"_id": dietician.Id})
				Expect(err).ToNot(HaveOccurred())
				Expect(count).To(Equal(int64(1)))
			})

			It("rejects a second dietician with the same email", func() {
				dietician := dieticiansTest.RandomDietician()
				dietician.Email = existing[2].Email

				err := repo.Save(context.Background(), dietician)
				Expect(err).To(MatchError(dieticians.ErrEmailInUse))
			})
		})

		Describe("IsEmailInUse", func() {
			It("returns true for the email of a dietician", func() {
				inUse, err := repo.IsEmailInUse(context.Background(), existing[0].Email)
				Expect(err).ToNot(HaveOccurred())
				Expect(inUse).To(BeTrue())
			})

			It("returns true for the email of a patient", func() {
				patient := patientsTest.RandomPatient(existing[0].Id)
				patientsCollection := database.Collection(patients.CollectionName)
				_, err := patientsCollection.InsertOne(context.Background(), patient)
				Expect(err).ToNot(HaveOccurred())
				DeferCleanup(func() {
					_, err := patientsCollection.DeleteOne(context.Background(), bson.M{"_id": patient.Id})
					Expect(err).ToNot(HaveOccurred())
				})

				inUse, err := repo.IsEmailInUse(context.Background(), patient.Email)
				Expect(err).ToNot(HaveOccurred())
				Expect(inUse).To(BeTrue())
			})

			It("returns false for an unused email", func() {
				inUse, err := repo.IsEmailInUse(context.Background(), test.Faker.Internet().Email())
				Expect(err).ToNot(HaveOccurred())
				Expect(inUse).To(BeFalse())
			})
		})

		Describe("Delete", func() {
			It("removes the dietician and archives it", func() {
				deletedBy := test.Faker.UUID().V4()
				dietician := existing[0]
				Expect(repo.Delete(context.Background(), dietician.Id, deletions.Metadata{DeletedByUserId: &deletedBy})).To(Succeed())

				_, err := repo.Get(context.Background(), dietician.Id)
				Expect(err).To(MatchError(dieticians.ErrNotFound))

				archived, err := dieticiansRepository.NewDeletionsArchive(database, zap.NewNop().Sugar()).FindByDocumentId(context.Background(), dietician.Id)
				Expect(err).ToNot(HaveOccurred())
				Expect(archived).To(HaveLen(1))
				Expect(archived[0].DeletedByUserId).To(HaveValue(Equal(deletedBy)))
				Expect(archived[0].DeletedTime).ToNot(BeZero())
				Expect(archived[0].Document.Email).To(Equal(dietician.Email))
			})

			It("returns not found for an unknown id", func() {
				err := repo.Delete(context.Background(), test.Faker.UUID().V4(), deletions.Metadata{})
				Expect(err).To(MatchError(dieticians.ErrNotFound))
			})
		})
	})
})
