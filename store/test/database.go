package test

import (
	"context"
	"fmt"
	"os"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tidepool-org/dieticians/store"
	"github.com/tidepool-org/dieticians/test"
)

// TestStoreAddressEnv overrides the address of the mongo instance used by the repository suites
const TestStoreAddressEnv = "TIDEPOOL_TEST_STORE_ADDRESS"

var database *mongo.Database

func testStoreUri() string {
	if addr := os.Getenv(TestStoreAddressEnv); addr != "" {
		return (&store.Config{Hosts: addr}).GetConnectionString()
	}
	return "mongodb://127.0.0.1:27017"
}

// SetupDatabase connects to the test instance and selects a database unique to the
// parallel ginkgo process
func SetupDatabase() {
	client, err := store.Connect(context.Background(), testStoreUri())
	Expect(err).ToNot(HaveOccurred())

	name := fmt.Sprintf("dieticians_test_%s_%d", test.Faker.Lorem().Word(), ginkgo.GinkgoParallelProcess())
	database = client.Database(name)
	Expect(store.Ping(context.Background(), database)).To(Succeed())
}

func TeardownDatabase() {
	Expect(database).ToNot(BeNil())

	ctx := context.Background()
	Expect(database.Drop(ctx)).To(Succeed())
	Expect(database.Client().Disconnect(ctx)).To(Succeed())
	database = nil
}

func GetTestDatabase() *mongo.Database {
	Expect(database).ToNot(BeNil())
	return database
}
