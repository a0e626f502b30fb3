package integration_test

const (
	dbName         = "airline_reservation"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	migrationsSource = "file://../../migrations"

	TestAdminUsername = "ops"
	TestAdminPassword = "Test123!@#"

	TestRegistration = "TC-JNA"
	TestFlightNumber = "TK1923"
	TestDeparture    = "2095-07-01T09:00:00Z"
	TestArrival      = "2095-07-01T10:15:00Z"
)
