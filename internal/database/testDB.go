package database

import (
	"context"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
)

// Seeded fixture accounts. Tests reference these instead of inventing rows.
var (
	AdminUser = model.User{
		ID:    "local|admin@pythonvietnam.dev",
		Email: Ptr("admin@pythonvietnam.dev"),
		Name:  "Administrator",
		Role:  model.RoleAdmin,
	}
	EmployerUser1 = model.User{
		ID:    "google-oauth2|employer-one",
		Email: Ptr("employer1@example.com"),
		Name:  "First Employer",
		Role:  model.RoleEmployer,
	}
	EmployerUser2 = model.User{
		ID:    "google-oauth2|employer-two",
		Email: Ptr("employer2@example.com"),
		Name:  "Second Employer",
		Role:  model.RoleEmployer,
	}
	PlainUser = model.User{
		ID:    "google-oauth2|plain-user",
		Email: Ptr("user@example.com"),
		Name:  "Plain User",
		Role:  model.RoleUser,
	}
)

// AdminPassword is the seeded admin's plaintext password for login tests.
const AdminPassword = "test-admin-password"

// Ptr returns a pointer to v for filling optional fields in fixtures.
func Ptr[T any](v T) *T {
	return &v
}

// GetTestDB spins up a throwaway postgres container, migrates the schema and
// seeds the fixture rows. The container is torn down with the test.
func GetTestDB(t *testing.T) *DBinstanceStruct {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("pythonvietnam_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(wait.ForAll(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
			wait.ForListeningPort(nat.Port("5432/tcp")),
		).WithStartupTimeoutDefault(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("container connection string: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}

	instance := &DBinstanceStruct{DB: db}
	if err := instance.Migrate(); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	if err := instance.seedTestData(); err != nil {
		t.Fatalf("seed test database: %v", err)
	}
	return instance
}

func (d *DBinstanceStruct) seedTestData() error {
	hash, err := utilities.HashPassword(AdminPassword)
	if err != nil {
		return err
	}
	admin := AdminUser
	admin.PasswordHash = &hash

	users := []model.User{admin, EmployerUser1, EmployerUser2, PlainUser}
	if err := d.DB.Create(&users).Error; err != nil {
		return err
	}

	jobs := []model.Job{
		{
			UserID: EmployerUser1.ID,
			EditableJobInfo: model.EditableJobInfo{
				Slug:        "senior-python-developer-hanoi",
				Title:       "Senior Python Developer",
				Company:     "First Employer Co",
				Location:    "Hanoi",
				Type:        model.JobTypeFullTime,
				Category:    "Backend",
				Description: "Build and operate Python services for our core platform.",
			},
		},
		{
			UserID: EmployerUser1.ID,
			EditableJobInfo: model.EditableJobInfo{
				Slug:        "data-engineer-remote",
				Title:       "Data Engineer",
				Company:     "First Employer Co",
				Location:    "Remote",
				Type:        model.JobTypeContract,
				Category:    "Data",
				Description: "Design data pipelines feeding the analytics warehouse.",
			},
		},
		{
			UserID: EmployerUser2.ID,
			EditableJobInfo: model.EditableJobInfo{
				Slug:        "django-developer-saigon",
				Title:       "Django Developer",
				Company:     "Second Employer Ltd",
				Location:    "Ho Chi Minh City",
				Type:        model.JobTypePartTime,
				Category:    "Web",
				Description: "Maintain and extend a large Django monolith.",
			},
		},
	}
	if err := d.DB.Create(&jobs).Error; err != nil {
		return err
	}

	posts := []model.BlogPost{
		{
			EditablePostInfo: model.EditablePostInfo{
				Slug:        "welcome-to-python-vietnam",
				Title:       "Welcome to Python Vietnam",
				Author:      "Administrator",
				Category:    "Community",
				Description: "What this community is about and how to join.",
				ImageURL:    "https://picsum.photos/seed/welcome/600/400",
				Content:     "Python Vietnam connects Vietnamese Python developers with each other and with companies hiring locally and remotely.",
			},
		},
		{
			EditablePostInfo: model.EditablePostInfo{
				Slug:        "asyncio-in-production",
				Title:       "Running asyncio in Production",
				Author:      "Administrator",
				Category:    "Engineering",
				Description: "Lessons learned from running asyncio services for two years.",
				ImageURL:    "https://picsum.photos/seed/asyncio/600/400",
				Content:     "Event loops are easy to start and hard to operate. This post collects the patterns that kept our asyncio services healthy under load.",
			},
		},
	}
	return d.DB.Create(&posts).Error
}
