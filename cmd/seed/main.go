package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ianlcz/gestidogs-api-server-sub000/internal/config"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/database"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/activity"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/dog"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/establishment"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/reservation"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/session"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/domain/user"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/pkg/principal"
	"github.com/ianlcz/gestidogs-api-server-sub000/internal/server"
)

const seedPassword = "gestidogs123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if config.IsProdLike(cfg.AppEnv) {
		log.Fatalf("refusing to seed APP_ENV=%s", cfg.AppEnv)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := server.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{
		"payments", "observations", "holidays", "reservations", "sessions",
		"dogs", "activities", "establishments", "users",
	} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("clean %s: %v", table, err)
		}
	}

	if err := seed(context.Background(), db); err != nil {
		log.Fatal(err)
	}
	log.Println("Seed completed.")
}

func seed(ctx context.Context, db *gorm.DB) error {
	users := user.NewRepository(db)
	establishments := establishment.NewRepository(db)
	activities := activity.NewRepository(db)
	dogs := dog.NewRepository(db)
	sessions := session.NewRepository(db)
	reservations := reservation.NewRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	log.Println("Creating users...")
	people := map[principal.Role]*user.User{}
	for _, role := range []principal.Role{
		principal.RoleAdministrator, principal.RoleManager, principal.RoleEducator, principal.RoleClient,
	} {
		u := &user.User{
			Firstname:    string(role),
			Lastname:     "Gestidogs",
			Email:        fmt.Sprintf("%s@gestidogs.test", role),
			Role:         role,
			PasswordHash: string(hash),
		}
		if err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("create %s: %w", role, err)
		}
		people[role] = u
		log.Printf("  %s / %s", u.Email, seedPassword)
	}

	log.Println("Creating establishment...")
	est := &establishment.Establishment{
		OwnerID: people[principal.RoleManager].ID,
		Name:    "Gestidogs Lyon",
		Address: "12 rue des Chiens, Lyon",
		Email:   "lyon@gestidogs.test",
	}
	if err := establishments.Create(ctx, est); err != nil {
		return err
	}
	for _, role := range []principal.Role{principal.RoleManager, principal.RoleEducator} {
		if err := users.AssignEstablishment(ctx, people[role].ID, est.ID); err != nil {
			return err
		}
	}

	log.Println("Creating activities...")
	private := &activity.Activity{EstablishmentID: est.ID, Title: "Private lesson", Duration: 60, Price: 45, Color: "#2E86AB"}
	group := &activity.Activity{EstablishmentID: est.ID, Title: "Puppy group", Duration: 90, Price: 20, Color: "#F18F01"}
	for _, a := range []*activity.Activity{private, group} {
		if err := activities.Create(ctx, a); err != nil {
			return err
		}
	}

	log.Println("Creating dogs...")
	owner := people[principal.RoleClient].ID
	var pack []*dog.Dog
	for _, name := range []string{"Rex", "Nala"} {
		d := &dog.Dog{OwnerID: owner, EstablishmentID: est.ID, Name: name, Breed: "Border Collie"}
		if err := dogs.Create(ctx, d); err != nil {
			return err
		}
		pack = append(pack, d)
	}

	log.Println("Creating sessions and reservations...")
	sessionService := session.NewService(sessions, activities, users, establishments, reservations, nil)
	reservationService := reservation.NewService(reservations, sessions, dogs, nil, nil)

	manager := principal.Principal{UserID: people[principal.RoleManager].ID, Role: principal.RoleManager}
	educatorID := people[principal.RoleEducator].ID
	tomorrow := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)

	for day := 0; day < 5; day++ {
		base := tomorrow.AddDate(0, 0, day)
		groupCapacity := 6
		slots := []session.CreateRequest{
			{EducatorID: &educatorID, ActivityID: private.ID, EstablishmentID: est.ID, BeginDate: base.Add(9 * time.Hour)},
			{EducatorID: &educatorID, ActivityID: group.ID, EstablishmentID: est.ID, BeginDate: base.Add(14 * time.Hour), MaximumCapacity: &groupCapacity},
		}
		for i, req := range slots {
			v, err := sessionService.Create(ctx, manager, req)
			if err != nil {
				return err
			}
			d := pack[(day+i)%len(pack)]
			if _, err := reservationService.Create(ctx, reservation.CreateRequest{SessionID: v.ID, DogID: d.ID}); err != nil {
				return err
			}
		}
	}
	return nil
}
