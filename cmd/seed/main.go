package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/hms-platform/hospital-manager/backend/internal/config"
	"github.com/hms-platform/hospital-manager/backend/internal/domain"
	"github.com/hms-platform/hospital-manager/backend/internal/repository"
	"github.com/hms-platform/hospital-manager/backend/internal/seed"
	"github.com/hms-platform/hospital-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random patients, 2: insert random doctors, 3: insert random appointments, 4: baseline seed)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// load the configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// create the database connection pool
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create the database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool object, it does not dial the database,
	// so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to the database", "error", err)
		return
	}

	// create the repository
	repo := repository.NewRepository(cfg, dbpool)

	// run the requested operation
	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		if n <= 0 {
			slog.Error("please provide a valid number of patients")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(domain.RolePatient, cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("failed to generate random patient", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("failed to insert patient", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("patients inserted", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("please provide a valid number of doctors")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(domain.RoleDoctor, cfg.Seed.User.Password, cfg.Email.UserDomain)
				if err != nil {
					slog.Error("failed to generate random doctor", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("failed to insert doctor", slog.String("error", err.Error()))
					continue
				}

				if err := repo.UpsertDoctorProfile(utils.GenerateRandomDoctorProfile(user.ID)); err != nil {
					slog.Error("failed to insert doctor profile", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("doctors inserted", slog.Int("count", n-cnt))
		}
	case 3:
		if n <= 0 {
			slog.Error("please provide a valid number of appointments")
			return
		}

		doctors, err := repo.GetAllDoctors("")
		if err != nil {
			slog.Error("failed to fetch doctors", slog.String("error", err.Error()))
			return
		}
		patients, err := repo.GetAllUsersByRole(domain.RolePatient)
		if err != nil {
			slog.Error("failed to fetch patients", slog.String("error", err.Error()))
			return
		}
		if len(doctors) == 0 || len(patients) == 0 {
			slog.Error("seed doctors and patients first")
			return
		}

		today := time.Now().UTC().Truncate(24 * time.Hour)

		cnt := 0
		for i := 0; i < n; i++ {
			doctor := doctors[rand.Intn(len(doctors))]
			patient := patients[rand.Intn(len(patients))]

			appt := &domain.Appointment{
				DoctorID:    doctor.ID,
				PatientID:   patient.ID,
				DoctorName:  doctor.FullName,
				DoctorField: doctor.Profile.Field,
				PatientName: patient.FullName,
				PatientCNIC: patient.CNIC,
				Dated:       today.AddDate(0, 0, rand.Intn(cfg.Booking.MaxAheadDays)+1),
				Hour:        doctor.Profile.ShiftStartHour + rand.Intn(doctor.Profile.SlotCount),
				Details:     "Seeded visit",
				Status:      domain.AppointmentPending,
			}

			if err := repo.ClaimSlot(appt); err != nil {
				// collisions with earlier seeded slots are expected, move on
				slog.Warn("failed to claim slot", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("appointments inserted", slog.Int("count", cnt))
	case 4:
		seed.SeedBaseline(repo, cfg)
	default:
		slog.Error("unknown operation")
	}
}
