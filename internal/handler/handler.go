package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/hms-platform/hospital-manager/backend/internal/booking"
	"github.com/hms-platform/hospital-manager/backend/internal/config"
	"github.com/hms-platform/hospital-manager/backend/internal/domain"
	"github.com/hms-platform/hospital-manager/backend/internal/repository"
	"github.com/hms-platform/hospital-manager/backend/internal/schedule"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	booking     *booking.Service
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	horizon := schedule.Horizon{
		MinLeadDays:  cfg.Booking.MinLeadDays,
		MaxAheadDays: cfg.Booking.MaxAheadDays,
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		booking:     booking.NewService(repo, repo, horizon),
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Post("/signup", h.PatientSignup)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
			})
		})

		r.Route("/doctors", func(r chi.Router) {
			r.Get("/", h.GetAllDoctors)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.doctorInfo)
				r.Get("/", h.GetDoctor)
				r.Get("/schedule", h.GetDoctorSchedule)
				r.With(h.myInfo).Patch("/profile", h.UpdateDoctorProfile)
			})
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Use(h.myInfo)
			r.With(h.RequiredRole([]domain.Role{domain.RolePatient, domain.RoleAdmin})).Post("/", h.CreateAppointment)
			r.Get("/", h.GetAppointments)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.appointmentInfo)
				r.Get("/", h.GetAppointment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleDoctor, domain.RoleAdmin})).Post("/approve", h.ApproveAppointment)
				r.Post("/cancel", h.CancelAppointment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleDoctor})).Post("/complete", h.CompleteAppointment)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyNotifications)
			r.Post("/{id}/read", h.MarkNotificationRead)
		})

		r.Route("/blood", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Route("/requests", func(r chi.Router) {
				r.With(h.RequiredRole([]domain.Role{domain.RolePatient})).Post("/", h.CreateBloodRequest)
				r.Get("/", h.GetBloodRequests)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).With(h.bloodRequestInfo).Patch("/{id}", h.UpdateBloodRequest)
			})
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", h.GetBloodInventory)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.AdjustBloodInventory)
			})
		})

		r.With(h.myInfo).Get("/invoices/{appointmentID}", h.GetInvoice)
	})
}
