package handler

type ContextKey string

var (
	RoleCtxKey      ContextKey = "role"
	SubCtxKey       ContextKey = "sub"
	MyInfoCtx       ContextKey = "myInfo"
	UserInfoCtx     ContextKey = "userInfo"
	DoctorCtx       ContextKey = "doctor"
	AppointmentCtx  ContextKey = "appointment"
	BloodRequestCtx ContextKey = "bloodRequest"
)
