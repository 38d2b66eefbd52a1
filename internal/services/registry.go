package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	MemberService  MemberService
	TrainerService TrainerService
}
