package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	MemberHandler  *MemberHandler
	TrainerHandler *TrainerHandler
}
