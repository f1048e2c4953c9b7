// Package service holds the business logic behind the HTTP handlers. Every
// service is an interface with an unexported implementation.
package service

//go:generate mockgen -destination=mocks/mocks.go -package=mocks alcyxob/fitness-coach/internal/service AuthService,ExerciseService,TrainerService,ClientService,ScheduleService
