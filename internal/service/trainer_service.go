package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"alcyxob/fitness-coach/internal/schedule"
)

var (
	ErrClientNotFound         = errors.New("client user not found")
	ErrClientNotRole          = errors.New("user found but is not a client")
	ErrClientAlreadyAssigned  = errors.New("client is already assigned to a trainer")
	ErrClientNotManaged       = errors.New("client is not managed by this trainer")
	ErrProgramNotFound        = errors.New("program not found")
	ErrProgramAccessDenied    = errors.New("access denied to this program")
	ErrWorkoutNotFound        = errors.New("workout not found")
	ErrAssignmentNotFound     = errors.New("client program not found")
	ErrAssignmentAccessDenied = errors.New("access denied to this client program")
	ErrInvalidFinisher        = errors.New("finisher must hang off a regular workout of the same program")
)

type ProgramInput struct {
	Name          string
	Category      string
	Description   string
	DurationWeeks *int
}

type WorkoutInput struct {
	Name            string
	Notes           string
	DayOfWeek       *int
	WeekNumber      *int
	ParentWorkoutID *primitive.ObjectID
	OrderIndex      int
	Exercises       []domain.WorkoutExercise
}

type AssignProgramInput struct {
	ProgramID     primitive.ObjectID
	StartDate     time.Time
	EndDate       *time.Time
	PhaseName     string
	DurationWeeks *int
	// ReplaceActive deactivates the client's other active programs.
	ReplaceActive bool
}

type TrainerService interface {
	AddClientByEmail(ctx context.Context, trainerID primitive.ObjectID, clientEmail string) (*domain.User, error)
	GetManagedClients(ctx context.Context, trainerID primitive.ObjectID) ([]domain.User, error)

	CreateProgram(ctx context.Context, trainerID primitive.ObjectID, in ProgramInput) (*domain.Program, error)
	GetPrograms(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Program, error)
	GetProgram(ctx context.Context, trainerID, programID primitive.ObjectID) (*domain.ProgramWithWorkouts, error)

	AddWorkout(ctx context.Context, trainerID, programID primitive.ObjectID, in WorkoutInput) (*domain.ProgramWorkout, error)
	UpdateWorkout(ctx context.Context, trainerID, workoutID primitive.ObjectID, in WorkoutInput) (*domain.ProgramWorkout, error)
	DeleteWorkout(ctx context.Context, trainerID, workoutID primitive.ObjectID) error

	AssignProgram(ctx context.Context, trainerID, clientID primitive.ObjectID, in AssignProgramInput) (*domain.ClientProgram, error)
	DeactivateAssignment(ctx context.Context, trainerID, clientProgramID primitive.ObjectID) error
	GetClientPrograms(ctx context.Context, trainerID, clientID primitive.ObjectID) ([]domain.ClientProgram, error)

	GetClientSchedule(ctx context.Context, trainerID, clientID primitive.ObjectID) (*ScheduleView, error)
	GetClientCalendar(ctx context.Context, trainerID, clientID primitive.ObjectID, from, to time.Time) (*CalendarView, error)
}

type trainerService struct {
	userRepo          repository.UserRepository
	exerciseRepo      repository.ExerciseRepository
	programRepo       repository.ProgramRepository
	workoutRepo       repository.ProgramWorkoutRepository
	clientProgramRepo repository.ClientProgramRepository
	schedules         ScheduleService
}

func NewTrainerService(
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	programRepo repository.ProgramRepository,
	workoutRepo repository.ProgramWorkoutRepository,
	clientProgramRepo repository.ClientProgramRepository,
	schedules ScheduleService,
) TrainerService {
	return &trainerService{
		userRepo:          userRepo,
		exerciseRepo:      exerciseRepo,
		programRepo:       programRepo,
		workoutRepo:       workoutRepo,
		clientProgramRepo: clientProgramRepo,
		schedules:         schedules,
	}
}

// === Clients ===

// AddClientByEmail links an existing client account to the trainer. Adding a
// client the trainer already manages is a no-op.
func (s *trainerService) AddClientByEmail(ctx context.Context, trainerID primitive.ObjectID, clientEmail string) (*domain.User, error) {
	clientEmail = normalizeEmail(clientEmail)
	if clientEmail == "" {
		return nil, fmt.Errorf("%w: client email is required", ErrValidationFailed)
	}

	client, err := s.userRepo.GetByEmail(ctx, clientEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if !client.IsClient() {
		return nil, ErrClientNotRole
	}

	if client.TrainerID != nil && !client.TrainerID.IsZero() {
		if *client.TrainerID == trainerID {
			client.PasswordHash = ""
			return client, nil
		}
		return nil, ErrClientAlreadyAssigned
	}

	if err := s.userRepo.AddClientIDToTrainer(ctx, trainerID, client.ID); err != nil {
		return nil, err
	}
	if err := s.userRepo.SetTrainerForClient(ctx, client.ID, trainerID); err != nil {
		log.Errorf("trainer %s lists client %s but the client link failed: %s", trainerID.Hex(), client.ID.Hex(), err)
		return nil, err
	}

	client.TrainerID = &trainerID
	client.PasswordHash = ""
	return client, nil
}

func (s *trainerService) GetManagedClients(ctx context.Context, trainerID primitive.ObjectID) ([]domain.User, error) {
	clients, err := s.userRepo.GetClientsByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	for i := range clients {
		clients[i].PasswordHash = ""
	}
	return clients, nil
}

// ensureManaged checks that the client exists and belongs to the trainer.
func (s *trainerService) ensureManaged(ctx context.Context, trainerID, clientID primitive.ObjectID) (*domain.User, error) {
	client, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if !client.IsClient() {
		return nil, ErrClientNotRole
	}
	if client.TrainerID == nil || *client.TrainerID != trainerID {
		return nil, ErrClientNotManaged
	}
	return client, nil
}

// === Programs ===

func (s *trainerService) CreateProgram(ctx context.Context, trainerID primitive.ObjectID, in ProgramInput) (*domain.Program, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: program name is required", ErrValidationFailed)
	}
	if in.DurationWeeks != nil && *in.DurationWeeks < 1 {
		return nil, fmt.Errorf("%w: durationWeeks must be at least 1", ErrValidationFailed)
	}

	program := &domain.Program{
		TrainerID:     trainerID,
		Name:          strings.TrimSpace(in.Name),
		Category:      in.Category,
		Description:   in.Description,
		DurationWeeks: in.DurationWeeks,
	}
	id, err := s.programRepo.Create(ctx, program)
	if err != nil {
		return nil, err
	}
	program.ID = id
	return program, nil
}

func (s *trainerService) GetPrograms(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Program, error) {
	return s.programRepo.GetByTrainerID(ctx, trainerID)
}

func (s *trainerService) ownedProgram(ctx context.Context, trainerID, programID primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if program.TrainerID != trainerID {
		return nil, ErrProgramAccessDenied
	}
	return program, nil
}

func (s *trainerService) GetProgram(ctx context.Context, trainerID, programID primitive.ObjectID) (*domain.ProgramWithWorkouts, error) {
	program, err := s.ownedProgram(ctx, trainerID, programID)
	if err != nil {
		return nil, err
	}
	workouts, err := s.workoutRepo.GetByProgramIDs(ctx, []primitive.ObjectID{programID})
	if err != nil {
		return nil, err
	}
	return &domain.ProgramWithWorkouts{Program: *program, Workouts: workouts}, nil
}

// === Workouts ===

func (s *trainerService) validateWorkout(ctx context.Context, trainerID, programID, selfID primitive.ObjectID, in *WorkoutInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: workout name is required", ErrValidationFailed)
	}
	if in.DayOfWeek != nil && (*in.DayOfWeek < 0 || *in.DayOfWeek > 6) {
		return fmt.Errorf("%w: dayOfWeek must be 0 (Sunday) to 6 (Saturday)", ErrValidationFailed)
	}
	if in.WeekNumber != nil && *in.WeekNumber < 1 {
		return fmt.Errorf("%w: weekNumber must be at least 1", ErrValidationFailed)
	}

	if in.ParentWorkoutID != nil && !in.ParentWorkoutID.IsZero() {
		if *in.ParentWorkoutID == selfID {
			return ErrInvalidFinisher
		}
		parent, err := s.workoutRepo.GetByID(ctx, *in.ParentWorkoutID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrInvalidFinisher
			}
			return err
		}
		if parent.ProgramID != programID || parent.IsFinisher() {
			return ErrInvalidFinisher
		}
	} else {
		in.ParentWorkoutID = nil
	}

	for i := range in.Exercises {
		ex := &in.Exercises[i]
		exercise, err := s.exerciseRepo.GetByID(ctx, ex.ExerciseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrExerciseNotFound, ex.ExerciseID.Hex())
			}
			return err
		}
		if exercise.TrainerID != trainerID {
			return ErrExerciseAccessDenied
		}
		if ex.Name == "" {
			ex.Name = exercise.Name
		}
		for j, set := range ex.Sets {
			if set.SetNumber == 0 {
				ex.Sets[j].SetNumber = j + 1
			}
		}
	}
	return nil
}

func (s *trainerService) AddWorkout(ctx context.Context, trainerID, programID primitive.ObjectID, in WorkoutInput) (*domain.ProgramWorkout, error) {
	if _, err := s.ownedProgram(ctx, trainerID, programID); err != nil {
		return nil, err
	}
	if err := s.validateWorkout(ctx, trainerID, programID, primitive.NilObjectID, &in); err != nil {
		return nil, err
	}

	workout := &domain.ProgramWorkout{
		ProgramID:       programID,
		TrainerID:       trainerID,
		Name:            in.Name,
		Notes:           in.Notes,
		DayOfWeek:       in.DayOfWeek,
		WeekNumber:      in.WeekNumber,
		ParentWorkoutID: in.ParentWorkoutID,
		OrderIndex:      in.OrderIndex,
		Exercises:       in.Exercises,
	}
	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = id

	s.invalidateProgramFollowers(ctx, programID)
	return workout, nil
}

func (s *trainerService) ownedWorkout(ctx context.Context, trainerID, workoutID primitive.ObjectID) (*domain.ProgramWorkout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.TrainerID != trainerID {
		return nil, ErrProgramAccessDenied
	}
	return workout, nil
}

func (s *trainerService) UpdateWorkout(ctx context.Context, trainerID, workoutID primitive.ObjectID, in WorkoutInput) (*domain.ProgramWorkout, error) {
	workout, err := s.ownedWorkout(ctx, trainerID, workoutID)
	if err != nil {
		return nil, err
	}
	if err := s.validateWorkout(ctx, trainerID, workout.ProgramID, workout.ID, &in); err != nil {
		return nil, err
	}

	workout.Name = in.Name
	workout.Notes = in.Notes
	workout.DayOfWeek = in.DayOfWeek
	workout.WeekNumber = in.WeekNumber
	workout.ParentWorkoutID = in.ParentWorkoutID
	workout.OrderIndex = in.OrderIndex
	workout.Exercises = in.Exercises

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	s.invalidateProgramFollowers(ctx, workout.ProgramID)
	return workout, nil
}

func (s *trainerService) DeleteWorkout(ctx context.Context, trainerID, workoutID primitive.ObjectID) error {
	workout, err := s.ownedWorkout(ctx, trainerID, workoutID)
	if err != nil {
		return err
	}
	if err := s.workoutRepo.Delete(ctx, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}

	s.invalidateProgramFollowers(ctx, workout.ProgramID)
	return nil
}

// invalidateProgramFollowers drops cached schedules of every client on the
// program. A failure only delays the change until the cache TTL runs out.
func (s *trainerService) invalidateProgramFollowers(ctx context.Context, programID primitive.ObjectID) {
	clientIDs, err := s.clientProgramRepo.GetActiveClientIDsByProgramID(ctx, programID)
	if err != nil {
		log.Warnf("list followers of program %s: %s", programID.Hex(), err)
		return
	}
	s.schedules.Invalidate(clientIDs...)
}

// === Assignments ===

func (s *trainerService) AssignProgram(ctx context.Context, trainerID, clientID primitive.ObjectID, in AssignProgramInput) (*domain.ClientProgram, error) {
	if in.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate is required", ErrValidationFailed)
	}
	start := schedule.Day(in.StartDate)
	var end *time.Time
	if in.EndDate != nil {
		e := schedule.Day(*in.EndDate)
		if e.Before(start) {
			return nil, fmt.Errorf("%w: endDate is before startDate", ErrValidationFailed)
		}
		end = &e
	}
	if in.DurationWeeks != nil && *in.DurationWeeks < 1 {
		return nil, fmt.Errorf("%w: durationWeeks must be at least 1", ErrValidationFailed)
	}

	if _, err := s.ensureManaged(ctx, trainerID, clientID); err != nil {
		return nil, err
	}
	program, err := s.ownedProgram(ctx, trainerID, in.ProgramID)
	if err != nil {
		return nil, err
	}

	durationWeeks := in.DurationWeeks
	if durationWeeks == nil {
		durationWeeks = program.DurationWeeks
	}
	cp := &domain.ClientProgram{
		ClientID:      clientID,
		ProgramID:     program.ID,
		TrainerID:     trainerID,
		StartDate:     start,
		EndDate:       end,
		IsActive:      true,
		PhaseName:     in.PhaseName,
		DurationWeeks: durationWeeks,
	}
	id, err := s.clientProgramRepo.Create(ctx, cp)
	if err != nil {
		return nil, err
	}
	cp.ID = id

	if in.ReplaceActive {
		if err := s.clientProgramRepo.DeactivateOthers(ctx, clientID, id); err != nil {
			s.schedules.Invalidate(clientID)
			return nil, err
		}
	}

	s.schedules.Invalidate(clientID)
	log.Debugf("program %s assigned to client %s from %s", program.ID.Hex(), clientID.Hex(), schedule.DateKey(start))
	return cp, nil
}

func (s *trainerService) DeactivateAssignment(ctx context.Context, trainerID, clientProgramID primitive.ObjectID) error {
	cp, err := s.clientProgramRepo.GetByID(ctx, clientProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}
	if cp.TrainerID != trainerID {
		return ErrAssignmentAccessDenied
	}
	if !cp.IsActive {
		return nil
	}

	if err := s.clientProgramRepo.Deactivate(ctx, clientProgramID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}
	s.schedules.Invalidate(cp.ClientID)
	return nil
}

func (s *trainerService) GetClientPrograms(ctx context.Context, trainerID, clientID primitive.ObjectID) ([]domain.ClientProgram, error) {
	if _, err := s.ensureManaged(ctx, trainerID, clientID); err != nil {
		return nil, err
	}
	return s.clientProgramRepo.GetByClientID(ctx, clientID)
}

func (s *trainerService) GetClientSchedule(ctx context.Context, trainerID, clientID primitive.ObjectID) (*ScheduleView, error) {
	if _, err := s.ensureManaged(ctx, trainerID, clientID); err != nil {
		return nil, err
	}
	return s.schedules.GetSchedule(ctx, clientID)
}

func (s *trainerService) GetClientCalendar(ctx context.Context, trainerID, clientID primitive.ObjectID, from, to time.Time) (*CalendarView, error) {
	if _, err := s.ensureManaged(ctx, trainerID, clientID); err != nil {
		return nil, err
	}
	return s.schedules.GetCalendar(ctx, clientID, from, to)
}
