package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/schedule"
	"alcyxob/fitness-coach/internal/service"
)

var (
	seedClients  int
	seedWeeks    int
	seedStart    string
	seedPassword string
	seedRandSeed int64
)

// Training days of the demo program: Monday, Wednesday, Friday.
var seedDays = []int{1, 3, 5}

var seedExercises = []string{
	"Back Squat", "Bench Press", "Deadlift", "Overhead Press", "Pull-up",
	"Romanian Deadlift", "Walking Lunge", "Barbell Row", "Plank", "Farmer Carry",
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo trainer, program and clients",
	Long: `Create a trainer with an exercise library, a multi-week program with a
finisher, and clients following that program.

Everything goes through the service layer, so the same validation applies
as for API calls. jwt.secret must be configured.

EXAMPLES:

  coachctl seed                                  # 3 clients, 4 weeks
  coachctl seed --clients 10 --weeks 8 --start 2024-03-04`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedClients < 0 || seedWeeks < 1 {
			return fmt.Errorf("need --clients >= 0 and --weeks >= 1")
		}
		start := mondayOf(time.Now())
		if seedStart != "" {
			var err error
			if start, err = schedule.ParseDate(seedStart); err != nil {
				return fmt.Errorf("--start: %w", err)
			}
		}

		svc, err := newServices(true)
		if err != nil {
			return err
		}
		faker := gofakeit.New(seedRandSeed)
		return seed(cmd.Context(), svc, faker, start)
	},
}

func init() {
	seedCmd.Flags().IntVarP(&seedClients, "clients", "c", 3, "number of clients")
	seedCmd.Flags().IntVarP(&seedWeeks, "weeks", "w", 4, "program length in weeks")
	seedCmd.Flags().StringVar(&seedStart, "start", "", "assignment start date (YYYY-MM-DD), defaults to this week's Monday")
	seedCmd.Flags().StringVar(&seedPassword, "password", "coachpass123", "password for every seeded user")
	seedCmd.Flags().Int64Var(&seedRandSeed, "seed", 0, "random seed, 0 picks one")
	rootCmd.AddCommand(seedCmd)
}

func seed(ctx context.Context, svc *services, faker *gofakeit.Faker, start time.Time) error {
	trainer, err := svc.auth.Register(ctx, service.RegisterInput{
		Name:     faker.Name(),
		Email:    faker.Email(),
		Password: seedPassword,
		Role:     domain.RoleTrainer,
	})
	if err != nil {
		return fmt.Errorf("register trainer: %w", err)
	}

	exerciseIDs := make([]primitive.ObjectID, 0, len(seedExercises))
	for _, name := range seedExercises {
		ex, err := svc.exercise.CreateExercise(ctx, trainer.ID, service.ExerciseInput{
			Name:        name,
			Description: faker.Sentence(8),
		})
		if err != nil {
			return fmt.Errorf("create exercise %s: %w", name, err)
		}
		exerciseIDs = append(exerciseIDs, ex.ID)
	}

	weeks := seedWeeks
	program, err := svc.trainer.CreateProgram(ctx, trainer.ID, service.ProgramInput{
		Name:          faker.AppName() + " Strength",
		Category:      "strength",
		Description:   faker.Sentence(12),
		DurationWeeks: &weeks,
	})
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}

	workouts := 0
	for week := 1; week <= seedWeeks; week++ {
		for i, day := range seedDays {
			w, err := svc.trainer.AddWorkout(ctx, trainer.ID, program.ID,
				seedWorkout(faker, exerciseIDs, fmt.Sprintf("W%d %s", week, []string{"Lower", "Upper", "Full Body"}[i]), week, day, nil))
			if err != nil {
				return fmt.Errorf("add workout: %w", err)
			}
			workouts++

			if day == 5 {
				parent := w.ID
				if _, err := svc.trainer.AddWorkout(ctx, trainer.ID, program.ID,
					seedWorkout(faker, exerciseIDs, fmt.Sprintf("W%d Finisher", week), week, day, &parent)); err != nil {
					return fmt.Errorf("add finisher: %w", err)
				}
				workouts++
			}
		}
	}

	green := color.New(color.FgGreen)
	fmt.Printf("%s trainer %s (%s)\n", green.Sprint("created"), trainer.Email, trainer.ID.Hex())
	fmt.Printf("%s program %q with %d workouts over %d weeks\n", green.Sprint("created"), program.Name, workouts, seedWeeks)

	for i := 0; i < seedClients; i++ {
		client, err := svc.auth.Register(ctx, service.RegisterInput{
			Name:     faker.Name(),
			Email:    faker.Email(),
			Password: seedPassword,
			Role:     domain.RoleClient,
		})
		if err != nil {
			return fmt.Errorf("register client: %w", err)
		}
		if _, err := svc.trainer.AddClientByEmail(ctx, trainer.ID, client.Email); err != nil {
			return fmt.Errorf("add client %s: %w", client.Email, err)
		}
		if _, err := svc.trainer.AssignProgram(ctx, trainer.ID, client.ID, service.AssignProgramInput{
			ProgramID:     program.ID,
			StartDate:     start,
			PhaseName:     "Base",
			ReplaceActive: true,
		}); err != nil {
			return fmt.Errorf("assign program to %s: %w", client.Email, err)
		}
		fmt.Printf("%s client %s starting %s\n", green.Sprint("created"), client.Email, schedule.DateKey(start))
	}

	color.New(color.Faint).Printf("password for all users: %s\n", seedPassword)
	return nil
}

func seedWorkout(faker *gofakeit.Faker, exerciseIDs []primitive.ObjectID, name string, week, day int, parent *primitive.ObjectID) service.WorkoutInput {
	count := faker.Number(2, 4)
	if parent != nil {
		count = 1
	}

	exercises := make([]domain.WorkoutExercise, 0, count)
	for i := 0; i < count; i++ {
		sets := make([]domain.ExerciseSet, faker.Number(3, 5))
		for j := range sets {
			sets[j] = domain.ExerciseSet{
				Reps:        faker.RandomString([]string{"5", "8", "8-12", "AMRAP"}),
				RestSeconds: faker.Number(6, 18) * 10,
			}
		}
		exercises = append(exercises, domain.WorkoutExercise{
			ExerciseID: exerciseIDs[faker.Number(0, len(exerciseIDs)-1)],
			OrderIndex: i,
			Sets:       sets,
		})
	}

	return service.WorkoutInput{
		Name:            name,
		DayOfWeek:       &day,
		WeekNumber:      &week,
		ParentWorkoutID: parent,
		OrderIndex:      day,
		Exercises:       exercises,
	}
}
