package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/sanaresoma/sanaresoma-backend/internal/activity"
	"github.com/sanaresoma/sanaresoma-backend/internal/bootstrap"
	"github.com/sanaresoma/sanaresoma-backend/internal/client"
	"github.com/sanaresoma/sanaresoma-backend/internal/food"
	"github.com/sanaresoma/sanaresoma-backend/internal/goal"
	"github.com/sanaresoma/sanaresoma-backend/internal/meal"
	"github.com/sanaresoma/sanaresoma-backend/internal/notify"
	"github.com/sanaresoma/sanaresoma-backend/internal/nutrition"
	"github.com/sanaresoma/sanaresoma-backend/internal/professional"
	"github.com/sanaresoma/sanaresoma-backend/internal/routine"
	"github.com/sanaresoma/sanaresoma-backend/internal/server"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap.Start(ctx, "sanaresoma-api")
	if err != nil {
		logrus.WithError(err).Fatal("startup failed")
	}
	defer rt.Close()

	notifier, err := rt.Notifier(ctx)
	if err != nil {
		rt.Log.WithError(err).Fatal("notification setup failed")
	}
	defer notifier.Close()
	if notifier.Conn != nil {
		go notifier.Conn.KeepAlive(ctx)
	}

	repos := rt.Repos
	userService := user.NewService(repos.Users)
	professionalService := professional.NewService(repos.Professionals)
	goalService := goal.NewService(repos.Goals, userService, professionalService).
		WithListener(notify.NewGoalEvents(notifier.Service, rt.Log))
	activityService := activity.NewService(repos.Activities)
	routineService := routine.NewService(repos.Routines, activityService)
	foodService := food.NewService(repos.Foods)
	mealService := meal.NewService(repos.Meals, foodService)
	nutritionService := nutrition.NewService(repos.Nutritions, mealService)
	clientService := client.NewService(repos.Clients, userService, professionalService)

	app := server.New(rt.Log,
		user.NewHandler(userService),
		professional.NewHandler(professionalService),
		goal.NewHandler(goalService),
		activity.NewHandler(activityService),
		routine.NewHandler(routineService),
		food.NewHandler(foodService),
		meal.NewHandler(mealService),
		nutrition.NewHandler(nutritionService),
		client.NewHandler(clientService),
		notify.NewHandler(notifier.Service),
	)

	go func() {
		<-ctx.Done()
		rt.Log.Info("shutting down")
		_ = app.Shutdown()
	}()

	rt.Log.WithField("addr", rt.Config.Server.Addr).Info("starting server")
	if err := app.Listen(rt.Config.Server.Addr); err != nil {
		rt.Log.WithError(err).Error("server stopped")
	}
}
