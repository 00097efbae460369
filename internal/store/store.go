// Package store picks the repository implementation for every entity and the
// notification job store from one decision: Postgres when a database is
// configured, memory otherwise.
package store

import (
	"database/sql"

	"github.com/sanaresoma/sanaresoma-backend/internal/activity"
	"github.com/sanaresoma/sanaresoma-backend/internal/client"
	"github.com/sanaresoma/sanaresoma-backend/internal/food"
	"github.com/sanaresoma/sanaresoma-backend/internal/goal"
	"github.com/sanaresoma/sanaresoma-backend/internal/meal"
	"github.com/sanaresoma/sanaresoma-backend/internal/notify"
	"github.com/sanaresoma/sanaresoma-backend/internal/nutrition"
	"github.com/sanaresoma/sanaresoma-backend/internal/professional"
	"github.com/sanaresoma/sanaresoma-backend/internal/routine"
	"github.com/sanaresoma/sanaresoma-backend/internal/user"
)

type Repositories struct {
	Users         user.Repository
	Professionals professional.Repository
	Goals         goal.Repository
	Activities    activity.Repository
	Routines      routine.Repository
	Foods         food.Repository
	Meals         meal.Repository
	Nutritions    nutrition.Repository
	Clients       client.Repository
	Jobs          notify.JobStore
}

// Postgres is used when db is non-nil.
func New(db *sql.DB) Repositories {
	if db == nil {
		return InMemory()
	}
	return Repositories{
		Users:         user.NewPostgresRepository(db),
		Professionals: professional.NewPostgresRepository(db),
		Goals:         goal.NewPostgresRepository(db),
		Activities:    activity.NewPostgresRepository(db),
		Routines:      routine.NewPostgresRepository(db),
		Foods:         food.NewPostgresRepository(db),
		Meals:         meal.NewPostgresRepository(db),
		Nutritions:    nutrition.NewPostgresRepository(db),
		Clients:       client.NewPostgresRepository(db),
		Jobs:          notify.NewPostgresJobStore(db),
	}
}

func InMemory() Repositories {
	return Repositories{
		Users:         user.NewInMemoryRepository(nil),
		Professionals: professional.NewInMemoryRepository(nil),
		Goals:         goal.NewInMemoryRepository(nil),
		Activities:    activity.NewInMemoryRepository(nil),
		Routines:      routine.NewInMemoryRepository(nil),
		Foods:         food.NewInMemoryRepository(nil),
		Meals:         meal.NewInMemoryRepository(nil),
		Nutritions:    nutrition.NewInMemoryRepository(nil),
		Clients:       client.NewInMemoryRepository(nil),
		Jobs:          notify.NewInMemoryJobStore(),
	}
}

// Sources exposes the repositories as notification snapshot sources.
func (r Repositories) Sources() notify.Sources {
	return notify.Sources{
		Users:         r.Users,
		Professionals: r.Professionals,
		Goals:         r.Goals,
		Activities:    r.Activities,
		Routines:      r.Routines,
		Foods:         r.Foods,
		Meals:         r.Meals,
		Nutritions:    r.Nutritions,
		Clients:       r.Clients,
	}
}
